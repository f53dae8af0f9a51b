package freq

import (
	"cifra/internal/domain"
	"cifra/internal/runes"
)

// Count returns a table mapping each distinct scalar character of text to
// its number of occurrences. Counting is per character, never per byte, so a
// multi-byte symbol counts once. The result is never nil; empty input yields
// an empty table. The counts always sum to the character length of text.
func Count(text string) domain.FrequencyTable {
	t := make(domain.FrequencyTable)
	for r := range runes.All(text) {
		t[r]++
	}
	return t
}
