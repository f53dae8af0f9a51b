package analysis

import (
	"math"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"cifra/internal/domain"
	"cifra/internal/runes"
)

// LetterCounts tallies the alphabet letters of text, folding case and
// normalizing to NFC first so composed and decomposed spellings of the same
// character are treated alike. Characters outside the alphabet are ignored.
// The second result is the number of letters counted.
func LetterCounts(text string, a domain.Alphabet) (domain.FrequencyTable, int) {
	counts := make(domain.FrequencyTable)
	total := 0
	for r := range runes.All(norm.NFC.String(text)) {
		lower := unicode.ToLower(r)
		if !a.Contains(lower) {
			continue
		}
		counts[lower]++
		total++
	}
	return counts, total
}

// ChiSquared measures how far observed letter counts stray from the
// distribution p predicts for total letters. Lower is closer; a letter the
// profile rules out entirely but the text contains scores infinite.
func ChiSquared(obs domain.FrequencyTable, total int, p domain.Profile) float64 {
	chi := 0.0
	for l, pct := range p.Frequencies {
		expected := pct / 100 * float64(total)
		observed := float64(obs[l])
		if expected == 0 {
			if observed > 0 {
				return math.Inf(1)
			}
			continue
		}
		d := observed - expected
		chi += d * d / expected
	}
	return chi
}
