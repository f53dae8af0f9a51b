package alphabet

import (
	"errors"
	"strings"

	"cifra/internal/domain"
)

// ErrNoKeywordLetters is returned when a keyword shares no letters with the base alphabet.
var ErrNoKeywordLetters = errors.New("keyword contains no alphabet letters")

// Lower returns the 26 lowercase Latin letters in ascending order. Each
// letter is computed from its position, never written out, so a
// transcription slip cannot silently alter the sequence.
func Lower() domain.Alphabet {
	var a domain.Alphabet
	for i := range a {
		a[i] = 'a' + rune(i)
	}
	return a
}

// Keyword returns a mixed alphabet: the distinct base-alphabet letters of
// keyword first, in order of appearance, then the remaining letters of base.
// Case and characters outside base are ignored; a keyword contributing no
// letters at all is rejected.
func Keyword(base domain.Alphabet, keyword string) (domain.Alphabet, error) {
	letters := make([]rune, 0, domain.AlphabetSize)
	seen := make(map[rune]bool, domain.AlphabetSize)
	for _, r := range strings.ToLower(keyword) {
		if !base.Contains(r) || seen[r] {
			continue
		}
		seen[r] = true
		letters = append(letters, r)
	}
	if len(letters) == 0 {
		return domain.Alphabet{}, ErrNoKeywordLetters
	}
	for _, r := range base {
		if !seen[r] {
			letters = append(letters, r)
		}
	}
	return domain.NewAlphabet(letters)
}
