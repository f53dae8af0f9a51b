package analysis

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"cifra/internal/cipher"
	"cifra/internal/domain"
)

// ErrNoLetters is returned when a text holds nothing the alphabet covers.
var ErrNoLetters = errors.New("text contains no alphabet letters")

// Service ranks candidate decryptions against a letter-frequency profile.
type Service struct {
	alpha    domain.Alphabet
	profiles domain.ProfileSource
}

// New returns an analysis service over a using profiles as reference.
func New(a domain.Alphabet, profiles domain.ProfileSource) *Service {
	return &Service{alpha: a, profiles: profiles}
}

// CrackCaesar deciphers text under every possible shift, scores each result
// against the reference profile, and returns all candidates ordered best
// first.
func (s *Service) CrackCaesar(text string) ([]domain.Candidate, error) {
	p, err := s.profiles.Profile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if _, total := LetterCounts(text, s.alpha); total == 0 {
		return nil, ErrNoLetters
	}

	out := make([]domain.Candidate, 0, domain.AlphabetSize)
	for shift := range domain.AlphabetSize {
		plain := cipher.NewCaesar(s.alpha, shift).Decipher(text)
		counts, total := LetterCounts(plain, s.alpha)
		out = append(out, domain.Candidate{
			Shift:     shift,
			Plaintext: plain,
			Score:     ChiSquared(counts, total, p),
		})
	}
	slices.SortFunc(out, func(x, y domain.Candidate) int {
		return cmp.Compare(x.Score, y.Score)
	})
	return out, nil
}

// Compile-time assertion that Service implements domain.Analyzer.
var _ domain.Analyzer = (*Service)(nil)
