package cipher

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"cifra/internal/domain"
)

var (
	// ErrEmptyKey is returned when a Vigenère key has no characters at all.
	ErrEmptyKey = errors.New("vigenère key must not be empty")

	// ErrKeyLetters is returned when a Vigenère key holds characters outside the alphabet.
	ErrKeyLetters = errors.New("vigenère key may only contain alphabet letters")
)

// Vigenere shifts each letter by an amount drawn from a repeating key word,
// so identical plaintext letters encipher differently by position.
type Vigenere struct {
	alpha   domain.Alphabet
	offsets []int
}

// NewVigenere returns a Vigenère cipher over a keyed by key. The key is
// case-insensitive and must consist solely of alphabet letters; the letter
// at position zero of the alphabet means no shift.
func NewVigenere(a domain.Alphabet, key string) (*Vigenere, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	offsets := make([]int, 0, len(key))
	for _, r := range strings.ToLower(key) {
		pos, ok := a.Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyLetters, r)
		}
		offsets = append(offsets, pos)
	}
	return &Vigenere{alpha: a, offsets: offsets}, nil
}

// Encipher shifts each letter forward by the next key offset. Characters
// outside the alphabet pass through without consuming a key position.
func (c *Vigenere) Encipher(text string) string { return c.apply(text, 1) }

// Decipher reverses Encipher.
func (c *Vigenere) Decipher(text string) string { return c.apply(text, -1) }

func (c *Vigenere) apply(text string, dir int) string {
	out := &strings.Builder{}
	out.Grow(len(text))
	ki := 0
	for _, r := range text {
		lower := unicode.ToLower(r)
		pos, ok := c.alpha.Index(lower)
		if !ok {
			out.WriteRune(r)
			continue
		}
		mapped, _ := c.alpha.Rotate(pos, dir*c.offsets[ki%len(c.offsets)])
		ki++
		if r != lower {
			mapped = unicode.ToUpper(mapped)
		}
		out.WriteRune(mapped)
	}
	return out.String()
}

// Compile-time assertion that Vigenere implements domain.Cipher.
var _ domain.Cipher = (*Vigenere)(nil)
