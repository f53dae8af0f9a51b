package domain

import "errors"

// AlphabetSize is the number of letters in the Latin alphabet.
const AlphabetSize = 26

var (
	// ErrPositionRange is returned when a rotation position lies outside [0, AlphabetSize).
	ErrPositionRange = errors.New("rotation position out of range")

	// ErrInvalidAlphabet is returned when an alphabet does not hold exactly 26 distinct letters.
	ErrInvalidAlphabet = errors.New("alphabet needs exactly 26 distinct letters")
)

// Alphabet is an ordered, fixed-size sequence of 26 distinct letters.
// The zero value is not a usable alphabet; build one with NewAlphabet or the
// constructors in internal/alphabet.
type Alphabet [AlphabetSize]rune

// NewAlphabet builds an Alphabet from letters, rejecting wrong lengths and
// duplicate entries.
func NewAlphabet(letters []rune) (Alphabet, error) {
	var a Alphabet
	if len(letters) != AlphabetSize {
		return a, ErrInvalidAlphabet
	}
	seen := make(map[rune]bool, AlphabetSize)
	for i, r := range letters {
		if seen[r] {
			return Alphabet{}, ErrInvalidAlphabet
		}
		seen[r] = true
		a[i] = r
	}
	return a, nil
}

// At returns the letter at pos.
func (a Alphabet) At(pos int) (rune, error) {
	if pos < 0 || pos >= AlphabetSize {
		return 0, ErrPositionRange
	}
	return a[pos], nil
}

// Index returns the position of r, or false when r is not part of the alphabet.
func (a Alphabet) Index(r rune) (int, bool) {
	for i, l := range a {
		if l == r {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether r is a letter of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// Rotate returns the letter offset positions away from pos, wrapping around
// the 26-letter boundary in both directions. Any integer offset is accepted;
// pos must lie in [0, AlphabetSize).
func (a Alphabet) Rotate(pos, offset int) (rune, error) {
	if pos < 0 || pos >= AlphabetSize {
		return 0, ErrPositionRange
	}
	// Reduce the offset first so pos+offset cannot overflow.
	offset %= AlphabetSize
	return a[((pos+offset)%AlphabetSize+AlphabetSize)%AlphabetSize], nil
}

// RotatedBy returns the alphabet with every position shifted by offset, so
// rotating abcdefghijklmnopqrstuvwxyz by 1 yields bcdefghijklmnopqrstuvwxyza.
func (a Alphabet) RotatedBy(offset int) Alphabet {
	var out Alphabet
	for i := range a {
		r, _ := a.Rotate(i, offset) // i is always a valid position
		out[i] = r
	}
	return out
}

// Reversed returns the alphabet in back-to-front order.
func (a Alphabet) Reversed() Alphabet {
	var out Alphabet
	for i, r := range a {
		out[AlphabetSize-1-i] = r
	}
	return out
}

// Runes returns the letters as a fresh slice.
func (a Alphabet) Runes() []rune {
	return append([]rune(nil), a[:]...)
}

// String returns the letters joined into a single string.
func (a Alphabet) String() string { return string(a[:]) }
