package cipher

import "cifra/internal/domain"

// Caesar shifts every letter a fixed number of alphabet positions, wrapping
// at the 26-letter boundary in both directions.
type Caesar struct {
	alpha domain.Alphabet
	shift int
}

// NewCaesar returns a Caesar cipher over a with the given shift. Any integer
// shift is accepted; only its value modulo the alphabet size matters.
func NewCaesar(a domain.Alphabet, shift int) *Caesar {
	return &Caesar{alpha: a, shift: shift}
}

// NewRot13 returns the self-inverse 13-shift Caesar cipher.
func NewRot13(a domain.Alphabet) *Caesar { return NewCaesar(a, 13) }

// Encipher shifts the letters of text forward.
func (c *Caesar) Encipher(text string) string { return c.apply(text, c.shift) }

// Decipher shifts the letters of text backward.
func (c *Caesar) Decipher(text string) string { return c.apply(text, -c.shift) }

func (c *Caesar) apply(text string, shift int) string {
	return transform(text, c.alpha, func(pos int) rune {
		r, _ := c.alpha.Rotate(pos, shift) // pos comes from Index, always valid
		return r
	})
}

// Compile-time assertion that Caesar implements domain.Cipher.
var _ domain.Cipher = (*Caesar)(nil)
