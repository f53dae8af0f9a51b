package cipher

import (
	"fmt"

	"cifra/internal/alphabet"
	"cifra/internal/domain"
)

// Substitution maps letters positionally between a plain alphabet and a
// cipher alphabet.
type Substitution struct {
	plain domain.Alphabet
	mixed domain.Alphabet
}

// NewSubstitution returns a substitution cipher mapping plain onto mixed.
func NewSubstitution(plain, mixed domain.Alphabet) *Substitution {
	return &Substitution{plain: plain, mixed: mixed}
}

// NewAtbash returns the substitution against the reversed alphabet. It is
// its own inverse.
func NewAtbash(a domain.Alphabet) *Substitution {
	return NewSubstitution(a, a.Reversed())
}

// NewKeyword returns the substitution against the keyword-mixed alphabet.
func NewKeyword(a domain.Alphabet, keyword string) (*Substitution, error) {
	mixed, err := alphabet.Keyword(a, keyword)
	if err != nil {
		return nil, fmt.Errorf("keyword cipher: %w", err)
	}
	return NewSubstitution(a, mixed), nil
}

// NewKeyed returns the substitution against a passphrase-derived alphabet.
// The same passphrase always selects the same cipher alphabet.
func NewKeyed(a domain.Alphabet, passphrase string) (*Substitution, error) {
	mixed, err := alphabet.Derived(a, passphrase)
	if err != nil {
		return nil, fmt.Errorf("keyed cipher: %w", err)
	}
	return NewSubstitution(a, mixed), nil
}

// Encipher replaces each plain-alphabet letter with its cipher-alphabet
// counterpart.
func (c *Substitution) Encipher(text string) string {
	return transform(text, c.plain, func(pos int) rune { return c.mixed[pos] })
}

// Decipher replaces each cipher-alphabet letter with its plain-alphabet
// counterpart.
func (c *Substitution) Decipher(text string) string {
	return transform(text, c.mixed, func(pos int) rune { return c.plain[pos] })
}

// Mixed returns the cipher alphabet in use.
func (c *Substitution) Mixed() domain.Alphabet { return c.mixed }

// Compile-time assertion that Substitution implements domain.Cipher.
var _ domain.Cipher = (*Substitution)(nil)
