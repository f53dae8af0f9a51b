package cipher

import (
	"strings"
	"unicode"

	"cifra/internal/domain"
)

// Names of the shipped ciphers, as accepted by the CLI.
const (
	NameCaesar   domain.CipherName = "caesar"
	NameRot13    domain.CipherName = "rot13"
	NameAtbash   domain.CipherName = "atbash"
	NameKeyword  domain.CipherName = "keyword"
	NameKeyed    domain.CipherName = "keyed"
	NameVigenere domain.CipherName = "vigenere"
)

// transform applies mapPos to every character of s whose lowercase form is a
// letter of src, restoring the original case afterwards. mapPos receives the
// letter's position in src. Every other character passes through unchanged.
func transform(s string, src domain.Alphabet, mapPos func(pos int) rune) string {
	return strings.Map(func(r rune) rune {
		lower := unicode.ToLower(r)
		pos, ok := src.Index(lower)
		if !ok {
			return r
		}
		out := mapPos(pos)
		if r != lower {
			return unicode.ToUpper(out)
		}
		return out
	}, s)
}
