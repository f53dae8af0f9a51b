// Package cipher implements the classical substitution ciphers cifra ships.
//
// Contents
//
//   - Caesar: fixed rotation of the alphabet (NewCaesar, NewRot13)
//   - Atbash: substitution against the reversed alphabet (NewAtbash)
//   - Keyword and passphrase-keyed substitutions (NewKeyword, NewKeyed)
//   - Vigenère: rotation keyed per letter position (NewVigenere)
//
// # Notes
//
// Every cipher is total over Unicode text: characters whose lowercase form
// is not an alphabet letter pass through unchanged, and letter case is
// restored on output. Enciphering never fails; constructors validate key
// material instead.
package cipher
