package domain

// CipherName identifies a cipher implementation.
type CipherName string

// String returns the string form of the cipher name.
func (n CipherName) String() string { return string(n) }

// Cipher transforms text letter by letter. Implementations are total:
// characters outside their alphabet pass through unchanged, so arbitrary
// Unicode input survives an Encipher/Decipher round trip.
type Cipher interface {
	Encipher(text string) string
	Decipher(text string) string
}
