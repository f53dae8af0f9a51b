package domain

// Candidate is one possible decryption of an enciphered text, scored
// against a language profile. Lower scores fit the language better.
type Candidate struct {
	Shift     int     `json:"shift"`
	Plaintext string  `json:"plaintext"`
	Score     float64 `json:"score"`
}

// Analyzer ranks candidate decryptions of enciphered text.
type Analyzer interface {
	CrackCaesar(text string) ([]Candidate, error)
}
