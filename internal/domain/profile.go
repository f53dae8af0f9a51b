package domain

// Profile holds the relative letter frequencies of a language, expressed in
// percent and summing to roughly one hundred.
type Profile struct {
	Language    string
	Frequencies map[rune]float64
}

// Freq returns the relative frequency of r, or zero when the profile does
// not list it.
func (p Profile) Freq(r rune) float64 { return p.Frequencies[r] }

// ProfileSource loads a letter-frequency profile.
type ProfileSource interface {
	Profile() (Profile, error)
}
