package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"cifra/internal/alphabet"
	"cifra/internal/domain"
)

// Accepted bounds for the sum of all frequencies; the nominal value is 100.
const (
	sumLow  = 95.0
	sumHigh = 105.0
)

// raw mirrors the YAML profile document.
type raw struct {
	Language    string             `yaml:"language"`
	Frequencies map[string]float64 `yaml:"frequencies"`
}

// File returns a source that reads a YAML profile from path on every call.
func File(path string) domain.ProfileSource { return fileSource{path: path} }

type fileSource struct{ path string }

func (s fileSource) Profile() (domain.Profile, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("open profile %q: %w", s.path, err)
	}
	defer f.Close()

	var r raw
	dec := yaml.NewDecoder(f, yaml.Strict())
	if err := dec.Decode(&r); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %q: %w", s.path, err)
	}
	return build(r)
}

// build validates the decoded document and converts it to a domain.Profile.
func build(r raw) (domain.Profile, error) {
	if r.Language == "" {
		return domain.Profile{}, errors.New("profile is missing a language name")
	}
	base := alphabet.Lower()
	freqs := make(map[rune]float64, domain.AlphabetSize)
	sum := 0.0
	for key, pct := range r.Frequencies {
		letters := []rune(key)
		if len(letters) != 1 {
			return domain.Profile{}, fmt.Errorf("profile %q: frequency key %q is not a single letter", r.Language, key)
		}
		l := letters[0]
		if !base.Contains(l) {
			return domain.Profile{}, fmt.Errorf("profile %q: frequency key %q is outside the alphabet", r.Language, key)
		}
		if pct < 0 {
			return domain.Profile{}, fmt.Errorf("profile %q: frequency of %q is negative", r.Language, key)
		}
		freqs[l] = pct
		sum += pct
	}
	for _, l := range base {
		if _, ok := freqs[l]; !ok {
			return domain.Profile{}, fmt.Errorf("profile %q is missing letter %q", r.Language, l)
		}
	}
	if sum < sumLow || sum > sumHigh {
		return domain.Profile{}, fmt.Errorf("profile %q: frequencies sum to %.3f, expected about 100", r.Language, sum)
	}
	return domain.Profile{Language: r.Language, Frequencies: freqs}, nil
}

// Compile-time assertion that fileSource implements domain.ProfileSource.
var _ domain.ProfileSource = fileSource{}
