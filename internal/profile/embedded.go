package profile

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"cifra/internal/domain"
)

// englishYAML is the default profile baked into the binary, so the tool
// works without any files on disk.
//
//go:embed english.yaml
var englishYAML []byte

// Embedded returns the built-in English letter-frequency profile.
func Embedded() domain.ProfileSource { return embeddedSource{} }

type embeddedSource struct{}

func (embeddedSource) Profile() (domain.Profile, error) {
	var r raw
	if err := yaml.UnmarshalWithOptions(englishYAML, &r, yaml.Strict()); err != nil {
		return domain.Profile{}, fmt.Errorf("decode embedded profile: %w", err)
	}
	return build(r)
}

// Compile-time assertion that embeddedSource implements domain.ProfileSource.
var _ domain.ProfileSource = embeddedSource{}
