package app

import (
	"cifra/internal/alphabet"
	"cifra/internal/analysis"
	"cifra/internal/domain"
	"cifra/internal/profile"
)

// App bundles the dependencies shared by all commands.
type App struct {
	Alphabet domain.Alphabet
	Profiles domain.ProfileSource
	Analysis domain.Analyzer
}

// New constructs the dependency graph from cfg. Profile files are opened
// lazily, so a bad path surfaces on first use rather than here.
func New(cfg Config) *App {
	base := alphabet.Lower()

	var profiles domain.ProfileSource = profile.Embedded()
	if cfg.ProfilePath != "" {
		profiles = profile.File(cfg.ProfilePath)
	}

	return &App{
		Alphabet: base,
		Profiles: profiles,
		Analysis: analysis.New(base, profiles),
	}
}
