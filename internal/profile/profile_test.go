package profile_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cifra/internal/alphabet"
	"cifra/internal/domain"
	"cifra/internal/profile"
)

// writeProfile writes contents to a temp YAML file and returns its path.
func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

// uniformYAML builds a profile document giving every letter the same share.
// Letters listed in skip are left out.
func uniformYAML(language string, skip ...rune) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "language: %s\nfrequencies:\n", language)
	for _, l := range alphabet.Lower() {
		skipped := false
		for _, s := range skip {
			if l == s {
				skipped = true
			}
		}
		if skipped {
			continue
		}
		fmt.Fprintf(b, "  %c: %.6f\n", l, 100.0/26)
	}
	return b.String()
}

func TestEmbedded(t *testing.T) {
	p, err := profile.Embedded().Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.Language != "english" {
		t.Fatalf("language = %q", p.Language)
	}
	if len(p.Frequencies) != domain.AlphabetSize {
		t.Fatalf("got %d letters, want %d", len(p.Frequencies), domain.AlphabetSize)
	}

	sum := 0.0
	for l, pct := range p.Frequencies {
		if pct > p.Freq('e') {
			t.Fatalf("%q is more frequent than 'e' (%f > %f)", l, pct, p.Freq('e'))
		}
		sum += pct
	}
	if math.Abs(sum-100) > 0.1 {
		t.Fatalf("frequencies sum to %f", sum)
	}
}

func TestFile_OK(t *testing.T) {
	path := writeProfile(t, uniformYAML("flatland"))
	p, err := profile.File(path).Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.Language != "flatland" {
		t.Fatalf("language = %q", p.Language)
	}
	if got := p.Freq('m'); math.Abs(got-100.0/26) > 1e-6 {
		t.Fatalf("Freq('m') = %f", got)
	}
}

func TestFile_Missing(t *testing.T) {
	src := profile.File(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := src.Profile(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFile_MissingLetter(t *testing.T) {
	path := writeProfile(t, uniformYAML("gapped", 'q'))
	_, err := profile.File(path).Profile()
	if err == nil || !strings.Contains(err.Error(), "missing letter") {
		t.Fatalf("got %v, want missing-letter error", err)
	}
}

func TestFile_RejectsUnknownField(t *testing.T) {
	path := writeProfile(t, uniformYAML("strictly")+"comment: not allowed\n")
	if _, err := profile.File(path).Profile(); err == nil {
		t.Fatal("expected strict decoding to reject unknown field")
	}
}

func TestFile_BadSum(t *testing.T) {
	b := &strings.Builder{}
	b.WriteString("language: sparse\nfrequencies:\n")
	for _, l := range alphabet.Lower() {
		fmt.Fprintf(b, "  %c: 1.0\n", l)
	}
	path := writeProfile(t, b.String())
	_, err := profile.File(path).Profile()
	if err == nil || !strings.Contains(err.Error(), "sum to") {
		t.Fatalf("got %v, want sum error", err)
	}
}

func TestFile_NegativeFrequency(t *testing.T) {
	doc := strings.Replace(uniformYAML("negative"), "  a: ", "  a: -", 1)
	path := writeProfile(t, doc)
	_, err := profile.File(path).Profile()
	if err == nil || !strings.Contains(err.Error(), "negative") {
		t.Fatalf("got %v, want negative-frequency error", err)
	}
}

func TestFile_BadKey(t *testing.T) {
	path := writeProfile(t, uniformYAML("widechars", 'a')+"  ab: 3.846154\n")
	_, err := profile.File(path).Profile()
	if err == nil || !strings.Contains(err.Error(), "not a single letter") {
		t.Fatalf("got %v, want single-letter key error", err)
	}
}

func TestFile_NoLanguage(t *testing.T) {
	doc := strings.TrimPrefix(uniformYAML("x"), "language: x\n")
	path := writeProfile(t, doc)
	_, err := profile.File(path).Profile()
	if err == nil || !strings.Contains(err.Error(), "language") {
		t.Fatalf("got %v, want missing-language error", err)
	}
}
