package freq_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"cifra/internal/freq"
	"cifra/internal/runes"
)

func TestCount(t *testing.T) {
	got := freq.Count("aabbbc")
	want := map[rune]int{'a': 2, 'b': 3, 'c': 1}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for r, n := range want {
		if got[r] != n {
			t.Fatalf("count of %q = %d, want %d", r, got[r], n)
		}
	}
}

func TestCount_Empty(t *testing.T) {
	got := freq.Count("")
	if got == nil {
		t.Fatal("Count returned nil table")
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestCount_MultiByteSymbols(t *testing.T) {
	// Each symbol is one character despite needing four bytes.
	got := freq.Count("\U0001f600\U0001f600\U0001f0a1")
	if got['\U0001f600'] != 2 {
		t.Fatalf("count of emoji = %d, want 2", got['\U0001f600'])
	}
	if got['\U0001f0a1'] != 1 {
		t.Fatalf("count of card symbol = %d, want 1", got['\U0001f0a1'])
	}
	if got.Total() != 3 {
		t.Fatalf("Total = %d, want 3", got.Total())
	}
}

func TestCount_TotalMatchesLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	for range 300 {
		b := &strings.Builder{}
		for range rng.IntN(60) {
			// Mix ASCII with characters outside the basic range.
			if rng.IntN(4) == 0 {
				b.WriteRune(0x1f300 + rng.Int32N(0x100))
			} else {
				b.WriteRune(' ' + rng.Int32N(95))
			}
		}
		s := b.String()
		if have, want := freq.Count(s).Total(), runes.Count(s); have != want {
			t.Fatalf("counts for %q sum to %d, character length is %d", s, have, want)
		}
	}
}
