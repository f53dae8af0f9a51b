package runes

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// All returns the scalar characters of s in order as a lazy sequence.
// The sequence is finite and restartable: ranging over it again replays the
// same characters from the start.
func All(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Split returns the scalar characters of s in order. Multi-byte symbols stay
// intact as single elements, and string(Split(s)) reproduces s exactly.
func Split(s string) []rune {
	return []rune(s)
}

// Count returns the length of s in scalar characters without allocating.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// Graphemes returns the user-perceived characters of s in order, one grapheme
// cluster per element. Symbols built from several scalar characters, such as
// emoji with skin-tone modifiers or letters with combining marks, stay intact
// as single elements. Concatenating the result reproduces s exactly.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// GraphemeCount returns the length of s in user-perceived characters.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
