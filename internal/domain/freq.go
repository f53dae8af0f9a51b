package domain

import (
	"cmp"
	"slices"
)

// FrequencyTable maps each character of a text to its occurrence count.
// Keys are scalar characters (runes), never raw storage units, so a
// multi-byte symbol counts as a single entry.
type FrequencyTable map[rune]int

// Total returns the sum of all counts. For a table built from a text this
// equals the text's length in scalar characters.
func (t FrequencyTable) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Distinct returns the number of distinct characters in the table.
func (t FrequencyTable) Distinct() int { return len(t) }

// Frequency is one row of a sorted frequency table.
type Frequency struct {
	Rune  rune
	Count int
}

// Sorted returns the table's entries ordered by descending count, ties broken
// by ascending code point so the order is deterministic.
func (t FrequencyTable) Sorted() []Frequency {
	out := make([]Frequency, 0, len(t))
	for r, c := range t {
		out = append(out, Frequency{Rune: r, Count: c})
	}
	slices.SortFunc(out, func(x, y Frequency) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Rune, y.Rune)
	})
	return out
}
