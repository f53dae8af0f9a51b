package domain_test

import (
	"testing"

	"cifra/internal/domain"
)

func TestFrequencyTable_Total(t *testing.T) {
	tab := domain.FrequencyTable{'a': 2, 'b': 3, 'c': 1}
	if got := tab.Total(); got != 6 {
		t.Fatalf("Total = %d, want 6", got)
	}
	if got := tab.Distinct(); got != 3 {
		t.Fatalf("Distinct = %d, want 3", got)
	}
	if got := (domain.FrequencyTable{}).Total(); got != 0 {
		t.Fatalf("empty Total = %d, want 0", got)
	}
}

func TestFrequencyTable_Sorted(t *testing.T) {
	tab := domain.FrequencyTable{'b': 3, 'c': 1, 'a': 2, 'd': 1}
	got := tab.Sorted()
	want := []domain.Frequency{
		{Rune: 'b', Count: 3},
		{Rune: 'a', Count: 2},
		{Rune: 'c', Count: 1}, // count tie resolved by code point
		{Rune: 'd', Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
