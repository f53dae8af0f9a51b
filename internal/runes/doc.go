// Package runes splits text into the units people and algorithms actually
// mean by "character".
//
// Indexing a Go string yields bytes, and symbols outside the ASCII range
// occupy several of them; slicing at byte boundaries silently corrupts such
// symbols into replacement-character fragments. The functions here iterate
// by scalar character (rune) instead, and, where the user-perceived notion
// of a character matters, by grapheme cluster. Splitting and rejoining with
// either granularity reproduces the original text exactly.
package runes
