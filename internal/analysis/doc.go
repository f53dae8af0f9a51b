// Package analysis applies letter-frequency statistics to enciphered text.
//
// It counts alphabet letters in a Unicode-safe way, measures how closely a
// count distribution matches a language profile (chi-squared), and uses that
// measure to rank the possible shifts of a Caesar-enciphered text.
package analysis
