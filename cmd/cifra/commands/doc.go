// Package commands defines the cifra CLI and wires dependencies for subcommands.
//
// Commands
//
//   - alphabet  Print the working alphabet or a derived variant
//   - encode    Encipher text with the selected cipher
//   - decode    Decipher text with the selected cipher
//   - rot13     Apply the self-inverse rot13 cipher
//   - freq      Count character frequencies
//   - crack     Rank caesar shifts by letter-frequency fit
//   - inspect   List the characters of text with their code points
//
// # Implementation
//
// The root command builds a dependency graph (alphabet, profile source,
// analysis service) before any subcommand runs, so handlers share one app
// context. Commands take their text from the arguments, or from standard
// input when no arguments are given.
package commands
