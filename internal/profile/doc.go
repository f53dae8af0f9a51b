// Package profile loads letter-frequency reference profiles.
//
// A profile names a language and lists the relative frequency of each
// alphabet letter in percent. Profiles are YAML documents; a default English
// profile is baked into the binary, and alternative profiles can be read
// from caller-supplied files. Both sources validate that a profile covers
// the whole alphabet with non-negative frequencies summing to roughly one
// hundred.
package profile
