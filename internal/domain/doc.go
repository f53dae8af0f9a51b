// Package domain defines core data models and interfaces shared across cifra.
// It contains plain types (alphabets, frequency tables, language profiles)
// and contracts (interfaces) only.
package domain
