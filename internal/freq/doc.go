// Package freq builds character-frequency tables from text.
package freq
