package alphabet

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"

	"golang.org/x/crypto/argon2"

	"cifra/internal/domain"
	"cifra/internal/util/memzero"
)

// Argon2id parameters for stretching a passphrase into shuffle seed
// material. Parallelism stays at 1 so the output is identical everywhere.
const (
	deriveTime    = 3
	deriveMemory  = 32 * 1024
	deriveThreads = 1
	seedBytes     = 16
)

// deriveSalt fixes the derivation context. The same passphrase must produce
// the same alphabet on every machine, so the salt is a package constant
// rather than a random per-use value.
var deriveSalt = []byte("cifra/alphabet/v1")

// ErrEmptyPassphrase is returned when a derived alphabet is requested without a passphrase.
var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// Derived returns a permutation of base determined entirely by passphrase.
// The passphrase is stretched with argon2id and the result seeds a
// Fisher-Yates shuffle of the base letters.
func Derived(base domain.Alphabet, passphrase string) (domain.Alphabet, error) {
	if passphrase == "" {
		return domain.Alphabet{}, ErrEmptyPassphrase
	}
	seed := argon2.IDKey([]byte(passphrase), deriveSalt, deriveTime, deriveMemory, deriveThreads, seedBytes)
	defer memzero.Zero(seed)

	rng := rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(seed[:8]),
		binary.BigEndian.Uint64(seed[8:]),
	))
	letters := base.Runes()
	for i := len(letters) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
	return domain.NewAlphabet(letters)
}
