// Package alphabet builds the alphabets the ciphers work over.
//
// Contents
//
//   - The plain lowercase Latin alphabet, computed from letter positions
//     rather than enumerated (Lower)
//   - Mixed alphabets drawn from a keyword (Keyword)
//   - Mixed alphabets derived deterministically from a passphrase through
//     argon2id and a seeded shuffle (Derived)
//
// All constructors return domain.Alphabet values; rotation and reversal live
// on that type.
package alphabet
