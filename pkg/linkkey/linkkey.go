// Package linkkey generates the short friendly keys that address forms in
// public URLs, distinct from their database primary keys.
package linkkey

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// KeyLength fits the varchar(11) column and still leaves the collision
	// probability negligible (62^11 keys).
	KeyLength = 11
)

// Generate returns a new random key. Uniqueness is enforced by the unique
// index on forms.key; callers retry on a duplicate-key error.
func Generate() (string, error) {
	buf := make([]byte, KeyLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
