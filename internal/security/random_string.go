package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Unambiguous alphabet for temporary passwords handed out over the phone:
// no 0/O, 1/l/I lookalikes.
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var errNegativeLength = errors.New("length must be non-negative")

// TempPassword returns a cryptographically secure, unbiased random string of
// the requested length, suitable as a one-time password.
func TempPassword(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}

	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = tempPasswordAlphabet[position.Int64()]
	}

	return string(value), nil
}
