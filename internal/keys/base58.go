package keys

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Alphabet is the base58 alphabet. It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidBase58 is returned when a string contains characters outside Alphabet.
var ErrInvalidBase58 = errors.New("invalid base58 string")

// Address returns the base58 encoding of a public identifier.
func Address(pub [PublicKeySize]byte) string {
	return base58.Encode(pub[:])
}

// DecodeBase58 decodes s. The empty string decodes to an empty slice.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	// base58.Decode signals bad characters with an empty result; any
	// non-empty valid input decodes to at least one byte.
	b := base58.Decode(s)
	if len(b) == 0 {
		return nil, ErrInvalidBase58
	}
	return b, nil
}

// IsBase58 reports whether every character of s is in Alphabet.
func IsBase58(s string) bool {
	_, err := DecodeBase58(s)
	return err == nil
}
