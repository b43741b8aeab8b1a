package keys

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// SeedSize is the size of a signing-key seed in bytes.
	SeedSize = 32
	// PublicKeySize is the size of a derived public identifier in bytes.
	PublicKeySize = 32
)

var (
	// ErrSeedLength is returned when a seed is not SeedSize bytes long.
	ErrSeedLength = errors.New("seed must be 32 bytes")
	// ErrInvalidSeed is returned when a seed is not a usable private key for the scheme.
	ErrInvalidSeed = errors.New("seed is not a valid private key")
	// ErrUnknownScheme is returned by SchemeByName for unregistered names.
	ErrUnknownScheme = errors.New("unknown key scheme")
)

// Scheme derives the public identifier of a seed.
// Implementations must be pure: the same seed always yields the same identifier.
type Scheme interface {
	// Name returns the registered name of the scheme.
	Name() string

	// PublicKey derives the 32-byte public identifier of seed.
	PublicKey(seed []byte) ([PublicKeySize]byte, error)
}

// Ed25519 derives Ed25519 public keys.
type Ed25519 struct{}

// Name returns "ed25519".
func (Ed25519) Name() string { return "ed25519" }

// PublicKey computes A = s*B where s is the clamped lower half of SHA-512(seed).
func (Ed25519) PublicKey(seed []byte) ([PublicKeySize]byte, error) {
	var pub [PublicKeySize]byte
	if len(seed) != SeedSize {
		return pub, ErrSeedLength
	}

	h := sha512.Sum512(seed)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return pub, fmt.Errorf("failed to clamp scalar: %w", err)
	}

	A := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	copy(pub[:], A.Bytes())
	return pub, nil
}

// Secp256k1XOnly derives x-only secp256k1 public keys.
type Secp256k1XOnly struct{}

// Name returns "secp256k1".
func (Secp256k1XOnly) Name() string { return "secp256k1" }

// PublicKey interprets seed as a big-endian scalar and returns the x coordinate
// of seed*G. Zero seeds and seeds not below the group order are rejected.
func (Secp256k1XOnly) PublicKey(seed []byte) ([PublicKeySize]byte, error) {
	var pub [PublicKeySize]byte
	if len(seed) != SeedSize {
		return pub, ErrSeedLength
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(seed); overflow || k.IsZero() {
		return pub, ErrInvalidSeed
	}

	priv := secp256k1.NewPrivateKey(&k)
	compressed := priv.PubKey().SerializeCompressed()
	copy(pub[:], compressed[1:])
	return pub, nil
}

// Schemes returns the names of all registered schemes.
func Schemes() []string {
	return []string{Ed25519{}.Name(), Secp256k1XOnly{}.Name()}
}

// SchemeByName returns the scheme registered under name.
// The empty name selects Ed25519.
func SchemeByName(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ed25519":
		return Ed25519{}, nil
	case "secp256k1":
		return Secp256k1XOnly{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScheme, name, strings.Join(Schemes(), ", "))
	}
}
