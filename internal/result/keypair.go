package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mahdiidarabi/solvanity/internal/fileio"
	"github.com/mahdiidarabi/solvanity/internal/keys"
)

// KeyPairSize is the length of the persisted seed||public encoding.
const KeyPairSize = keys.SeedSize + keys.PublicKeySize

// ErrMalformedKeyPair is returned by ReadKeyPair for files that are not a
// 64-entry array of byte values.
var ErrMalformedKeyPair = errors.New("malformed key pair file")

// KeyPair is a seed with its derived public key and address.
type KeyPair struct {
	Seed      [keys.SeedSize]byte
	PublicKey [keys.PublicKeySize]byte
	Address   string
}

// Derive computes the key pair of seed under scheme.
func Derive(scheme keys.Scheme, seed [keys.SeedSize]byte) (KeyPair, error) {
	pub, err := scheme.PublicKey(seed[:])
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to derive public key: %w", err)
	}
	return KeyPair{
		Seed:      seed,
		PublicKey: pub,
		Address:   keys.Address(pub),
	}, nil
}

// Bytes returns seed||public.
func (kp KeyPair) Bytes() []byte {
	out := make([]byte, 0, KeyPairSize)
	out = append(out, kp.Seed[:]...)
	return append(out, kp.PublicKey[:]...)
}

// MarshalJSON encodes the key pair as an array of 64 integers.
func (kp KeyPair) MarshalJSON() ([]byte, error) {
	b := kp.Bytes()
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// Writer persists key pairs under Dir.
type Writer struct {
	Dir string
}

// Path returns the file a key pair is written to.
func (w Writer) Path(kp KeyPair) string {
	return filepath.Join(w.Dir, kp.Address+".json")
}

// Persist writes kp to Dir/<address>.json, creating Dir if needed. An existing
// file for the same address is overwritten with identical content.
func (w Writer) Persist(kp KeyPair) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.Marshal(kp)
	if err != nil {
		return "", fmt.Errorf("failed to encode key pair: %w", err)
	}
	path := w.Path(kp)
	if err := fileio.WriteAtomic(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write key pair: %w", err)
	}
	return path, nil
}

// ReadKeyPair loads a key pair file and recomputes its address from the
// stored public key.
func ReadKeyPair(path string) (KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to read key pair: %w", err)
	}
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return KeyPair{}, fmt.Errorf("%w: %v", ErrMalformedKeyPair, err)
	}
	if len(ints) != KeyPairSize {
		return KeyPair{}, fmt.Errorf("%w: %d entries", ErrMalformedKeyPair, len(ints))
	}

	var kp KeyPair
	for i, v := range ints {
		if v < 0 || v > 255 {
			return KeyPair{}, fmt.Errorf("%w: entry %d is %d", ErrMalformedKeyPair, i, v)
		}
		if i < keys.SeedSize {
			kp.Seed[i] = byte(v)
		} else {
			kp.PublicKey[i-keys.SeedSize] = byte(v)
		}
	}
	kp.Address = keys.Address(kp.PublicKey)
	return kp, nil
}
