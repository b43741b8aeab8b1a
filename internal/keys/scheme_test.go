package keys

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEd25519_RFC8032Vector(t *testing.T) {
	seed := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	want := mustHex(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")

	pub, err := Ed25519{}.PublicKey(seed)
	require.NoError(t, err)
	assert.Equal(t, want, pub[:])
}

func TestEd25519_MatchesStdlib(t *testing.T) {
	for i := 0; i < 16; i++ {
		seed := make([]byte, SeedSize)
		for j := range seed {
			seed[j] = byte(i*31 + j*7)
		}
		pub, err := Ed25519{}.PublicKey(seed)
		require.NoError(t, err)

		std := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		assert.Equal(t, []byte(std), pub[:], "seed %x", seed)
	}
}

func TestEd25519_Deterministic(t *testing.T) {
	seed := make([]byte, SeedSize)
	seed[31] = 7
	a, err := Ed25519{}.PublicKey(seed)
	require.NoError(t, err)
	b, err := Ed25519{}.PublicKey(seed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSecp256k1XOnly_Generator(t *testing.T) {
	seed := make([]byte, SeedSize)
	seed[31] = 1
	pub, err := Secp256k1XOnly{}.PublicKey(seed)
	require.NoError(t, err)
	assert.Equal(t,
		mustHex(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		pub[:])
}

func TestSecp256k1XOnly_RejectsInvalidSeeds(t *testing.T) {
	zero := make([]byte, SeedSize)
	_, err := Secp256k1XOnly{}.PublicKey(zero)
	assert.ErrorIs(t, err, ErrInvalidSeed)

	order := mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	_, err = Secp256k1XOnly{}.PublicKey(order)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestPublicKey_SeedLength(t *testing.T) {
	for _, s := range []Scheme{Ed25519{}, Secp256k1XOnly{}} {
		_, err := s.PublicKey(make([]byte, 31))
		assert.ErrorIs(t, err, ErrSeedLength, s.Name())
	}
}

func TestSchemeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "ed25519"},
		{"ed25519", "ed25519"},
		{"Ed25519", "ed25519"},
		{" secp256k1 ", "secp256k1"},
	}
	for _, tt := range tests {
		s, err := SchemeByName(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, s.Name())
	}

	_, err := SchemeByName("rsa")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestAddress(t *testing.T) {
	var zero [PublicKeySize]byte
	assert.Equal(t, strings.Repeat("1", 32), Address(zero))

	seed := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	pub, err := Ed25519{}.PublicKey(seed)
	require.NoError(t, err)

	addr := Address(pub)
	decoded, err := DecodeBase58(addr)
	require.NoError(t, err)
	assert.Equal(t, pub[:], decoded)
}

func TestIsBase58(t *testing.T) {
	valid := []string{"", "1", "SoL", "soL", "abc", "z9", Alphabet}
	for _, s := range valid {
		assert.True(t, IsBase58(s), s)
	}
	invalid := []string{"0", "O", "I", "l", "SOL", "Sol", "héllo", "a b"}
	for _, s := range invalid {
		assert.False(t, IsBase58(s), s)
	}
}
