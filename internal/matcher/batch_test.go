package matcher

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/solvanity/internal/keyspace"
)

func TestLaneSeed(t *testing.T) {
	var base keyspace.Counter
	seed := LaneSeed(base, 5)
	assert.Equal(t, byte(5), seed[31])

	seed = LaneSeed(base, 0x123456)
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, seed[29:])

	base[31] = 0xFF
	seed = LaneSeed(base, 1)
	assert.Equal(t, byte(0x01), seed[30])
	assert.Equal(t, byte(0x00), seed[31])

	base = keyspace.Counter{}
	base[0] = 0x42
	seed = LaneSeed(base, 0)
	assert.Equal(t, [32]byte(base), seed)
}

func TestLaneSeed_MatchesCounterArithmetic(t *testing.T) {
	var base keyspace.Counter
	for i := range base {
		base[i] = byte(0xF0 + i%16)
	}
	for _, lane := range []uint64{0, 1, 255, 256, 1<<24 - 1, 1 << 40} {
		seed := LaneSeed(base, lane)
		want := base.Int()
		want.Add(want, new(big.Int).SetUint64(lane))
		assert.Equal(t, keyspace.FromInt(want), keyspace.Counter(seed), "lane %d", lane)
	}
}

func TestBatch(t *testing.T) {
	b := NewBatch(keyspace.Counter{}, 24)
	assert.Equal(t, uint64(1<<24), b.Lanes())
	assert.Equal(t, 3, b.OccupiedBytes())
	assert.Equal(t, DefaultLocalSize, b.LocalSize)
	require.NoError(t, b.Validate())

	assert.ErrorIs(t, Batch{Bits: 0}.Validate(), ErrInvalidBatch)
	assert.ErrorIs(t, Batch{Bits: 64}.Validate(), ErrInvalidBatch)
	assert.ErrorIs(t, Batch{Bits: 8, LocalSize: -1}.Validate(), ErrInvalidBatch)
}

func TestResultEncoding(t *testing.T) {
	var r Result
	out := r.Encode()
	assert.Equal(t, [OutputSize]byte{}, out)

	r = Result{Found: true}
	r.Seed[0], r.Seed[31] = 0xAA, 0xBB
	out = r.Encode()
	assert.Equal(t, byte(1), out[0])
	assert.Equal(t, byte(0xAA), out[1])
	assert.Equal(t, byte(0xBB), out[32])

	decoded, err := DecodeResult(out[:])
	require.NoError(t, err)
	assert.True(t, decoded.Found)
	assert.Equal(t, r.Seed, decoded.Seed)

	out[0] = 7
	decoded, err = DecodeResult(out[:])
	require.NoError(t, err)
	assert.True(t, decoded.Found)

	_, err = DecodeResult(out[:32])
	assert.ErrorIs(t, err, ErrOutputSize)
}

func TestFunc(t *testing.T) {
	var m Matcher = Func(func(ctx context.Context, b Batch) (Result, error) {
		return Result{Found: b.Bits == 3}, nil
	})
	assert.Equal(t, "func", m.Name())
	r, err := m.Dispatch(context.Background(), NewBatch(keyspace.Counter{}, 3))
	require.NoError(t, err)
	assert.True(t, r.Found)
}
