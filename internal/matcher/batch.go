package matcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/keyspace"
)

const (
	// OutputSize is the size of the match output buffer: flag byte + seed.
	OutputSize = 1 + keys.SeedSize
	// DefaultLocalSize is the number of lanes in a scheduling group.
	DefaultLocalSize = 32
)

var (
	// ErrInvalidBatch is returned for batches whose width is out of range.
	ErrInvalidBatch = errors.New("invalid batch")
	// ErrOutputSize is returned when an output buffer is not OutputSize bytes.
	ErrOutputSize = errors.New("match output must be 33 bytes")
)

// Batch is one dispatch: 2^Bits lanes derived from Base.
type Batch struct {
	Base      keyspace.Counter
	Bits      uint
	LocalSize int
}

// NewBatch returns a batch with the default local group size.
func NewBatch(base keyspace.Counter, bits uint) Batch {
	return Batch{Base: base, Bits: bits, LocalSize: DefaultLocalSize}
}

// Lanes returns the global lane count 2^Bits.
func (b Batch) Lanes() uint64 {
	return uint64(1) << b.Bits
}

// OccupiedBytes returns the number of low-order base bytes the lanes enumerate.
func (b Batch) OccupiedBytes() int {
	return keyspace.OccupiedBytes(b.Bits)
}

// Validate checks the batch width and group size.
func (b Batch) Validate() error {
	if b.Bits < 1 || b.Bits > keyspace.MaxBits {
		return fmt.Errorf("%w: %d occupied bits", ErrInvalidBatch, b.Bits)
	}
	if b.LocalSize < 0 {
		return fmt.Errorf("%w: local size %d", ErrInvalidBatch, b.LocalSize)
	}
	return nil
}

func (b Batch) localSize() uint64 {
	if b.LocalSize <= 0 {
		return DefaultLocalSize
	}
	return uint64(b.LocalSize)
}

// LaneSeed returns base + lane as a 32-byte big-endian seed, wrapping at 2^256.
func LaneSeed(base keyspace.Counter, lane uint64) [keys.SeedSize]byte {
	seed := [keys.SeedSize]byte(base)
	carry := lane
	for i := keys.SeedSize - 1; i >= 0 && carry != 0; i-- {
		sum := uint64(seed[i]) + (carry & 0xff)
		seed[i] = byte(sum)
		carry = (carry >> 8) + (sum >> 8)
	}
	return seed
}

// Result is the outcome of one batch.
type Result struct {
	Found bool
	Seed  [keys.SeedSize]byte
	// Lane is the winning lane index. It is informational and not part of
	// the output buffer.
	Lane uint64
}

// Encode returns the output buffer representation of r.
func (r Result) Encode() [OutputSize]byte {
	var out [OutputSize]byte
	if r.Found {
		out[0] = 1
		copy(out[1:], r.Seed[:])
	}
	return out
}

// DecodeResult parses an output buffer. Any non-zero flag byte means found.
func DecodeResult(out []byte) (Result, error) {
	if len(out) != OutputSize {
		return Result{}, fmt.Errorf("%w: got %d", ErrOutputSize, len(out))
	}
	var r Result
	if out[0] == 0 {
		return r, nil
	}
	r.Found = true
	copy(r.Seed[:], out[1:])
	return r, nil
}

// Matcher runs batches. Dispatch blocks until every lane of the batch has been
// evaluated, a match is found, or ctx is done. A batch interrupted by ctx
// returns ctx's error and must be treated as not explored.
type Matcher interface {
	Name() string
	Dispatch(ctx context.Context, b Batch) (Result, error)
}

// Func adapts a function to the Matcher interface.
type Func func(ctx context.Context, b Batch) (Result, error)

// Name returns "func".
func (f Func) Name() string { return "func" }

// Dispatch calls f.
func (f Func) Dispatch(ctx context.Context, b Batch) (Result, error) {
	return f(ctx, b)
}
