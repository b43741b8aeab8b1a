package keyspace

import (
	"encoding/hex"
	"math/big"
)

// CounterSize is the size of the counter in bytes.
const CounterSize = 32

// MaxBits bounds the occupied region so a lane index fits in a uint64.
const MaxBits = 63

// modulus is 2^256.
var modulus = new(big.Int).Lsh(big.NewInt(1), CounterSize*8)

// Counter is a 256-bit big-endian unsigned integer.
type Counter [CounterSize]byte

// Int returns the counter as an integer.
func (c Counter) Int() *big.Int {
	return new(big.Int).SetBytes(c[:])
}

// String returns the counter in hex.
func (c Counter) String() string {
	return hex.EncodeToString(c[:])
}

// FromInt encodes n mod 2^256 as a counter.
func FromInt(n *big.Int) Counter {
	var c Counter
	m := new(big.Int).Mod(n, modulus)
	m.FillBytes(c[:])
	return c
}

// OccupiedBytes returns the number of low-order bytes touched by a B-bit
// occupied region, ceil(B/8).
func OccupiedBytes(bits uint) int {
	return int((bits + 7) / 8)
}

// Stride returns 2^bits, the amount a counter advances per batch.
func Stride(bits uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), bits)
}

// Advance returns c + 2^bits mod 2^256.
//
// After the addition the byte at index CounterSize-OccupiedBytes(bits), the
// top byte of the occupied region, is inspected: if it decreased and is not
// zero it is forced to zero and corrected is true. This narrow rule is kept
// as observed behaviour of existing counter files and is not a general carry
// law; it can only fire when bits is not a multiple of 8.
func Advance(c Counter, bits uint) (next Counter, corrected bool) {
	n := c.Int()
	n.Add(n, Stride(bits))
	next = FromInt(n)

	idx := CounterSize - OccupiedBytes(bits)
	if next[idx] < c[idx] && next[idx] != 0 {
		next[idx] = 0
		corrected = true
	}
	return next, corrected
}
