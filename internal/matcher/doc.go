// Package matcher defines the batch contract between the search coordinator
// and a parallel matching primitive, and provides a CPU implementation of it.
//
// A Batch is a 32-byte base key plus an occupied width B. The matcher derives
// one candidate seed per lane (seed = base + lane for lane in [0, 2^B)),
// derives its public identifier, encodes it as base58 and tests it against a
// compiled pattern.Table. It reports at most one winning seed per batch
// through a 33-byte output buffer: a found flag followed by the seed.
//
// Lanes are scheduled in local groups (32 lanes by default) which worker
// goroutines claim from a shared cursor. The first worker to find a match
// stops the others; which winner is reported when several lanes match is not
// specified.
//
// A Session bundles the device, the table and the key scheme. It is built
// once at startup and is immutable afterwards; every dispatch goes through it.
package matcher
