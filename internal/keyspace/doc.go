// Package keyspace owns the persisted 256-bit search counter.
//
// The counter is a big-endian unsigned integer split into a high region and a
// low "occupied" region of B bits. A matcher enumerates every value of the
// occupied region itself, so each batch covers 2^B keys and the counter then
// advances by exactly that stride. Only the full 32 bytes are persisted; the
// occupied region is always zero in a freshly seeded counter.
//
// The counter is persisted after every completed batch. A process killed
// during a batch restarts at the same counter value and repeats only that
// batch. Exactly one process may use a counter file at a time.
package keyspace
