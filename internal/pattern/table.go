package pattern

import (
	"errors"
	"fmt"
)

// ErrInconsistentTable is returned by Validate when the table fields disagree.
var ErrInconsistentTable = errors.New("inconsistent prefix table")

// Table is a compiled prefix/suffix table. It is read-only once compiled.
type Table struct {
	Prefixes []byte
	Lengths  []int
	Count    int
	Suffix   []byte
}

// Validate checks that the lengths cover the prefix buffer exactly and that
// Count matches the number of lengths. Zero-length entries are allowed.
func (t *Table) Validate() error {
	if t.Count != len(t.Lengths) {
		return fmt.Errorf("%w: count %d but %d lengths", ErrInconsistentTable, t.Count, len(t.Lengths))
	}
	total := 0
	for i, n := range t.Lengths {
		if n < 0 {
			return fmt.Errorf("%w: prefix %d has length %d", ErrInconsistentTable, i, n)
		}
		total += n
	}
	if total != len(t.Prefixes) {
		return fmt.Errorf("%w: lengths sum to %d but buffer holds %d bytes", ErrInconsistentTable, total, len(t.Prefixes))
	}
	return nil
}

// Strings returns all prefixes in table order.
func (t *Table) Strings() []string {
	out := make([]string, 0, t.Count)
	off := 0
	for _, n := range t.Lengths {
		out = append(out, string(t.Prefixes[off:off+n]))
		off += n
	}
	return out
}

// Match reports whether address starts with any prefix of the table and ends
// with the suffix. A table without prefixes matches nothing; a zero-length
// prefix matches every address.
func (t *Table) Match(address string) bool {
	if len(t.Suffix) > 0 && !hasSuffix(address, t.Suffix) {
		return false
	}
	off := 0
	for _, n := range t.Lengths {
		if len(address) >= n && address[:n] == string(t.Prefixes[off:off+n]) {
			return true
		}
		off += n
	}
	return false
}

func hasSuffix(address string, suffix []byte) bool {
	return len(address) >= len(suffix) && address[len(address)-len(suffix):] == string(suffix)
}
