package pattern

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/mahdiidarabi/solvanity/internal/keys"
)

// ErrInvalidSuffix is wrapped by SuffixError.
var ErrInvalidSuffix = errors.New("suffix is not valid base58")

// SuffixError reports the suffix that failed alphabet validation.
type SuffixError struct {
	Suffix string
}

func (e *SuffixError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSuffix, e.Suffix)
}

func (e *SuffixError) Unwrap() error {
	return ErrInvalidSuffix
}

// Compilation is the output of Compile.
type Compilation struct {
	Table Table

	// Accepted lists the surviving prefixes in table order.
	Accepted []string
	// Rejected lists the candidates dropped for containing characters outside
	// the base58 alphabet.
	Rejected []string
	// Candidates is the size of the deduplicated candidate set before validation.
	Candidates int
}

// Skipped returns the number of rejected candidates.
func (c *Compilation) Skipped() int {
	return len(c.Rejected)
}

// Compile builds the prefix and suffix tables for prefixes and suffix.
//
// The suffix is validated first and an invalid suffix fails the whole
// compilation. Prefix candidates that are not valid base58 are not an error;
// they are recorded in Rejected and left out of the table. The empty prefix is
// valid base58 and compiles to a zero-length entry that matches every
// address, leaving the suffix as the only constraint.
func Compile(prefixes []Prefix, suffix string) (*Compilation, error) {
	if !keys.IsBase58(suffix) {
		return nil, &SuffixError{Suffix: suffix}
	}

	set := make(map[string]struct{})
	for _, p := range prefixes {
		for _, c := range p.Candidates() {
			set[c] = struct{}{}
		}
	}

	candidates := make([]string, 0, len(set))
	for c := range set {
		candidates = append(candidates, c)
	}
	slices.Sort(candidates)

	comp := &Compilation{Candidates: len(candidates)}
	t := &comp.Table
	for _, c := range candidates {
		if !keys.IsBase58(c) {
			comp.Rejected = append(comp.Rejected, c)
			continue
		}
		t.Prefixes = append(t.Prefixes, c...)
		t.Lengths = append(t.Lengths, len(c))
		comp.Accepted = append(comp.Accepted, c)
	}
	t.Count = len(t.Lengths)
	t.Suffix = []byte(suffix)

	return comp, nil
}
