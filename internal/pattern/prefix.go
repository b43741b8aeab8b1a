package pattern

import (
	"unicode"

	"golang.org/x/exp/slices"
)

// Prefix is one requested address prefix.
type Prefix struct {
	Text       string
	IgnoreCase bool
}

// Candidates returns the spellings of p that are tried against the alphabet:
// the literal text, or every case variant when IgnoreCase is set.
func (p Prefix) Candidates() []string {
	if !p.IgnoreCase {
		return []string{p.Text}
	}
	return CaseVariants(p.Text)
}

// CaseVariants returns every spelling of s obtained by choosing upper or lower
// case independently at each position, sorted and without duplicates.
// Characters without case do not branch.
func CaseVariants(s string) []string {
	variants := []string{""}
	for _, r := range s {
		lower, upper := unicode.ToLower(r), unicode.ToUpper(r)
		if lower == upper {
			for i := range variants {
				variants[i] += string(r)
			}
			continue
		}

		next := make([]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, v+string(lower), v+string(upper))
		}
		variants = next
	}

	slices.Sort(variants)
	return slices.Compact(variants)
}

// VariantCount returns how many distinct case variants s has without
// materialising them.
func VariantCount(s string) int {
	n := 1
	for _, r := range s {
		if unicode.ToLower(r) != unicode.ToUpper(r) {
			n *= 2
		}
	}
	return n
}

func (p Prefix) String() string {
	if p.IgnoreCase {
		return p.Text + "/i"
	}
	return p.Text
}
