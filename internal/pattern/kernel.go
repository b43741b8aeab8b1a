package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Declaration markers of an OpenCL kernel that embeds the compiled table.
// A source line starting with a marker is replaced as a whole.
const (
	MarkerPrefixes    = "constant uchar PREFIXES[]"
	MarkerLengths     = "constant size_t PREFIX_LENGTHS[]"
	MarkerNumPrefixes = "constant size_t NUM_PREFIXES"
	MarkerSuffix      = "constant uchar SUFFIX[]"
)

// Markers returns the declaration markers in the order they are reported.
func Markers() []string {
	return []string{MarkerPrefixes, MarkerLengths, MarkerNumPrefixes, MarkerSuffix}
}

// Declarations renders the four declaration lines for t, keyed by marker.
func Declarations(t *Table) map[string]string {
	return map[string]string{
		MarkerPrefixes:    fmt.Sprintf("%s = {%s};", MarkerPrefixes, joinBytes(t.Prefixes)),
		MarkerLengths:     fmt.Sprintf("%s = {%s};", MarkerLengths, joinInts(t.Lengths)),
		MarkerNumPrefixes: fmt.Sprintf("%s = %d;", MarkerNumPrefixes, t.Count),
		MarkerSuffix:      fmt.Sprintf("%s = {%s};", MarkerSuffix, joinBytes(t.Suffix)),
	}
}

// InjectSource rewrites every line of src that starts with one of the four
// markers with the literal values of t, leaving all other lines byte for byte
// untouched. It returns the rewritten source and the markers that were found.
func InjectSource(src []byte, t *Table) ([]byte, []string) {
	decls := Declarations(t)
	found := make(map[string]bool)

	lines := strings.SplitAfter(string(src), "\n")
	for i, line := range lines {
		for _, marker := range Markers() {
			if strings.HasPrefix(line, marker) {
				lines[i] = decls[marker] + "\n"
				found[marker] = true
				break
			}
		}
	}

	var replaced []string
	for _, marker := range Markers() {
		if found[marker] {
			replaced = append(replaced, marker)
		}
	}
	return []byte(strings.Join(lines, "")), replaced
}

func joinBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ", ")
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
