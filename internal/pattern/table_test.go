package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Match(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: "SoL", IgnoreCase: true}, {Text: "abc"}}, "")
	require.NoError(t, err)
	table := &comp.Table

	tests := []struct {
		addr string
		want bool
	}{
		{"SoLxyz", true},
		{"soLxyz", true},
		{"abcdef", true},
		{"solxyz", false},
		{"xSoL", false},
		{"So", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Match(tt.addr), tt.addr)
	}
}

func TestTable_MatchSuffix(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: "ab"}}, "yz")
	require.NoError(t, err)
	table := &comp.Table

	assert.True(t, table.Match("ab123yz"))
	assert.False(t, table.Match("ab123y"))
	assert.False(t, table.Match("xb123yz"))
	assert.False(t, table.Match("z"))
}

func TestTable_EmptyMatchesNothing(t *testing.T) {
	table := &Table{}
	assert.False(t, table.Match("anything"))
}

func TestTable_Validate(t *testing.T) {
	good := &Table{Prefixes: []byte("abcd"), Lengths: []int{1, 3}, Count: 2}
	require.NoError(t, good.Validate())

	zero := &Table{Prefixes: []byte("abcd"), Lengths: []int{0, 4}, Count: 2}
	require.NoError(t, zero.Validate())

	bad := []*Table{
		{Prefixes: []byte("abcd"), Lengths: []int{1, 3}, Count: 3},
		{Prefixes: []byte("abcd"), Lengths: []int{1, 2}, Count: 2},
		{Prefixes: []byte("abcd"), Lengths: []int{-1, 5}, Count: 2},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(), ErrInconsistentTable)
	}
}

func TestTable_Strings(t *testing.T) {
	table := &Table{Prefixes: []byte("abXYZq"), Lengths: []int{2, 3, 1}, Count: 3}
	assert.Equal(t, []string{"ab", "XYZ", "q"}, table.Strings())

	suffixOnly := &Table{Lengths: []int{0}, Count: 1, Suffix: []byte("zz")}
	assert.Equal(t, []string{""}, suffixOnly.Strings())
	assert.True(t, suffixOnly.Match("abczz"))
	assert.False(t, suffixOnly.Match("abcz"))
}
