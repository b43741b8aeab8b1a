package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_CaseSensitive(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: "abc"}}, "")
	require.NoError(t, err)

	assert.Equal(t, []byte("abc"), comp.Table.Prefixes)
	assert.Equal(t, []int{3}, comp.Table.Lengths)
	assert.Equal(t, 1, comp.Table.Count)
	assert.Empty(t, comp.Table.Suffix)
	assert.Equal(t, []string{"abc"}, comp.Accepted)
	assert.Zero(t, comp.Skipped())
}

func TestCompile_IgnoreCaseSoL(t *testing.T) {
	assert.Len(t, CaseVariants("SoL"), 8)

	comp, err := Compile([]Prefix{{Text: "SoL", IgnoreCase: true}}, "")
	require.NoError(t, err)

	assert.Equal(t, 8, comp.Candidates)
	assert.Equal(t, 6, comp.Skipped())
	assert.Equal(t, []string{"SoL", "soL"}, comp.Accepted)
	assert.Equal(t, []byte("SoLsoL"), comp.Table.Prefixes)
	assert.Equal(t, []int{3, 3}, comp.Table.Lengths)
	assert.Equal(t, 2, comp.Table.Count)
	require.NoError(t, comp.Table.Validate())

	for _, r := range comp.Rejected {
		assert.Regexp(t, "[Ol]", r)
	}
}

func TestCompile_InvalidSuffix(t *testing.T) {
	for _, suffix := range []string{"0", "pump0", "Il", "xyzO"} {
		comp, err := Compile([]Prefix{{Text: "abc"}}, suffix)
		require.Error(t, err, suffix)
		assert.Nil(t, comp)
		assert.ErrorIs(t, err, ErrInvalidSuffix)

		var se *SuffixError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, suffix, se.Suffix)
	}
}

func TestCompile_Suffix(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: "ab"}}, "pump")
	require.NoError(t, err)
	assert.Equal(t, []byte("pump"), comp.Table.Suffix)
}

func TestCompile_Deterministic(t *testing.T) {
	prefixes := []Prefix{
		{Text: "moon", IgnoreCase: true},
		{Text: "Sun"},
		{Text: "ab1", IgnoreCase: true},
		{Text: "Sun"},
	}
	reordered := []Prefix{prefixes[2], prefixes[1], prefixes[0]}

	first, err := Compile(prefixes, "x")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Compile(reordered, "x")
		require.NoError(t, err)
		assert.Equal(t, first.Table, again.Table)
		assert.Equal(t, first.Accepted, again.Accepted)
	}
}

func TestCompile_OverlappingPatternsDeduplicated(t *testing.T) {
	comp, err := Compile([]Prefix{
		{Text: "ab", IgnoreCase: true},
		{Text: "AB"},
		{Text: "aB"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 4, comp.Candidates)
	assert.Equal(t, []string{"AB", "Ab", "aB", "ab"}, comp.Accepted)
}

func TestCompile_InvalidPrefixesSkipped(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: ""}, {Text: "0x"}, {Text: "ok"}}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ok"}, comp.Accepted)
	assert.Equal(t, []string{"0x"}, comp.Rejected)
	assert.Equal(t, []int{0, 2}, comp.Table.Lengths)
}

func TestCompile_SuffixOnly(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: ""}}, "abc")
	require.NoError(t, err)

	assert.Equal(t, 1, comp.Table.Count)
	assert.Equal(t, []int{0}, comp.Table.Lengths)
	assert.Empty(t, comp.Table.Prefixes)
	assert.Zero(t, comp.Skipped())
	require.NoError(t, comp.Table.Validate())

	assert.True(t, comp.Table.Match("xyzabc"))
	assert.True(t, comp.Table.Match("abc"))
	assert.False(t, comp.Table.Match("xyzab"))
}

func TestCompile_NothingSurvives(t *testing.T) {
	comp, err := Compile([]Prefix{{Text: "OIl0"}}, "")
	require.NoError(t, err)
	assert.Zero(t, comp.Table.Count)
	assert.Empty(t, comp.Table.Prefixes)
	assert.Empty(t, comp.Table.Lengths)
	require.NoError(t, comp.Table.Validate())
}

func TestCaseVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"1", []string{"1"}},
		{"a1", []string{"A1", "a1"}},
		{"ab", []string{"AB", "Ab", "aB", "ab"}},
		{"9z9", []string{"9Z9", "9z9"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CaseVariants(tt.in))
			assert.Equal(t, len(tt.want), VariantCount(tt.in))
		})
	}
}

func TestPrefix_Candidates(t *testing.T) {
	assert.Equal(t, []string{"SoL"}, Prefix{Text: "SoL"}.Candidates())
	assert.Len(t, Prefix{Text: "SoL", IgnoreCase: true}.Candidates(), 8)
}
