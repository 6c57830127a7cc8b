package similarity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcd", "abcd", 1},
		{"both empty", "", "", 1},
		{"first empty", "", "abc", 0},
		{"second empty", "abc", "", 0},
		{"disjoint", "abc", "xyz", 0},
		{"shifted", "abcd", "bcde", 0.75},
		{"tide diet", "tide", "diet", 0.25},
		{"diet tide", "diet", "tide", 0.5},
		{"one char off", "abcdefghij", "abcdefghix", 0.9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Ratio(tc.a, tc.b), 1e-12)
		})
	}
}

func TestRatioCountsRunesNotBytes(t *testing.T) {
	// 2 matching runes out of 2+2; a byte-wise comparison would disagree.
	assert.Equal(t, 1.0, Ratio("éé", "éé"))
	assert.InDelta(t, 0.5, Ratio("éa", "éb"), 1e-12)
}

func TestRatioLongIdenticalStrings(t *testing.T) {
	s := strings.Repeat("the quick brown fox jumps over the lazy dog ", 10)
	require.Greater(t, len(s), 200)

	assert.Equal(t, 1.0, Ratio(s, s))
	assert.Equal(t, 1.0, Ratio(strings.Repeat("a", 500), strings.Repeat("a", 500)))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Hello World \n"))
	assert.Equal(t, "", Normalize(" \t "))
}

func TestOpcodes(t *testing.T) {
	ops := Opcodes("abcd", "abxd")

	assert.Equal(t, []Op{
		{Tag: "equal", A: "ab", B: "ab"},
		{Tag: "replace", A: "c", B: "x"},
		{Tag: "equal", A: "d", B: "d"},
	}, ops)
}

func TestOpcodesInsertAndDelete(t *testing.T) {
	ops := Opcodes("the cat", "the cats")
	require.Len(t, ops, 2)
	assert.Equal(t, Op{Tag: "insert", A: "", B: "s"}, ops[1])

	ops = Opcodes("the cats", "the cat")
	require.Len(t, ops, 2)
	assert.Equal(t, Op{Tag: "delete", A: "s", B: ""}, ops[1])
}
