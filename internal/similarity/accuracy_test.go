package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, levenshtein([]rune(tc.a), []rune(tc.b)), "%q vs %q", tc.a, tc.b)
		assert.Equal(t, tc.want, levenshtein([]rune(tc.b), []rune(tc.a)), "%q vs %q", tc.b, tc.a)
	}
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, Accuracy("  The cat sits on the mat. ", "the cat sits on the mat"))
	assert.Equal(t, 1.0, Accuracy("", ""))
	assert.Equal(t, 0.0, Accuracy("...", "cat"))
	assert.Equal(t, 0.0, Accuracy("cat", ""))

	// "sitting" is the longer: (7 - 3) / 7
	assert.InDelta(t, 4.0/7.0, Accuracy("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 4.0/7.0, Accuracy("sitting", "kitten"), 1e-9)

	// apostrophes and question marks are not stripped
	assert.InDelta(t, 15.0/16.0, Accuracy("whats the time?", "what's the time?"), 1e-9)
}
