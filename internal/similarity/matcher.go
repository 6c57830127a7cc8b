package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ratio returns the sequence-matcher ratio 2*M/T of a and b compared rune by
// rune. M is the number of runes in the matching blocks found by recursive
// longest-block alignment, T is the combined length. Two empty strings give 1.
//
// The ratio is not symmetric: ties in the longest-block search resolve toward
// the start of a, so Ratio("tide", "diet") is 0.25 while Ratio("diet", "tide")
// is 0.5. The popularity heuristic ("autojunk") is off, so identical inputs
// always score 1 regardless of length.
func Ratio(a, b string) float64 {
	return matcher(split(a), split(b)).Ratio()
}

// Op is a single edit step: A in the first string becomes B in the second.
type Op struct {
	Tag string // equal, replace, delete, insert
	A   string
	B   string
}

// Opcodes lists the edit steps between a and b in order.
func Opcodes(a, b string) []Op {
	as, bs := split(a), split(b)
	codes := matcher(as, bs).GetOpCodes()

	ops := make([]Op, 0, len(codes))
	for _, c := range codes {
		ops = append(ops, Op{
			Tag: tagName(c.Tag),
			A:   strings.Join(as[c.I1:c.I2], ""),
			B:   strings.Join(bs[c.J1:c.J2], ""),
		})
	}
	return ops
}

func tagName(tag byte) string {
	switch tag {
	case 'e':
		return "equal"
	case 'r':
		return "replace"
	case 'd':
		return "delete"
	case 'i':
		return "insert"
	}
	return string(tag)
}

func matcher(a, b []string) *difflib.SequenceMatcher {
	return difflib.NewMatcherWithJunk(a, b, false, nil)
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
