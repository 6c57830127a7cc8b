package similarity

import "strings"

const answerPunct = ".,/#!$%^&*;:{}=-_`~()"

// Accuracy scores a typed answer against the expected one as
// (len(longer) - editDistance) / len(longer), after trimming, lower-casing
// and dropping punctuation. Lengths are in runes.
func Accuracy(answer, expected string) float64 {
	a, b := []rune(stripAnswer(answer)), []rune(stripAnswer(expected))

	if string(a) == string(b) {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	return float64(len(longer)-levenshtein(longer, shorter)) / float64(len(longer))
}

func stripAnswer(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(answerPunct, r) {
			return -1
		}
		return r
	}, Normalize(s))
}

// levenshtein keeps a single row of the distance table.
func levenshtein(a, b []rune) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev
			} else {
				row[j] = 1 + min(prev, row[j-1], row[j])
			}
			prev = cur
		}
	}
	return row[len(b)]
}
