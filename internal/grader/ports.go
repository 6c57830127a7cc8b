package grader

import "math"

// DefaultThreshold is the score a transcription must exceed to count as correct.
const DefaultThreshold = 0.9

type Verdict int

const (
	Incorrect Verdict = iota
	Correct
)

func (v Verdict) String() string {
	if v == Correct {
		return "Correct"
	}
	return "Incorrect"
}

// Request is a single transcription to grade against its target sentence.
type Request struct {
	Reference string
	Candidate string
}

// Result holds the raw similarity score in [0,1] and the verdict derived from it.
type Result struct {
	Score   float64
	Verdict Verdict
}

func (r Result) Correct() bool { return r.Verdict == Correct }

// DisplayScore is Score rounded to 2 decimal places.
func (r Result) DisplayScore() float64 { return round2(r.Score) }

// Percent is Score scaled to 0..100 and rounded to 2 decimal places.
func (r Result) Percent() float64 { return round2(r.Score * 100) }

// Label is the verdict as the HTTP API reports it.
func (r Result) Label() string {
	if r.Correct() {
		return "Right"
	}
	return "Wrong"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
