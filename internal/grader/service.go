package grader

import (
	"fmt"
	"math"

	"github.com/Vovarama1992/lingua_voice/internal/similarity"
)

// Grader scores transcriptions against reference sentences. It holds no
// mutable state and is safe for concurrent use.
type Grader struct {
	threshold float64
}

func New(threshold float64) (*Grader, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("grader: threshold %v out of range [0,1]", threshold)
	}
	return &Grader{threshold: threshold}, nil
}

// Default returns a Grader using DefaultThreshold.
func Default() *Grader {
	return &Grader{threshold: DefaultThreshold}
}

func (g *Grader) Threshold() float64 { return g.threshold }

// Grade compares candidate to reference after trimming and lower-casing
// both. The verdict is Correct only when the raw score is strictly above
// the threshold.
func (g *Grader) Grade(reference, candidate string) Result {
	score := similarity.Ratio(similarity.Normalize(candidate), similarity.Normalize(reference))

	verdict := Incorrect
	if score > g.threshold {
		verdict = Correct
	}
	return Result{Score: score, Verdict: verdict}
}

func (g *Grader) GradeRequest(req Request) Result {
	return g.Grade(req.Reference, req.Candidate)
}

// Grade grades with DefaultThreshold.
func Grade(reference, candidate string) Result {
	return Default().Grade(reference, candidate)
}
