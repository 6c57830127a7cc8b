package delivery

import (
	"context"

	"github.com/Vovarama1992/lingua_voice/internal/grader"
	"github.com/Vovarama1992/lingua_voice/internal/questions"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type SentencePicker interface {
	Pick() string
}

type Grader interface {
	Grade(reference, candidate string) grader.Result
}

type QuestionBuilder interface {
	Build(ctx context.Context, level, format string) ([]questions.Question, error)
}

type Notifier interface {
	Notify(ctx context.Context, err error, details string) error
}
