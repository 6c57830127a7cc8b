package questions

import (
	"context"
	"errors"
)

var (
	ErrInvalidLevel  = errors.New("questions: invalid level")
	ErrInvalidFormat = errors.New("questions: invalid format")
)

type Level string

const (
	Basic  Level = "BASIC"
	Medium Level = "MEDIUM"
	Hard   Level = "HARD"
)

type Format string

const (
	Letter   Format = "LETTER"
	Word     Format = "WORD"
	Sentence Format = "SENTENCE"
)

// ParseLevel accepts only the exact upper-case level names.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case Basic, Medium, Hard:
		return l, nil
	}
	return "", ErrInvalidLevel
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Letter, Word, Sentence:
		return f, nil
	}
	return "", ErrInvalidFormat
}

type Question struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AudioURL   string `json:"audioUrl"`
	Difficulty Level  `json:"difficulty"`
	Format     Format `json:"format"`
}

// LLM completes a single prompt.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns text into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, err error, details string) error
}
