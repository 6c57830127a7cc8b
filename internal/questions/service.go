package questions

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Vovarama1992/lingua_voice/internal/speech"
)

const (
	setSize = 10

	// DefaultConcurrency bounds parallel synthesis for one question set.
	DefaultConcurrency = 4
)

type Service struct {
	llm      LLM
	tts      Synthesizer
	notifier Notifier
	log      *logger.ZapLogger

	concurrency int
}

// NewService wires the generator. llm and notifier may be nil.
func NewService(llm LLM, tts Synthesizer, notifier Notifier, log *logger.ZapLogger) *Service {
	return &Service{
		llm:         llm,
		tts:         tts,
		notifier:    notifier,
		log:         log,
		concurrency: DefaultConcurrency,
	}
}

func (s *Service) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// Texts returns up to ten items for format and level, from the LLM when it
// answers with something usable and from the built-in bank otherwise.
func (s *Service) Texts(ctx context.Context, format Format, level Level) []string {
	if s.llm == nil {
		return Fallback(format, level)
	}

	out, err := s.llm.Complete(ctx, prompt(format, level))
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("question generation failed (%s/%s), using fallback", format, level),
			Service: "questions",
			Error:   err,
		})
		return Fallback(format, level)
	}

	items := splitItems(out)
	if len(items) == 0 {
		return Fallback(format, level)
	}
	return items
}

// Build generates a question set with inline audio. A failed synthesis leaves
// that question with an empty data URL rather than failing the set.
func (s *Service) Build(ctx context.Context, level, format string) ([]Question, error) {
	fmtt, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	texts := s.Texts(ctx, fmtt, lvl)
	qs := make([]Question, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, text := range texts {
		g.Go(func() error {
			qs[i] = Question{
				ID:         uuid.NewString(),
				Text:       text,
				AudioURL:   s.audioURL(gctx, text),
				Difficulty: lvl,
				Format:     fmtt,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *Service) audioURL(ctx context.Context, text string) string {
	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		if s.notifier != nil {
			_ = s.notifier.Notify(ctx, err, "questions: synthesize "+text)
		}
		return speech.DataURL(nil)
	}
	return speech.DataURL(audio)
}

func splitItems(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == setSize {
			break
		}
	}
	return items
}
