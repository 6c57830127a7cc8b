package telegram

import (
	"context"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/lingua_voice/internal/grader"
	"github.com/Vovarama1992/lingua_voice/internal/speech"
)

// API is the part of *tgbotapi.BotAPI the bot needs.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Speech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	ListenReader(ctx context.Context, r io.Reader, ext string) speech.Recognition
}

type Grader interface {
	Grade(reference, candidate string) grader.Result
}

type SentencePicker interface {
	Pick() string
}

type Notifier interface {
	Notify(ctx context.Context, err error, details string) error
}
