package notificator

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notificator interface {
	// Notify сообщает об операционной ошибке
	Notify(ctx context.Context, err error, details string) error
}

// Sender is the part of *tgbotapi.BotAPI used to reach the admin chat.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
