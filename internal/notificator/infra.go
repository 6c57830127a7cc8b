package notificator

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessage keeps reports under Telegram's 4096-character limit.
const maxMessage = 3500

type TelegramInfra struct {
	mu     sync.RWMutex
	bot    Sender
	chatID int64
}

func NewTelegramInfra(bot Sender, chatID int64) *TelegramInfra {
	return &TelegramInfra{bot: bot, chatID: chatID}
}

// SetBot: позволяет передать бота ПОСЛЕ того, как он инициализировался
func (i *TelegramInfra) SetBot(bot Sender) {
	i.mu.Lock()
	i.bot = bot
	i.mu.Unlock()
}

func (i *TelegramInfra) Notify(ctx context.Context, err error, details string) error {
	i.mu.RLock()
	bot := i.bot
	i.mu.RUnlock()

	if bot == nil || i.chatID == 0 {
		return nil
	}

	text := fmt.Sprintf("❗ lingua_voice error\n\nError: %v\n\nDetails: %s", err, details)
	if r := []rune(text); len(r) > maxMessage {
		text = string(r[:maxMessage]) + "…"
	}

	if _, sendErr := bot.Send(tgbotapi.NewMessage(i.chatID, text)); sendErr != nil {
		return fmt.Errorf("notify admin chat: %w", sendErr)
	}
	return nil
}
