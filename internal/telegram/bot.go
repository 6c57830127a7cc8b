package telegram

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot runs dictation drills. It keeps no per-user state: the sentence being
// practiced travels in the spoiler of the voice message caption, and every
// answer is a reply to that message.
type Bot struct {
	api       API
	selfID    int64
	speech    Speech
	grader    Grader
	sentences SentencePicker
	notifier  Notifier
	log       *logger.ZapLogger
	httpCli   *http.Client
}

func NewBot(
	api API,
	selfID int64,
	sp Speech,
	g Grader,
	sentences SentencePicker,
	notifier Notifier,
	log *logger.ZapLogger,
) *Bot {
	return &Bot{
		api:       api,
		selfID:    selfID,
		speech:    sp,
		grader:    g,
		sentences: sentences,
		notifier:  notifier,
		log:       log,
		httpCli:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Run handles updates until ctx is done or the channel closes, then waits for
// in-flight handlers.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.HandleUpdate(ctx, upd)
			}()
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	b.handleMessage(ctx, upd.Message)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Log(logger.LogEntry{Level: "warn", Message: "send failed", Service: "telegram", Error: err})
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) report(ctx context.Context, err error, details string) {
	if b.notifier != nil {
		_ = b.notifier.Notify(ctx, err, details)
		return
	}
	b.log.Log(logger.LogEntry{Level: "error", Message: details, Service: "telegram", Error: err})
}
