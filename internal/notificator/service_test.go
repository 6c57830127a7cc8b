package notificator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func nopLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

func TestTelegramInfraSendsToAdmin(t *testing.T) {
	bot := &fakeSender{}
	svc := NewService(NewTelegramInfra(bot, 42), nopLogger())

	require.NoError(t, svc.Notify(context.Background(), errors.New("tts down"), "generate-voice"))
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "tts down")
	assert.Contains(t, bot.sent[0].Text, "generate-voice")
}

func TestTelegramInfraTruncates(t *testing.T) {
	bot := &fakeSender{}
	infra := NewTelegramInfra(bot, 1)

	require.NoError(t, infra.Notify(context.Background(), errors.New("x"), strings.Repeat("д", 5000)))
	require.Len(t, bot.sent, 1)
	assert.LessOrEqual(t, utf8.RuneCountInString(bot.sent[0].Text), maxMessage+1)
}

func TestTelegramInfraWithoutBot(t *testing.T) {
	infra := NewTelegramInfra(nil, 42)
	assert.NoError(t, infra.Notify(context.Background(), errors.New("x"), ""))

	bot := &fakeSender{}
	infra.SetBot(bot)
	assert.NoError(t, infra.Notify(context.Background(), errors.New("x"), ""))
	assert.Len(t, bot.sent, 1)

	none := &fakeSender{}
	assert.NoError(t, NewTelegramInfra(none, 0).Notify(context.Background(), errors.New("x"), ""))
	assert.Empty(t, none.sent)
}

func TestServiceReturnsForwardError(t *testing.T) {
	bot := &fakeSender{err: errors.New("chat not found")}
	svc := NewService(NewTelegramInfra(bot, 7), nopLogger())

	err := svc.Notify(context.Background(), errors.New("boom"), "details")
	assert.ErrorContains(t, err, "chat not found")
}

func TestServiceIgnoresNil(t *testing.T) {
	bot := &fakeSender{}
	svc := NewService(NewTelegramInfra(bot, 7), nopLogger())

	assert.NoError(t, svc.Notify(context.Background(), nil, "nothing"))
	assert.Empty(t, bot.sent)
	assert.NoError(t, NewService(nil, nopLogger()).Notify(context.Background(), errors.New("x"), ""))
}
