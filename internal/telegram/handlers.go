package telegram

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = "Send /sentence to get a new dictation. Reply to the voice message with what you heard, as text or as a voice message."

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(chatID, "👋 Welcome to the Language Learning App!\n\n"+helpText)
			b.sendDictation(ctx, chatID)
		case "sentence":
			b.sendDictation(ctx, chatID)
		default:
			b.reply(chatID, helpText)
		}
		return
	}

	sentence := ""
	if r := msg.ReplyToMessage; r != nil && r.From != nil && r.From.ID == b.selfID {
		sentence = sentenceFrom(r)
	}
	if sentence == "" {
		b.reply(chatID, helpText)
		return
	}

	switch {
	case msg.Voice != nil:
		b.handleVoiceAnswer(ctx, msg, sentence)
	case msg.Text != "":
		b.reply(chatID, b.verdict(sentence, msg.Text))
	default:
		b.reply(chatID, helpText)
	}
}

func (b *Bot) sendDictation(ctx context.Context, chatID int64) {
	sentence := b.sentences.Pick()

	audio, err := b.speech.Synthesize(ctx, sentence)
	if err != nil {
		b.report(ctx, err, fmt.Sprintf("telegram: synthesize for chat %d", chatID))
		b.reply(chatID, "⚠️ Could not synthesize a sentence. Try /sentence again.")
		return
	}

	voice := tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "sentence.mp3", Bytes: audio})
	voice.Caption = dictationCaption(sentence)
	voice.ParseMode = tgbotapi.ModeMarkdownV2
	b.send(voice)
}

// голос → текст → оценка
func (b *Bot) handleVoiceAnswer(ctx context.Context, msg *tgbotapi.Message, sentence string) {
	chatID := msg.Chat.ID

	url, err := b.api.GetFileDirectURL(msg.Voice.FileID)
	if err != nil {
		b.report(ctx, err, "telegram: get voice file "+msg.Voice.FileID)
		b.reply(chatID, "⚠️ Could not get the voice message.")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		b.reply(chatID, "⚠️ Could not get the voice message.")
		return
	}
	resp, err := b.httpCli.Do(req)
	if err != nil {
		b.report(ctx, err, "telegram: download voice")
		b.reply(chatID, "⚠️ Could not download the voice message.")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b.report(ctx, fmt.Errorf("status %d", resp.StatusCode), "telegram: download voice")
		b.reply(chatID, "⚠️ Could not download the voice message.")
		return
	}

	rec := b.speech.ListenReader(ctx, resp.Body, ".ogg")
	if !rec.OK() {
		b.log.Log(logger.LogEntry{
			Level:   "info",
			Message: "voice answer not recognized: " + rec.Outcome.String(),
			Service: "telegram",
			Error:   rec.Err,
		})
		b.reply(chatID, rec.Message())
		return
	}

	b.reply(chatID, rec.Message()+"\n\n"+b.verdict(sentence, rec.Text))
}

func (b *Bot) verdict(sentence, answer string) string {
	res := b.grader.Grade(sentence, answer)
	if res.Correct() {
		return fmt.Sprintf("✅ Right! Similarity %.2f%%\nSentence: %s", res.Percent(), sentence)
	}
	return fmt.Sprintf("❌ Wrong. Similarity %.2f%%\nSentence: %s", res.Percent(), sentence)
}
