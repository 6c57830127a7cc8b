package telegram

import (
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const captionIntro = "🎧 Write down what you hear and send it as a reply to this message. You can also answer with a voice reply."

// dictationCaption hides sentence behind a spoiler under the instructions.
func dictationCaption(sentence string) string {
	return escapeMarkdown(captionIntro) + "\n\n||" + escapeMarkdown(sentence) + "||"
}

// escapeMarkdown prepares s for MarkdownV2. EscapeText leaves the backslash
// itself alone, so it is doubled first.
func escapeMarkdown(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, strings.ReplaceAll(s, `\`, `\\`))
}

// sentenceFrom recovers the hidden sentence from a dictation message.
// Telegram delivers the caption as plain text with entity offsets counted in
// UTF-16 code units.
func sentenceFrom(msg *tgbotapi.Message) string {
	if msg == nil || msg.Caption == "" {
		return ""
	}
	units := utf16.Encode([]rune(msg.Caption))
	for _, e := range msg.CaptionEntities {
		if e.Type != "spoiler" || e.Offset < 0 || e.Offset+e.Length > len(units) {
			continue
		}
		return strings.TrimSpace(string(utf16.Decode(units[e.Offset : e.Offset+e.Length])))
	}
	return ""
}
