package speech

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	googleTTSBaseURL = "https://translate.google.com"

	// The translate_tts endpoint rejects longer q values.
	googleMaxChars = 100
)

// GoogleTTS speaks through the keyless Google Translate endpoint, the same
// one gTTS uses. Long text is split on word boundaries and the MP3 parts are
// concatenated.
type GoogleTTS struct {
	baseURL string
	httpCli *http.Client
}

func NewGoogleTTS() *GoogleTTS {
	return &GoogleTTS{
		baseURL: googleTTSBaseURL,
		httpCli: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GoogleTTS) WithBaseURL(u string) *GoogleTTS {
	g.baseURL = strings.TrimRight(u, "/")
	return g
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if language == "" {
		language = "en"
	}

	parts := chunkText(text, googleMaxChars)
	var audio []byte
	for i, part := range parts {
		b, err := g.fetch(ctx, part, language, i, len(parts))
		if err != nil {
			return nil, err
		}
		audio = append(audio, b...)
	}
	return audio, nil
}

func (g *GoogleTTS) fetch(ctx context.Context, part, language string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", part)
	q.Set("tl", language)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(part)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "http://translate.google.com/")

	resp, err := g.httpCli.Do(req)
	if err != nil {
		return nil, transportError("google", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, statusError("google", resp.StatusCode, string(b), nil)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("google", err)
	}
	return b, nil
}

// chunkText splits text into pieces of at most max runes, breaking between
// words. Words longer than max are cut.
func chunkText(text string, max int) []string {
	var (
		chunks []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, w := range strings.Fields(text) {
		for utf8.RuneCountInString(w) > max {
			flush()
			r := []rune(w)
			chunks = append(chunks, string(r[:max]))
			w = string(r[max:])
		}

		wl := utf8.RuneCountInString(w)
		if curLen > 0 && curLen+1+wl > max {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += wl
	}
	flush()
	return chunks
}
