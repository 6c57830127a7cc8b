package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

	// Rachel
	DefaultElevenLabsVoice = "EXAVITQu4vr4xnSDxMaL"
	elevenLabsModel        = "eleven_flash_v2_5"
)

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
	httpCli *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string) *ElevenLabsClient {
	if voiceID == "" {
		voiceID = DefaultElevenLabsVoice
	}
	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: elevenLabsBaseURL,
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL points the client at another host (tests, proxies).
func (c *ElevenLabsClient) WithBaseURL(url string) *ElevenLabsClient {
	c.baseURL = url
	return c
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Text         string `json:"text"`
		ModelID      string `json:"model_id"`
		LanguageCode string `json:"language_code,omitempty"`
	}{text, elevenLabsModel, language})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, transportError("elevenlabs", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, statusError("elevenlabs", resp.StatusCode, string(b), nil)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("elevenlabs", err)
	}
	return audio, nil
}
