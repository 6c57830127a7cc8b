package speech

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const deepgramBaseURL = "https://api.deepgram.com/v1"

type DeepgramClient struct {
	apiKey   string
	language string
	baseURL  string
	client   *http.Client
}

func NewDeepgramClient(apiKey, language string) *DeepgramClient {
	if language == "" {
		language = "en"
	}
	return &DeepgramClient{
		apiKey:   apiKey,
		language: language,
		baseURL:  deepgramBaseURL,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *DeepgramClient) WithBaseURL(u string) *DeepgramClient {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	q := url.Values{}
	q.Set("model", "nova-2")
	q.Set("smart_format", "true")
	q.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/listen?"+q.Encode(), f)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", audioContentType(filePath))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", transportError("deepgram", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError("deepgram", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError("deepgram", resp.StatusCode, string(body), nil)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ProviderError{Provider: "deepgram", Message: "decode response", Cause: err}
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 ||
		strings.TrimSpace(parsed.Results.Channels[0].Alternatives[0].Transcript) == "" {
		return "", ErrUnintelligibleAudio
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}

func audioContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".oga":
		return "audio/ogg"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	}
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
