package speech

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient does Whisper transcription and tts-1 synthesis.
type OpenAIClient struct {
	client   *openai.Client
	language string
	voice    openai.SpeechVoice
}

// NewOpenAIClient builds a client for apiKey. baseURL may be empty.
func NewOpenAIClient(apiKey, baseURL, language string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		language: language,
		voice:    openai.VoiceAlloy,
	}
}

// голос → текст
func (c *OpenAIClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", err
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: c.language,
	})
	if err != nil {
		return "", classifyOpenAI(err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrUnintelligibleAudio
	}
	return resp.Text, nil
}

// Synthesize ignores language: tts-1 picks it up from the text.
func (c *OpenAIClient) Synthesize(ctx context.Context, text, _ string) ([]byte, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, classifyOpenAI(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, transportError("openai", err)
	}
	return audio, nil
}

func classifyOpenAI(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError("openai", apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError("openai", reqErr.HTTPStatusCode, string(reqErr.Body), err)
	}
	return transportError("openai", err)
}
