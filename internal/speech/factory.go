package speech

import (
	"fmt"

	"github.com/Vovarama1992/lingua_voice/internal/config"
)

// NewTTSClient builds the synthesizer cfg asks for.
func NewTTSClient(cfg config.Config) (TTSClient, error) {
	switch cfg.Speech.TTSProvider {
	case config.TTSGoogle, "":
		return NewGoogleTTS(), nil
	case config.TTSElevenLabs:
		return NewElevenLabsClient(cfg.Speech.ElevenLabsKey, cfg.Speech.ElevenLabsVoice), nil
	case config.TTSOpenAI:
		return NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Speech.TTSLanguage), nil
	}
	return nil, fmt.Errorf("unknown tts provider %q", cfg.Speech.TTSProvider)
}

// NewSTTClient builds the recognizer cfg asks for. It returns nil, nil when
// the provider has no credentials, which leaves recognition disabled.
func NewSTTClient(cfg config.Config) (STTClient, error) {
	if cfg.STTKey() == "" {
		return nil, nil
	}
	switch cfg.Speech.STTProvider {
	case config.STTOpenAI, "":
		return NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Speech.STTLanguage), nil
	case config.STTDeepgram:
		return NewDeepgramClient(cfg.Speech.DeepgramKey, cfg.Speech.STTLanguage), nil
	}
	return nil, fmt.Errorf("unknown stt provider %q", cfg.Speech.STTProvider)
}
