package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/lingua_voice/internal/config"
)

func loader(env map[string]string) config.Loader {
	return config.Loader{
		Lookup: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
}

func TestLoaderDefaults(t *testing.T) {
	cfg, err := loader(nil).Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, 0.9, cfg.Threshold)
	assert.Equal(t, time.Hour, cfg.AudioTTL)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, config.TTSGoogle, cfg.Speech.TTSProvider)
	assert.Equal(t, config.STTOpenAI, cfg.Speech.STTProvider)
	assert.Equal(t, "en", cfg.Speech.TTSLanguage)
	assert.Equal(t, config.StorageLocal, cfg.Storage.Kind)
	assert.True(t, cfg.Storage.S3.Secure)
	assert.Empty(t, cfg.STTKey())
	assert.Empty(t, cfg.Telegram.Token)
}

func TestLoaderOverrides(t *testing.T) {
	cfg, err := loader(map[string]string{
		"PORT":                   "9000",
		"STATIC_DIR":             "/srv/audio",
		"VALIDATE_THRESHOLD":     "0.85",
		"AUDIO_TTL":              "15m",
		"RATE_LIMIT_PER_MINUTE":  "5",
		"TTS_PROVIDER":           "ElevenLabs",
		"ELEVENLABS_API_KEY":     "xi-key",
		"STT_PROVIDER":           "deepgram",
		"DEEPGRAM_API_KEY":       "dg-key",
		"STORAGE":                "s3",
		"S3_ENDPOINT":            "s3.example.com",
		"S3_BUCKET":              "audio",
		"S3_SECURE":              "false",
		"TELEGRAM_BOT_TOKEN":     "123:abc",
		"TELEGRAM_ADMIN_CHAT_ID": "-100123",
	}).Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/audio", cfg.StaticDir)
	assert.Equal(t, 0.85, cfg.Threshold)
	assert.Equal(t, 15*time.Minute, cfg.AudioTTL)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.Equal(t, config.TTSElevenLabs, cfg.Speech.TTSProvider)
	assert.Equal(t, "dg-key", cfg.STTKey())
	assert.Equal(t, config.StorageS3, cfg.Storage.Kind)
	assert.False(t, cfg.Storage.S3.Secure)
	assert.Equal(t, int64(-100123), cfg.Telegram.AdminChatID)
}

func TestLoaderBlankValuesKeepDefaults(t *testing.T) {
	cfg, err := loader(map[string]string{"PORT": "  ", "AUDIO_TTL": ""}).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultAudioTTL, cfg.AudioTTL)
}

func TestLoaderRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"threshold not a number": {"VALIDATE_THRESHOLD": "high"},
		"threshold above one":    {"VALIDATE_THRESHOLD": "1.2"},
		"bad duration":           {"AUDIO_TTL": "forever"},
		"zero rate limit":        {"RATE_LIMIT_PER_MINUTE": "0"},
		"unknown tts":            {"TTS_PROVIDER": "espeak"},
		"unknown stt":            {"STT_PROVIDER": "vosk"},
		"elevenlabs without key": {"TTS_PROVIDER": "elevenlabs"},
		"openai tts without key": {"TTS_PROVIDER": "openai"},
		"s3 without bucket":      {"STORAGE": "s3", "S3_ENDPOINT": "s3.example.com"},
		"unknown storage":        {"STORAGE": "ftp"},
		"bad admin chat id":      {"TELEGRAM_ADMIN_CHAT_ID": "admin"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader(env).Load()
			assert.Error(t, err)
		})
	}
}
