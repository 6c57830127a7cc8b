package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultStaticDir       = "static"
	DefaultThreshold       = 0.9
	DefaultLanguage        = "en"
	DefaultQuestionsModel  = "gpt-4o-mini"
	DefaultAudioTTL        = time.Hour
	DefaultRateLimit       = 30
	DefaultShutdownTimeout = 10 * time.Second

	TTSGoogle     = "google"
	TTSElevenLabs = "elevenlabs"
	TTSOpenAI     = "openai"

	STTOpenAI   = "openai"
	STTDeepgram = "deepgram"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Port               string
	StaticDir          string
	SentencesFile      string
	Threshold          float64
	AudioTTL           time.Duration
	RateLimitPerMinute int
	ShutdownTimeout    time.Duration
	QuestionsModel     string

	OpenAI   OpenAI
	Speech   Speech
	Storage  Storage
	Telegram Telegram
}

type OpenAI struct {
	APIKey  string
	BaseURL string
}

type Speech struct {
	TTSProvider     string
	TTSLanguage     string
	STTProvider     string
	STTLanguage     string
	ElevenLabsKey   string
	ElevenLabsVoice string
	DeepgramKey     string
	TempDir         string
}

type Storage struct {
	Kind string
	S3   S3
}

type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Secure    bool
}

type Telegram struct {
	Token       string
	AdminChatID int64
}

// Load reads .env (when present) into the environment and then loads Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Loader{}.Load()
}

// Loader reads configuration through Lookup, os.LookupEnv by default.
type Loader struct {
	Lookup func(string) (string, bool)
}

func (l Loader) Load() (Config, error) {
	if l.Lookup == nil {
		l.Lookup = os.LookupEnv
	}

	cfg := Config{
		Port:               DefaultPort,
		StaticDir:          DefaultStaticDir,
		Threshold:          DefaultThreshold,
		AudioTTL:           DefaultAudioTTL,
		RateLimitPerMinute: DefaultRateLimit,
		ShutdownTimeout:    DefaultShutdownTimeout,
		QuestionsModel:     DefaultQuestionsModel,
		Speech: Speech{
			TTSProvider: TTSGoogle,
			TTSLanguage: DefaultLanguage,
			STTProvider: STTOpenAI,
			STTLanguage: DefaultLanguage,
		},
		Storage: Storage{
			Kind: StorageLocal,
			S3:   S3{Secure: true},
		},
	}

	l.str("PORT", &cfg.Port)
	l.str("STATIC_DIR", &cfg.StaticDir)
	l.str("SENTENCES_FILE", &cfg.SentencesFile)
	l.str("QUESTIONS_MODEL", &cfg.QuestionsModel)

	l.str("OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	l.str("OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)

	l.str("TTS_PROVIDER", &cfg.Speech.TTSProvider)
	l.str("TTS_LANGUAGE", &cfg.Speech.TTSLanguage)
	l.str("STT_PROVIDER", &cfg.Speech.STTProvider)
	l.str("STT_LANGUAGE", &cfg.Speech.STTLanguage)
	l.str("ELEVENLABS_API_KEY", &cfg.Speech.ElevenLabsKey)
	l.str("ELEVENLABS_VOICE_ID", &cfg.Speech.ElevenLabsVoice)
	l.str("DEEPGRAM_API_KEY", &cfg.Speech.DeepgramKey)
	l.str("SPEECH_TEMP_DIR", &cfg.Speech.TempDir)

	l.str("STORAGE", &cfg.Storage.Kind)
	l.str("S3_ENDPOINT", &cfg.Storage.S3.Endpoint)
	l.str("S3_ACCESS_KEY", &cfg.Storage.S3.AccessKey)
	l.str("S3_SECRET_KEY", &cfg.Storage.S3.SecretKey)
	l.str("S3_BUCKET", &cfg.Storage.S3.Bucket)
	l.str("S3_REGION", &cfg.Storage.S3.Region)

	l.str("TELEGRAM_BOT_TOKEN", &cfg.Telegram.Token)

	var errs []error
	errs = append(errs,
		l.float("VALIDATE_THRESHOLD", &cfg.Threshold),
		l.duration("AUDIO_TTL", &cfg.AudioTTL),
		l.duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout),
		l.integer("RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute),
		l.boolean("S3_SECURE", &cfg.Storage.S3.Secure),
		l.integer64("TELEGRAM_ADMIN_CHAT_ID", &cfg.Telegram.AdminChatID),
	)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	cfg.Speech.TTSProvider = strings.ToLower(cfg.Speech.TTSProvider)
	cfg.Speech.STTProvider = strings.ToLower(cfg.Speech.STTProvider)
	cfg.Storage.Kind = strings.ToLower(cfg.Storage.Kind)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Threshold < 0 || c.Threshold > 1 {
		errs = append(errs, fmt.Errorf("config: VALIDATE_THRESHOLD %v out of range [0,1]", c.Threshold))
	}
	if c.RateLimitPerMinute <= 0 {
		errs = append(errs, errors.New("config: RATE_LIMIT_PER_MINUTE must be positive"))
	}
	if c.AudioTTL <= 0 {
		errs = append(errs, errors.New("config: AUDIO_TTL must be positive"))
	}

	switch c.Speech.TTSProvider {
	case TTSGoogle:
	case TTSElevenLabs:
		if c.Speech.ElevenLabsKey == "" {
			errs = append(errs, errors.New("config: ELEVENLABS_API_KEY not set"))
		}
	case TTSOpenAI:
		if c.OpenAI.APIKey == "" {
			errs = append(errs, errors.New("config: OPENAI_API_KEY not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown TTS_PROVIDER %q", c.Speech.TTSProvider))
	}

	switch c.Speech.STTProvider {
	case STTOpenAI, STTDeepgram:
	default:
		errs = append(errs, fmt.Errorf("config: unknown STT_PROVIDER %q", c.Speech.STTProvider))
	}

	switch c.Storage.Kind {
	case StorageLocal:
	case StorageS3:
		if c.Storage.S3.Endpoint == "" || c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("config: S3_ENDPOINT and S3_BUCKET are required for STORAGE=s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown STORAGE %q", c.Storage.Kind))
	}

	return errors.Join(errs...)
}

// STTKey returns the credential of the configured recognizer; empty means
// recognition is disabled.
func (c Config) STTKey() string {
	if c.Speech.STTProvider == STTDeepgram {
		return c.Speech.DeepgramKey
	}
	return c.OpenAI.APIKey
}

func (l Loader) get(key string) (string, bool) {
	v, ok := l.Lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (l Loader) str(key string, target *string) {
	if v, ok := l.get(key); ok {
		*target = v
	}
}

func (l Loader) float(key string, target *float64) error {
	v, ok := l.get(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = f
	return nil
}

func (l Loader) integer(key string, target *int) error {
	v, ok := l.get(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = n
	return nil
}

func (l Loader) integer64(key string, target *int64) error {
	v, ok := l.get(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = n
	return nil
}

func (l Loader) boolean(key string, target *bool) error {
	v, ok := l.get(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = b
	return nil
}

func (l Loader) duration(key string, target *time.Duration) error {
	v, ok := l.get(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = d
	return nil
}
