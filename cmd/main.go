package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Vovarama1992/lingua_voice/internal/config"
	"github.com/Vovarama1992/lingua_voice/internal/delivery"
	"github.com/Vovarama1992/lingua_voice/internal/grader"
	"github.com/Vovarama1992/lingua_voice/internal/notificator"
	"github.com/Vovarama1992/lingua_voice/internal/questions"
	"github.com/Vovarama1992/lingua_voice/internal/sentences"
	"github.com/Vovarama1992/lingua_voice/internal/speech"
	"github.com/Vovarama1992/lingua_voice/internal/storage"
	"github.com/Vovarama1992/lingua_voice/internal/telegram"
)

const (
	serviceName = "lingua_voice"
	audioPrefix = "voice"
)

func main() {

	// =========================================================================
	// LOGGER / ENV
	// =========================================================================

	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap init: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	zl := logger.NewZapLogger(zapLogger.Sugar())

	fatal := func(msg string, err error) {
		zl.Log(logger.LogEntry{Level: "error", Message: msg, Service: serviceName, Error: err})
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// SPEECH / GRADING
	// =========================================================================

	ttsClient, err := speech.NewTTSClient(cfg)
	if err != nil {
		fatal("tts", err)
	}
	sttClient, err := speech.NewSTTClient(cfg)
	if err != nil {
		fatal("stt", err)
	}
	if sttClient == nil {
		zl.Log(logger.LogEntry{Level: "warn", Message: "speech recognition disabled: no STT credentials", Service: serviceName})
	}

	speechService := speech.NewService(sttClient, ttsClient, cfg.Speech.TTSLanguage, zl)
	speechService.SetTempDir(cfg.Speech.TempDir)

	gr, err := grader.New(cfg.Threshold)
	if err != nil {
		fatal("grader", err)
	}

	list := sentences.Defaults
	if cfg.SentencesFile != "" {
		if list, err = sentences.LoadFile(cfg.SentencesFile); err != nil {
			fatal("sentences", err)
		}
	}
	picker, err := sentences.NewPicker(list, nil)
	if err != nil {
		fatal("sentences", err)
	}

	// =========================================================================
	// STORAGE
	// =========================================================================

	var (
		store   storage.AudioStore
		cleaner storage.Cleaner
	)
	switch cfg.Storage.Kind {
	case config.StorageS3:
		s3, err := storage.NewS3Store(ctx, storage.S3Options{
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Secure:    cfg.Storage.S3.Secure,
		}, audioPrefix)
		if err != nil {
			fatal("s3", err)
		}
		store, cleaner = s3, s3
	default:
		local, err := storage.NewLocalStore(cfg.StaticDir, audioPrefix)
		if err != nil {
			fatal("static dir", err)
		}
		store, cleaner = local, local
	}

	// =========================================================================
	// TELEGRAM / NOTIFICATOR
	// =========================================================================

	var bot *tgbotapi.BotAPI
	if cfg.Telegram.Token != "" {
		if bot, err = tgbotapi.NewBotAPI(cfg.Telegram.Token); err != nil {
			fatal("telegram", err)
		}
		zl.Log(logger.LogEntry{Level: "info", Message: "bot ready: @" + bot.Self.UserName, Service: serviceName})
	}

	var notifyInfra notificator.Notificator
	if bot != nil && cfg.Telegram.AdminChatID != 0 {
		notifyInfra = notificator.NewTelegramInfra(bot, cfg.Telegram.AdminChatID)
	}
	notifier := notificator.NewService(notifyInfra, zl)

	// =========================================================================
	// QUESTIONS
	// =========================================================================

	var llm questions.LLM
	if cfg.OpenAI.APIKey != "" {
		llm = questions.NewOpenAILLM(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.QuestionsModel)
	}
	questionService := questions.NewService(llm, speechService, notifier, zl)

	// =========================================================================
	// ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	delivery.RegisterRoutes(
		r,
		delivery.NewVoiceHandler(speechService, picker, store, gr, notifier, zl),
		delivery.NewQuestionHandler(questionService, zl),
		delivery.NewStaticHandler(cfg.StaticDir),
		cfg.RateLimitPerMinute,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(cleanupInterval(cfg.AudioTTL))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := cleaner.Cleanup(ctx, cfg.AudioTTL)
				if err != nil {
					zl.Log(logger.LogEntry{Level: "warn", Message: "cleanup-audio", Service: serviceName, Error: err})
					continue
				}
				if n > 0 {
					zl.Log(logger.LogEntry{Level: "info", Message: fmt.Sprintf("cleanup-audio: removed %d files", n), Service: serviceName})
				}
			}
		}
	}()

	botDone := make(chan struct{})
	if bot != nil {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		updates := bot.GetUpdatesChan(u)

		dictation := telegram.NewBot(bot, bot.Self.ID, speechService, gr, picker, notifier, zl)
		go func() {
			defer close(botDone)
			dictation.Run(ctx, updates)
		}()
	} else {
		close(botDone)
	}

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: serviceName,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			fatal("server error", err)
		}
	case <-ctx.Done():
	}

	zl.Log(logger.LogEntry{Level: "info", Message: "shutting down", Service: serviceName})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if bot != nil {
		bot.StopReceivingUpdates()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Log(logger.LogEntry{Level: "error", Message: "shutdown", Service: serviceName, Error: err})
	}

	select {
	case <-botDone:
	case <-shutdownCtx.Done():
	}
}

// cleanupInterval sweeps a few times per TTL, at most once a minute.
func cleanupInterval(ttl time.Duration) time.Duration {
	if d := ttl / 4; d > time.Minute {
		return d
	}
	return time.Minute
}
