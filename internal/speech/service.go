package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
)

// Service is the single entry point for recognition and synthesis.
type Service struct {
	stt      STTClient
	tts      TTSClient
	language string
	tempDir  string
	log      *logger.ZapLogger
}

// NewService accepts nil clients; the matching calls then fail with
// ErrNotConfigured.
func NewService(stt STTClient, tts TTSClient, language string, log *logger.ZapLogger) *Service {
	if language == "" {
		language = "en"
	}
	return &Service{
		stt:      stt,
		tts:      tts,
		language: language,
		log:      log,
	}
}

// SetTempDir changes where ListenReader stages audio. Empty means os.TempDir.
func (s *Service) SetTempDir(dir string) { s.tempDir = dir }

func (s *Service) Language() string { return s.language }

// Listen transcribes the audio file at path.
func (s *Service) Listen(ctx context.Context, path string) Recognition {
	if s.stt == nil {
		return Recognition{Outcome: Failed, Err: fmt.Errorf("stt: %w", ErrNotConfigured)}
	}

	text, err := s.stt.Transcribe(ctx, path)
	rec := recognitionOf(text, err)
	if !rec.OK() {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "recognition " + rec.Outcome.String(),
			Service: "speech",
			Error:   rec.Err,
		})
	}
	return rec
}

// ListenReader stages r in a temp file with extension ext and listens to it.
// The temp file is gone when ListenReader returns.
func (s *Service) ListenReader(ctx context.Context, r io.Reader, ext string) Recognition {
	var rec Recognition
	err := WithTempFile(s.tempDir, ext, r, func(path string) error {
		rec = s.Listen(ctx, path)
		return nil
	})
	if err != nil {
		return Recognition{Outcome: Failed, Err: err}
	}
	return rec
}

// Synthesize speaks text in the service language.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.SynthesizeLang(ctx, text, s.language)
}

func (s *Service) SynthesizeLang(ctx context.Context, text, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if s.tts == nil {
		return nil, fmt.Errorf("tts: %w", ErrNotConfigured)
	}

	audio, err := s.tts.Synthesize(ctx, text, language)
	if err == nil && len(audio) == 0 {
		err = errors.New("provider returned no audio")
	}
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "error", Message: "synthesis failed", Service: "speech", Error: err})
		return nil, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("synthesized %d chars (%s) into %s", len(text), language, humanize.Bytes(uint64(len(audio)))),
		Service: "speech",
	})
	return audio, nil
}

// EncodeBase64 is the transport encoding the CLI and data URLs use.
func EncodeBase64(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}

// DataURL embeds MP3 audio in a data: URL.
func DataURL(audio []byte) string {
	return "data:audio/mp3;base64," + EncodeBase64(audio)
}
