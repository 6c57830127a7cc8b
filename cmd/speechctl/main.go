package main

import (
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"github.com/Vovarama1992/lingua_voice/internal/config"
	"github.com/Vovarama1992/lingua_voice/internal/speech"
)

func main() {
	if err := newRootCmd(loadSpeech).Execute(); err != nil {
		// cobra already printed it
		os.Exit(1)
	}
}

// loadSpeech builds the speech service from the environment. Logs go to
// stderr so stdout stays clean for the audio.
func loadSpeech() (speechAPI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zapLogger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	tts, err := speech.NewTTSClient(cfg)
	if err != nil {
		return nil, err
	}
	stt, err := speech.NewSTTClient(cfg)
	if err != nil {
		return nil, err
	}

	svc := speech.NewService(stt, tts, cfg.Speech.TTSLanguage, logger.NewZapLogger(zapLogger.Sugar()))
	svc.SetTempDir(cfg.Speech.TempDir)
	return svc, nil
}
