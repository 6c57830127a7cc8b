package delivery

import (
	"math"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/lingua_voice/internal/similarity"
	"github.com/Vovarama1992/lingua_voice/internal/storage"
)

const welcome = "Welcome to the Language Learning App!"

type VoiceHandler struct {
	tts       Synthesizer
	sentences SentencePicker
	store     storage.AudioStore
	grader    Grader
	notifier  Notifier
	log       *logger.ZapLogger
}

func NewVoiceHandler(
	tts Synthesizer,
	sentences SentencePicker,
	store storage.AudioStore,
	grader Grader,
	notifier Notifier,
	log *logger.ZapLogger,
) *VoiceHandler {
	return &VoiceHandler{
		tts:       tts,
		sentences: sentences,
		store:     store,
		grader:    grader,
		notifier:  notifier,
		log:       log,
	}
}

func (h *VoiceHandler) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(welcome))
}

// GenerateVoice picks a sentence, speaks it and stores the audio under a
// fresh name.
func (h *VoiceHandler) GenerateVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sentence := h.sentences.Pick()

	audio, err := h.tts.Synthesize(ctx, sentence)
	if err != nil {
		h.report(r, err, "generate-voice: synthesize")
		writeError(w, http.StatusInternalServerError, "speech synthesis failed")
		return
	}

	name := storage.NewObjectName(audioPrefix, "mp3")
	url, err := h.store.Save(ctx, name, audio, "audio/mpeg")
	if err != nil {
		h.report(r, err, "generate-voice: store "+name)
		writeError(w, http.StatusInternalServerError, "failed to store audio")
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "voice generated: " + name + " (" + humanize.Bytes(uint64(len(audio))) + ")",
		Service: "delivery",
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"audio_url": url,
		"sentence":  sentence,
	})
}

func (h *VoiceHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserInput       string `json:"user_input"`
		CorrectSentence string `json:"correct_sentence"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid validate body", Service: "delivery", Error: err})
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.grader.Grade(req.CorrectSentence, req.UserInput)
	writeJSON(w, http.StatusOK, map[string]any{
		"result":     res.Label(),
		"similarity": res.Percent(),
	})
}

// CompareAnswer scores a typed answer by edit distance, as the practice
// pages do.
func (h *VoiceHandler) CompareAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserAnswer    string `json:"userAnswer"`
		CorrectAnswer string `json:"correctAnswer"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserAnswer == "" || req.CorrectAnswer == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	acc := similarity.Accuracy(req.UserAnswer, req.CorrectAnswer)
	writeJSON(w, http.StatusOK, map[string]int{"accuracy": int(math.Round(acc * 100))})
}

func (h *VoiceHandler) report(r *http.Request, err error, details string) {
	if h.notifier != nil {
		_ = h.notifier.Notify(r.Context(), err, details)
		return
	}
	h.log.Log(logger.LogEntry{Level: "error", Message: details, Service: "delivery", Error: err})
}
