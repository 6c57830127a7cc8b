package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lingua_voice/internal/questions"
)

type QuestionHandler struct {
	builder QuestionBuilder
	log     *logger.ZapLogger
}

func NewQuestionHandler(builder QuestionBuilder, log *logger.ZapLogger) *QuestionHandler {
	return &QuestionHandler{builder: builder, log: log}
}

func (h *QuestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qs, err := h.builder.Build(r.Context(), req.Level, req.Format)
	switch {
	case errors.Is(err, questions.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "Invalid format")
		return
	case errors.Is(err, questions.ErrInvalidLevel):
		writeError(w, http.StatusBadRequest, "Invalid level")
		return
	case err != nil:
		h.log.Log(logger.LogEntry{Level: "error", Message: "build questions", Service: "delivery", Error: err})
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, qs)
}
