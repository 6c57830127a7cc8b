package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hVoice *VoiceHandler,
	hQuestions *QuestionHandler,
	hStatic *StaticHandler,
	ratePerMinute int,
) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", hVoice.Home)
		pr.Post("/validate", hVoice.Validate)
		pr.Post("/compare-answer", hVoice.CompareAnswer)
		pr.Get("/static/*", hStatic.Serve)

		// --- синтез речи, дорого ---
		pr.Group(func(lr chi.Router) {
			lr.Use(httprate.LimitByIP(ratePerMinute, time.Minute))

			lr.Get("/generate-voice", hVoice.GenerateVoice)
			lr.Post("/questions", hQuestions.Generate)
		})
	})
}
