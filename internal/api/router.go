package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aitoolhub/toolhub/internal/logger"
)

// NewRouter wires the tool endpoints. staticDir, when non-empty, is served
// for every non-API GET request.
func NewRouter(apiHandler *APIHandler, log *logger.Logger, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(log.With("component", "http")))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", apiHandler.HealthHandler)

		r.Post("/persona-flow/chat", apiHandler.PersonaChatHandler)
		r.Post("/summarizer", apiHandler.SummarizerHandler)
		r.Post("/blog-writer", apiHandler.BlogWriterHandler)
		r.Post("/flowchart", apiHandler.FlowchartHandler)
		r.Post("/course-generator", apiHandler.CourseGeneratorHandler)
	})

	if staticDir != "" {
		r.Get("/*", spaHandler(staticDir).ServeHTTP)
	}

	return r
}
