package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aitoolhub/toolhub/internal/core"
	"github.com/aitoolhub/toolhub/internal/logger"
	"github.com/aitoolhub/toolhub/internal/schema"
)

const maxBodyBytes = 1 << 20

type APIHandler struct {
	tools *core.ToolService
	log   *logger.Logger
}

func NewAPIHandler(tools *core.ToolService, log *logger.Logger) *APIHandler {
	return &APIHandler{tools: tools, log: log.With("component", "api")}
}

type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"geminiConfigured"`
}

func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", GeminiConfigured: h.tools.Configured()})
}

func (h *APIHandler) PersonaChatHandler(w http.ResponseWriter, r *http.Request) {
	handleTool(h, "persona-flow", h.tools.Chat)(w, r)
}

func (h *APIHandler) SummarizerHandler(w http.ResponseWriter, r *http.Request) {
	handleTool(h, "summarizer", h.tools.Summarize)(w, r)
}

func (h *APIHandler) BlogWriterHandler(w http.ResponseWriter, r *http.Request) {
	handleTool(h, "blog-writer", h.tools.WriteBlog)(w, r)
}

func (h *APIHandler) FlowchartHandler(w http.ResponseWriter, r *http.Request) {
	handleTool(h, "flowchart", h.tools.GenerateFlowchart)(w, r)
}

func (h *APIHandler) CourseGeneratorHandler(w http.ResponseWriter, r *http.Request) {
	handleTool(h, "course-generator", h.tools.GenerateCourse)(w, r)
}

// handleTool decodes In from the request body, runs the tool and writes
// either its result or the mapped error.
func handleTool[In, Out any](h *APIHandler, tool string, run func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.tools.Configured() {
			h.writeError(w, r, tool, core.NotConfigured())
			return
		}

		var in In
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := schema.Decode(r.Body, &in); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
				return
			}
			h.writeError(w, r, tool, core.Invalid(err))
			return
		}

		out, err := run(r.Context(), in)
		if err != nil {
			h.writeError(w, r, tool, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []schema.FieldError `json:"details,omitempty"`
}

func (h *APIHandler) writeError(w http.ResponseWriter, r *http.Request, tool string, err error) {
	var appErr *core.Error
	if !errors.As(err, &appErr) {
		appErr = &core.Error{Kind: core.KindUpstream, Message: err.Error(), Err: err}
	}

	switch appErr.Kind {
	case core.KindUnavailable:
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: appErr.Message})
	case core.KindInvalid:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: appErr.Message, Details: appErr.Details})
	default:
		h.log.Error("tool request failed", "tool", tool, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: appErr.Message})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
