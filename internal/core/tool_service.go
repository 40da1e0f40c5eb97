package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aitoolhub/toolhub/internal/gateway"
	"github.com/aitoolhub/toolhub/internal/logger"
	"github.com/aitoolhub/toolhub/internal/schema"
)

const emptyChatReply = "I couldn't generate a response."

// Config holds the settings a ToolService needs.
type Config struct {
	Model string
	// Configured is false when no model credential is available.
	Configured bool
}

// ToolService runs the five tools: validate input, build the prompt, call
// the model once, parse and check the result.
type ToolService struct {
	generator gateway.Generator
	cfg       Config
	log       *logger.Logger
}

func NewToolService(gen gateway.Generator, cfg Config, log *logger.Logger) *ToolService {
	return &ToolService{
		generator: gen,
		cfg:       cfg,
		log:       log.With("component", "core.tools"),
	}
}

// Configured reports whether the model credential is present.
func (s *ToolService) Configured() bool {
	return s.cfg.Configured
}

func (s *ToolService) admit(in any) error {
	if !s.cfg.Configured {
		return NotConfigured()
	}
	if err := schema.Validate(in); err != nil {
		return Invalid(err)
	}
	return nil
}

func (s *ToolService) Chat(ctx context.Context, req schema.PersonaChatRequest) (schema.PersonaChatResponse, error) {
	if err := s.admit(&req); err != nil {
		return schema.PersonaChatResponse{}, err
	}

	system, transcript := BuildPersonaPrompt(req)
	text, err := s.generator.Generate(ctx, gateway.GenerateRequest{
		Model:             s.cfg.Model,
		SystemInstruction: system,
		Prompt:            transcript,
	})
	if err != nil && !errors.Is(err, gateway.ErrEmptyResponse) {
		return schema.PersonaChatResponse{}, upstream("Failed to generate response", err)
	}
	if strings.TrimSpace(text) == "" {
		text = emptyChatReply
	}
	return schema.PersonaChatResponse{Response: text}, nil
}

func (s *ToolService) Summarize(ctx context.Context, in schema.SummarizerInput) (schema.SummaryResult, error) {
	const fallback = "Failed to generate summary"
	if err := s.admit(&in); err != nil {
		return schema.SummaryResult{}, err
	}
	prompt, err := BuildSummarizerPrompt(in)
	if err != nil {
		return schema.SummaryResult{}, Invalid(err)
	}
	return generateJSON[schema.SummaryResult](ctx, s, summarizerSystemInstruction, prompt, fallback)
}

func (s *ToolService) WriteBlog(ctx context.Context, in schema.BlogWriterInput) (schema.BlogResult, error) {
	const fallback = "Failed to generate blog post"
	if err := s.admit(&in); err != nil {
		return schema.BlogResult{}, err
	}
	prompt, err := BuildBlogPrompt(in)
	if err != nil {
		return schema.BlogResult{}, Invalid(err)
	}
	return generateJSON[schema.BlogResult](ctx, s, blogSystemInstruction, prompt, fallback)
}

func (s *ToolService) GenerateFlowchart(ctx context.Context, in schema.FlowchartInput) (schema.FlowchartResult, error) {
	const fallback = "Failed to generate flowchart"
	if err := s.admit(&in); err != nil {
		return schema.FlowchartResult{}, err
	}
	prompt, err := BuildFlowchartPrompt(in)
	if err != nil {
		return schema.FlowchartResult{}, Invalid(err)
	}
	out, err := generateJSON[schema.FlowchartResult](ctx, s, flowchartSystemInstruction, prompt, fallback)
	if err != nil {
		return schema.FlowchartResult{}, err
	}
	out.MermaidCode = NormalizeNewlines(out.MermaidCode)
	return out, nil
}

func (s *ToolService) GenerateCourse(ctx context.Context, in schema.CourseInput) (schema.CourseResult, error) {
	const fallback = "Failed to generate course"
	if err := s.admit(&in); err != nil {
		return schema.CourseResult{}, err
	}
	prompt, err := BuildCoursePrompt(in)
	if err != nil {
		return schema.CourseResult{}, Invalid(err)
	}
	return generateJSON[schema.CourseResult](ctx, s, courseSystemInstruction, prompt, fallback)
}

// NormalizeNewlines replaces every two-character sequence `\n` with a
// line break.
func NormalizeNewlines(code string) string {
	return strings.ReplaceAll(code, `\n`, "\n")
}

func generateJSON[T any](ctx context.Context, s *ToolService, system, prompt, fallback string) (T, error) {
	var out T
	text, err := s.generator.Generate(ctx, gateway.GenerateRequest{
		Model:             s.cfg.Model,
		SystemInstruction: system,
		Prompt:            prompt,
		JSON:              true,
	})
	if err != nil {
		return out, upstream(fallback, err)
	}

	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		s.log.Debug("unparseable model response", "content", text)
		return out, upstream(fallback, fmt.Errorf("model response is not valid JSON: %w", err))
	}
	if err := schema.ValidateResult(&out); err != nil {
		return out, upstream(fallback, fmt.Errorf("model response has unexpected shape: %w", err))
	}
	return out, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "```"))
}
