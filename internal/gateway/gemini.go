package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/aitoolhub/toolhub/internal/logger"
)

var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// GeminiClient talks to the Gemini API. The underlying genai client is
// created on first use and shared by all later calls.
type GeminiClient struct {
	apiKey string
	log    *logger.Logger

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewGeminiClient(apiKey string, log *logger.Logger) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, log: log.With("component", "gateway.gemini")}
}

func (c *GeminiClient) genaiClient() (*genai.Client, error) {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.initErr = ErrMissingAPIKey
			return
		}
		// Not tied to a request context; the client outlives the request.
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(c.apiKey))
		if err != nil {
			c.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
			return
		}
		c.client = client
		c.log.Info("GenAI client created")
	})
	return c.client, c.initErr
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	client, err := c.genaiClient()
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(req.Model)
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent failed: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

// Close releases the genai client if one was created.
func (c *GeminiClient) Close() {
	if c.client == nil {
		return
	}
	if err := c.client.Close(); err != nil {
		c.log.Error("Error closing GenAI client", "error", err)
		return
	}
	c.log.Info("GenAI client closed")
}
