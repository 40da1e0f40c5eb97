package gateway

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model produced no text candidate.
var ErrEmptyResponse = errors.New("model returned an empty response")

// GenerateRequest is one call to the generative model.
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	// JSON asks the model for a machine-parseable JSON document.
	JSON bool
}

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
