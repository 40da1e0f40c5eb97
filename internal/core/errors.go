package core

import (
	"errors"

	"github.com/aitoolhub/toolhub/internal/schema"
)

// Kind classifies a tool failure for the transport layer.
type Kind string

const (
	KindUnavailable Kind = "unavailable"
	KindInvalid     Kind = "invalid"
	KindUpstream    Kind = "upstream"
)

const (
	NotConfiguredMessage = "Google API key is not configured. Please add your GEMINI_API_KEY secret to use this feature."
	InvalidInputMessage  = "Invalid request data"
)

// Error is returned by every ToolService operation.
type Error struct {
	Kind    Kind
	Message string
	Details []schema.FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotConfigured is the failure for a missing model credential.
func NotConfigured() *Error {
	return &Error{Kind: KindUnavailable, Message: NotConfiguredMessage}
}

// Invalid wraps a validation failure. Errors that are not a
// *schema.ValidationError are reported without field details.
func Invalid(err error) *Error {
	out := &Error{Kind: KindInvalid, Message: InvalidInputMessage, Err: err}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		out.Details = verr.Errors
	}
	return out
}

func upstream(fallback string, err error) *Error {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf reports the Kind of err, KindUpstream for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}
