package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/aitoolhub/toolhub/internal/logger"
)

// RetryPolicy bounds each model call and retries failed ones.
type RetryPolicy struct {
	// Timeout caps a single attempt. Zero means no cap.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after the first failure.
	MaxRetries int
	// Backoff is the pause before the first retry, doubled for each later one.
	Backoff time.Duration
}

type retryingGenerator struct {
	next   Generator
	policy RetryPolicy
	log    *logger.Logger
}

// WithRetry wraps next with per-attempt timeouts and retries. Only attempt
// timeouts, 429 and 5xx API errors are retried, and retries stop as soon as
// ctx is done.
func WithRetry(next Generator, policy RetryPolicy, log *logger.Logger) Generator {
	return &retryingGenerator{next: next, policy: policy, log: log.With("component", "gateway.retry")}
}

func (g *retryingGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	backoff := g.policy.Backoff
	var lastErr error
	for attempt := 0; attempt <= g.policy.MaxRetries; attempt++ {
		if attempt > 0 {
			g.log.Warn("model call failed, retrying", "attempt", attempt, "model", req.Model, "error", lastErr)
			if err := sleep(ctx, backoff); err != nil {
				return "", lastErr
			}
			backoff *= 2
		}

		text, err := g.attempt(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil || !retryable(err) {
			return "", lastErr
		}
	}
	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return false
}

func (g *retryingGenerator) attempt(ctx context.Context, req GenerateRequest) (string, error) {
	if g.policy.Timeout <= 0 {
		return g.next.Generate(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, g.policy.Timeout)
	defer cancel()
	return g.next.Generate(ctx, req)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
