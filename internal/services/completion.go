package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

// CompletionRequest describes a single chat-completion call.
type CompletionRequest struct {
	System          string
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

type CompletionService interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// RetryPolicy bounds the provider call. The timeout applies per attempt, so
// a hung request never consumes the whole retry budget.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Timeout      time.Duration
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	delay := time.Duration(float64(p.InitialDelay) * math.Pow(2, float64(attempt-1)))
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// providerStatusError keeps the upstream HTTP status for transience checks.
type providerStatusError struct {
	StatusCode int
}

func (e *providerStatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

func completeWithRetry(ctx context.Context, client CompletionService, req CompletionRequest, policy RetryPolicy, logger *zap.Logger) (string, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := policy.backoff(attempt - 1)
			logger.Warn("retrying completion request",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", attempts),
				zap.Duration("delay", delay),
				zap.Error(lastErr))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", apperr.Wrap(apperr.KindProvider, "completion cancelled during retry", ctx.Err())
			}
		}

		text, err := completeOnce(ctx, client, req, policy.Timeout)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return "", err
		}
	}

	return "", apperr.Wrap(apperr.KindProvider,
		fmt.Sprintf("no completion after %d attempts", attempts), lastErr)
}

func completeOnce(ctx context.Context, client CompletionService, req CompletionRequest, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	text, err := client.Complete(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", apperr.Wrap(apperr.KindProvider, "completion request timed out", context.DeadlineExceeded)
	}
	return text, err
}

// isRetryable decides whether a failed attempt is worth repeating. Rate
// limits, server errors and transport hiccups are; auth and client errors
// are not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return true
		case 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}

	var statusErr *providerStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 429 || statusErr.StatusCode >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}
