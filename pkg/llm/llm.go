package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// LLMClient is the common interface every provider client implements.
type LLMClient interface {
	// Complete submits the conversation and returns the full text reply.
	Complete(ctx context.Context, messages []Message) (string, error)

	// IsTransientError reports whether an error is temporary (503, rate
	// limit, connection reset) and worth retrying.
	IsTransientError(err error) bool
}

// FallbackClient tries multiple clients in order, retrying transient
// failures on each before moving to the next provider.
type FallbackClient struct {
	Clients    []LLMClient
	MaxRetries int
	RetryDelay time.Duration
}

func (f *FallbackClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var lastErr error
	for i, client := range f.Clients {
		if i > 0 {
			slog.Warn("Previous provider failed, trying fallback", "provider_index", i+1)
		}

		maxRetries := f.MaxRetries
		if maxRetries <= 0 {
			maxRetries = 1
		}

		for retry := 1; retry <= maxRetries; retry++ {
			if retry > 1 {
				slog.Info("Retrying provider", "provider_index", i+1, "attempt", retry, "max", maxRetries)
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(time.Duration(retry-1) * f.RetryDelay):
				}
			}

			reply, err := client.Complete(ctx, messages)
			if err == nil {
				return reply, nil
			}

			lastErr = err

			if client.IsTransientError(err) && retry < maxRetries {
				slog.Warn("Provider failed with transient error", "provider_index", i+1, "error", err)
				continue
			}

			slog.Error("Provider failed", "provider_index", i+1, "error", err)
			break
		}
	}
	return "", fmt.Errorf("all fallback providers failed. Last error: %v", lastErr)
}

// IsTransientError implements LLMClient. A FallbackClient error means every
// child already exhausted its retries, so it is not transient itself.
func (f *FallbackClient) IsTransientError(err error) bool {
	return false
}
