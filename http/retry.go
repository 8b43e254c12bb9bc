package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches url, retrying once per entry in delays and
// waiting that long before each retry. With no delays it makes one attempt.
// Client errors (4xx other than 429) are returned without retrying.
// The logger function, if provided, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !isRetryable(err) {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// isRetryable reports whether a fetch error may succeed on a later attempt.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
