package mlclient

import (
	"context"
	"time"

	"github.com/openreel/ratingcore/pkg/ratingerrors"
)

// maxAttempts bounds the retry loop for transient transport failures.
const maxAttempts = 3

var backoff = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// WithRetry runs fn, retrying only when the returned error is a
// ratingerrors.Error whose Kind is Retryable — transient transport
// failures, never domain errors. Returns the last error if all attempts
// are exhausted.
func WithRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		rerr, ok := ratingerrors.As(lastErr)
		if !ok || !rerr.Kind.Retryable() {
			return lastErr
		}
		if attempt+1 >= maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff[attempt%len(backoff)]):
		}
	}
	return lastErr
}
