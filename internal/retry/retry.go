// Package retry provides a bounded, fixed-delay retry wrapper for flaky external calls.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do invokes op up to attempts times, sleeping delay between failures. It
// returns the number of attempts made and the last error (nil once op
// succeeds). There is no backoff or jitter; the delay is fixed. A context
// cancellation during the inter-attempt sleep aborts immediately with the
// context's error.
func Do(ctx context.Context, attempts int, delay time.Duration, op func(context.Context) error) (int, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for try := 1; try <= attempts; try++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return try, nil
		}

		if try == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return try, fmt.Errorf("retry aborted after %d attempt(s): %w", try, ctx.Err())
		case <-timer.C:
		}
	}

	return attempts, fmt.Errorf("all %d attempt(s) failed: %w", attempts, lastErr)
}
