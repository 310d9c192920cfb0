package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// Retry runs an operation with doubling back-off between attempts.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *logger.Logger
}

// permanent marks an error that must not be retried.
type permanent struct{ err error }

func (p permanent) Error() string { return p.err.Error() }
func (p permanent) Unwrap() error { return p.err }

// Permanent wraps err so Do returns it immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanent{err: err}
}

// Do executes fn until it succeeds, returns a Permanent error, attempts run
// out or ctx is done.
func (r Retry) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := r.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		var stop permanent
		if errors.As(lastErr, &stop) {
			return stop.err
		}
		if attempt == attempts {
			break
		}

		logCtx := r.Logger.WithFields(ctx, map[string]any{
			"operation": operation,
			"attempt":   attempt,
			"delay":     delay.String(),
			"error":     lastErr.Error(),
		})
		r.Logger.Warn(logCtx, "retrying after failure")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: %w", operation, ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}
