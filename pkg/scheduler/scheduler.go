// Package scheduler runs a job repeatedly with a fixed delay between runs.
package scheduler

import (
	"context"
	"time"
)

// FixedDelay runs fn immediately and then again delay after each run
// completes, until ctx is cancelled. Runs never overlap.
func FixedDelay(ctx context.Context, delay time.Duration, fn func(context.Context)) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		fn(ctx)
		timer.Reset(delay)
	}
}
