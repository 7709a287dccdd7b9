// Package driver runs a fixed rate frame clock for hosts that have none.
package driver

import (
	"context"
	"errors"
	"time"
)

// ErrStop can be returned by a step function to end Run without an error.
var ErrStop = errors.New("stop")

// Run calls step with the time elapsed since the previous call, once per
// interval, on the calling goroutine. It returns when the context is done,
// when step returns ErrStop (both yield nil) or when step fails.
func Run(ctx context.Context, interval time.Duration, step func(dt time.Duration) error) error {
	if interval <= 0 {
		return errors.New("driver: interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			if err := step(dt); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}

				return err
			}
		}
	}
}

// Interval returns the tick interval for the given rate, at least one
// millisecond.
func Interval(fps float64) time.Duration {
	if fps <= 0 {
		return time.Second / 60
	}

	return max(time.Millisecond, time.Duration(float64(time.Second)/fps))
}
