package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunStops(t *testing.T) {
	var calls int
	var total time.Duration

	err := Run(context.Background(), time.Millisecond, func(dt time.Duration) error {
		calls++
		total += dt

		if calls == 5 {
			return ErrStop
		}

		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, calls)
	assert.Greater(t, total, time.Duration(0))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	err := Run(ctx, time.Millisecond, func(time.Duration) error {
		calls++
		if calls == 3 {
			cancel()
		}

		return nil
	})

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestRunPropagatesError(t *testing.T) {
	boom := errors.New("boom")

	err := Run(context.Background(), time.Millisecond, func(time.Duration) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestRunRejectsInterval(t *testing.T) {
	err := Run(context.Background(), 0, func(time.Duration) error { return nil })
	assert.Error(t, err)
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 20*time.Millisecond, Interval(50))
	assert.Equal(t, time.Second/60, Interval(0))
	assert.Equal(t, time.Millisecond, Interval(1e6))
}
