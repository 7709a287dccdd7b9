package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/spark/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSparkCells(screen tcell.SimulationScreen) int {
	cols, rows := screen.Size()

	var count int
	for y := range rows {
		for x := range cols {
			if mainc, _, _, _ := screen.GetContent(x, y); mainc == sparkRune {
				count++
			}
		}
	}

	return count
}

func TestRun(t *testing.T) {
	screen := newScreen(t, 30, 12)

	cfg := config.Default()
	cfg.Width = 1
	cfg.Slope = -0.5
	cfg.Duration = 2 * time.Second
	cfg.Interpolator = "linear"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, cfg, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool { return countSparkCells(screen) > 0 },
		5*time.Second, 10*time.Millisecond, "spark never drawn")

	// space stops the sweep and only the background remains
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	assert.Eventually(t, func() bool { return countSparkCells(screen) == 0 },
		5*time.Second, 10*time.Millisecond, "spark not cleared")

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunCancelled(t *testing.T) {
	screen := newScreen(t, 10, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Run(ctx, screen, config.Default(), time.Millisecond))
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	screen := newScreen(t, 10, 5)

	cfg := config.Default()
	cfg.Duration = -1

	err := Run(context.Background(), screen, cfg, time.Millisecond)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
