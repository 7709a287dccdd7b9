package render

import (
	"os"
	"testing"
	"time"

	"github.com/oliverbestmann/spark/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFrames(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Slope = 0.5
	cfg.Width = 3

	paths, err := ExportFrames(cfg, 48, 24, 5, 100*time.Millisecond, dir)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportFramesInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Interpolator = "nope"

	_, err := ExportFrames(cfg, 10, 10, 1, time.Millisecond, t.TempDir())
	assert.ErrorIs(t, err, config.ErrInvalid)

	paths, err := ExportFrames(config.Default(), 0, 10, 3, time.Millisecond, t.TempDir())
	assert.Error(t, err)
	assert.Empty(t, paths)
}
