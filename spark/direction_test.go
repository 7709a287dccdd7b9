package spark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		slope     float64
		want      Direction
	}{
		{"falling keeps top left", TopLeftToBottomRight, -1, TopLeftToBottomRight},
		{"falling keeps bottom right", BottomRightToTopLeft, -1, BottomRightToTopLeft},
		{"falling corrects bottom left", BottomLeftToTopRight, -1, TopLeftToBottomRight},
		{"falling corrects top right", TopRightToBottomLeft, -0.25, TopLeftToBottomRight},
		{"rising keeps bottom left", BottomLeftToTopRight, 1, BottomLeftToTopRight},
		{"rising keeps top right", TopRightToBottomLeft, 1, TopRightToBottomLeft},
		{"rising corrects top left", TopLeftToBottomRight, 0.5, BottomLeftToTopRight},
		{"rising corrects bottom right", BottomRightToTopLeft, 3, BottomLeftToTopRight},
		{"flat keeps rising direction", TopRightToBottomLeft, 0, TopRightToBottomLeft},
		{"flat keeps falling direction", BottomRightToTopLeft, 0, BottomRightToTopLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.direction, tt.slope))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	directions := append([]Direction{Direction(-1), Direction(7)}, Directions...)

	for _, direction := range directions {
		for _, slope := range []float64{-3, -1, -0.001, 0, 0.001, 1, 3} {
			once := Normalize(direction, slope)
			assert.Equal(t, once, Normalize(once, slope), "direction=%v slope=%v", direction, slope)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, direction := range Directions {
		parsed, err := ParseDirection(direction.String())
		require.NoError(t, err)
		assert.Equal(t, direction, parsed)
	}

	parsed, err := ParseDirection(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, TopRightToBottomLeft, parsed)

	parsed, err = ParseDirection("BOTTOMLEFTTOTOPRIGHT")
	require.NoError(t, err)
	assert.Equal(t, BottomLeftToTopRight, parsed)

	_, err = ParseDirection("4")
	assert.Error(t, err)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "bottomRightToTopLeft", BottomRightToTopLeft.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
