// Package spark computes the geometry of a diagonal line sweeping across a
// rectangular surface.
//
// The moving line is y = slope*x + offset. For every offset the line is
// clipped against the four edges of the surface, giving the visible segment,
// and a gradient band a fixed perpendicular distance around it. All functions
// are pure; a Sweep value carries the configuration and the surface size and
// offset are passed per call.
//
// Coordinates follow screen conventions: origin in the top-left corner, y
// grows downwards.
package spark

import (
	"github.com/quasilyte/gmath"
	"math"
)

// Sweep describes the configuration of a spark line.
type Sweep struct {
	Slope       float64
	Direction   Direction
	StrokeWidth float64
}

// Segment is the visible part of the line, clipped to the surface.
type Segment struct {
	Start gmath.Vec
	End   gmath.Vec
}

// Band are the two points a linear gradient runs between.
type Band struct {
	Start gmath.Vec
	End   gmath.Vec
}

// Frame is the result of a single animation tick.
type Frame struct {
	Offset  float64
	Segment Segment

	// Band is only meaningful if HasBand is set. A horizontal sweep has
	// no gradient and is painted in a solid color.
	Band    Band
	HasBand bool
}

func (s Sweep) Normalized() Sweep {
	s.Direction = Normalize(s.Direction, s.Slope)
	return s
}

// Range returns the offset values at the beginning and the end of one pass.
// Combinations of direction and slope that are not covered yield an empty
// range from zero to zero.
func (s Sweep) Range(size gmath.Vec) (start, end float64) {
	s = s.Normalized()

	width, height := size.X, size.Y

	switch s.Direction {
	case TopLeftToBottomRight:
		if s.Slope <= 0 {
			return 0, height - s.Slope*width
		}

	case BottomRightToTopLeft:
		if s.Slope <= 0 {
			return height - s.Slope*width, 0
		}

	case BottomLeftToTopRight:
		if s.Slope > 0 {
			return height, -s.Slope * width
		}

	case TopRightToBottomLeft:
		if s.Slope > 0 {
			return -s.Slope * width, height
		}
	}

	return 0, 0
}

// Frame computes the segment and, for a sloped line, the gradient band for
// the given offset.
func (s Sweep) Frame(size gmath.Vec, offset float64) Frame {
	s = s.Normalized()

	frame := Frame{
		Offset:  offset,
		Segment: s.Segment(size, offset),
	}

	frame.Band, frame.HasBand = s.Gradient(frame.Segment.Start, offset)

	return frame
}

// Gradient derives the gradient band trailing a segment starting at start.
// It returns false for a zero slope.
func (s Sweep) Gradient(start gmath.Vec, offset float64) (Band, bool) {
	if s.Slope == 0 {
		return Band{}, false
	}

	slope := s.Slope
	dH := math.Sqrt((slope*slope + 1) * s.StrokeWidth * s.StrokeWidth)

	var band Band
	band.Start.X = slope*start.Y + start.X - slope*(offset-dH)
	band.Start.Y = slope*band.Start.X + (offset - dH)

	// the end point is derived from the x coordinate of the start point,
	// not its own. This is how the effect has always been painted.
	band.End.X = slope*start.Y + start.X - slope*(offset+dH)
	band.End.Y = slope*band.Start.X + (offset + dH)

	return band, true
}
