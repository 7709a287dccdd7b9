package spark

import (
	"github.com/quasilyte/gmath"
)

// clipTolerance is the relative error accepted at the edges.
const clipTolerance = 1e-9

type endpoint uint8

const (
	startPoint endpoint = iota
	endPoint
)

// candidate is a possible intersection of the line with one of the edges.
type candidate struct {
	Valid  bool
	Point  gmath.Vec
	Target endpoint
}

// candidates returns the intersections of the line with the edges in a fixed
// order: y=0, x=0, y=height and x=width. The slope must not be zero.
func (s Sweep) candidates(size gmath.Vec, offset float64) [4]candidate {
	width, height := size.X, size.Y

	// the x=0 and x=width intersections swap sides for rising sweeps
	left, right := endPoint, startPoint
	if s.Direction.rising() {
		left, right = startPoint, endPoint
	}

	top, topOk := clip(-offset/s.Slope, width)
	bottom, bottomOk := clip((height-offset)/s.Slope, width)
	leftY, leftOk := clip(offset, height)
	rightY, rightOk := clip(s.Slope*width+offset, height)

	return [4]candidate{
		{Valid: topOk, Point: gmath.Vec{X: top, Y: 0}, Target: startPoint},
		{Valid: leftOk, Point: gmath.Vec{X: 0, Y: leftY}, Target: left},
		{Valid: bottomOk, Point: gmath.Vec{X: bottom, Y: height}, Target: endPoint},
		{Valid: rightOk, Point: gmath.Vec{X: width, Y: rightY}, Target: right},
	}
}

// Segment clips the line with the given offset to the surface. If more than
// two intersections are valid, which happens when the line passes exactly
// through a corner, later edges in the order y=0, x=0, y=height, x=width
// overwrite earlier ones. An endpoint without any valid intersection stays
// at the origin.
func (s Sweep) Segment(size gmath.Vec, offset float64) Segment {
	s = s.Normalized()

	if s.Slope == 0 {
		return Segment{
			Start: gmath.Vec{X: 0, Y: offset},
			End:   gmath.Vec{X: size.X, Y: offset},
		}
	}

	var segment Segment
	for _, c := range s.candidates(size, offset) {
		if !c.Valid {
			continue
		}

		switch c.Target {
		case startPoint:
			segment.Start = c.Point
		case endPoint:
			segment.End = c.Point
		}
	}

	return segment
}

// clip reports whether 0 <= value <= limit and clamps value into that range.
// Values off by rounding error still count, so a line through a corner keeps
// its intersections at the range ends. NaN is never within.
func clip(value, limit float64) (float64, bool) {
	eps := clipTolerance * max(1, limit)
	if !(value >= -eps && value <= limit+eps) {
		return value, false
	}

	return min(max(value, 0), limit), true
}
