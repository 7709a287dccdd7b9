package spark

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the orientation of a sweep across the surface. The numeric
// values match the integer attribute values of the spark view.
type Direction int

const (
	TopLeftToBottomRight Direction = iota
	BottomRightToTopLeft
	BottomLeftToTopRight
	TopRightToBottomLeft
)

var directionNames = [...]string{
	TopLeftToBottomRight: "topLeftToBottomRight",
	BottomRightToTopLeft: "bottomRightToTopLeft",
	BottomLeftToTopRight: "bottomLeftToTopRight",
	TopRightToBottomLeft: "topRightToBottomLeft",
}

// Directions lists all valid directions in attribute order.
var Directions = []Direction{
	TopLeftToBottomRight,
	BottomRightToTopLeft,
	BottomLeftToTopRight,
	TopRightToBottomLeft,
}

func (d Direction) String() string {
	if d.Valid() {
		return directionNames[d]
	}

	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

func (d Direction) Valid() bool {
	return d >= TopLeftToBottomRight && d <= TopRightToBottomLeft
}

// rising reports whether the direction belongs to the pair used with a
// positive slope. For those, the x=0 and x=width intersections swap their
// role as start and end point.
func (d Direction) rising() bool {
	return d == BottomLeftToTopRight || d == TopRightToBottomLeft
}

// ParseDirection accepts either a direction name (case-insensitive) or its
// integer attribute value.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		d := Direction(n)
		if !d.Valid() {
			return 0, fmt.Errorf("direction %d out of range", n)
		}

		return d, nil
	}

	for idx, name := range directionNames {
		if strings.EqualFold(name, s) {
			return Direction(idx), nil
		}
	}

	return 0, fmt.Errorf("unknown direction %q", s)
}

// Normalize corrects a direction that does not agree with the sign of the
// slope. A zero slope accepts any direction.
func Normalize(direction Direction, slope float64) Direction {
	switch {
	case slope < 0 && direction.rising():
		return TopLeftToBottomRight

	case slope > 0 && (direction == TopLeftToBottomRight || direction == BottomRightToTopLeft):
		return BottomLeftToTopRight

	default:
		return direction
	}
}
