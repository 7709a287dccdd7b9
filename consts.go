package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/spark/spark"
)

// slopeStep is the change of the slope per key press.
const slopeStep = 0.25

var directionKeys = map[ebiten.Key]spark.Direction{
	ebiten.KeyDigit1: spark.TopLeftToBottomRight,
	ebiten.KeyDigit2: spark.BottomRightToTopLeft,
	ebiten.KeyDigit3: spark.BottomLeftToTopRight,
	ebiten.KeyDigit4: spark.TopRightToBottomLeft,
}
