package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var touchIds []ebiten.TouchID

// Clicked reports a tap or a left click in the current frame.
func Clicked() bool {
	// re-use touchId buffer
	touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
	if len(touchIds) > 0 {
		return true
	}

	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
