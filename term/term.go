// Package term paints spark snapshots onto a terminal screen. Every cell is
// one unit of the surface.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/oliverbestmann/spark/render"
	"github.com/oliverbestmann/spark/view"
)

const sparkRune = '█'

// DefaultWidth is the spark width in cells used by the term command.
const DefaultWidth = 0.5

type Renderer struct {
	Screen tcell.Screen
}

// Size returns the surface size in cells.
func (r *Renderer) Size() (width, height float64) {
	w, h := r.Screen.Size()
	return float64(w), float64(h)
}

// Draw fills the screen with the background and, while running, marks every
// cell within half the stroke width of the spark segment.
func (r *Renderer) Draw(snap view.Snapshot) {
	background := styleOf(tcell.StyleDefault, snap.Style.Background, true)

	cols, rows := r.Screen.Size()
	for y := range rows {
		for x := range cols {
			r.Screen.SetContent(x, y, ' ', nil, background)
		}
	}

	if snap.Running {
		brush := render.Brush(snap)
		halfWidth := max(0.5, snap.Style.Width/2)

		for y := range rows {
			for x := range cols {
				cx, cy := float64(x)+0.5, float64(y)+0.5
				if distanceToSegment(snap, cx, cy) > halfWidth {
					continue
				}

				style := styleOf(background, brush.ColorAt(cx, cy), false)
				r.Screen.SetContent(x, y, sparkRune, nil, style)
			}
		}
	}

	r.Screen.Show()
}

// distanceToSegment measures the distance of a point to the segment; a
// square cap extends the segment by half the stroke width, which the caller
// covers by comparing against the same limit.
func distanceToSegment(snap view.Snapshot, x, y float64) float64 {
	a, b := snap.Frame.Segment.Start, snap.Frame.Segment.End

	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy

	var t float64
	if lengthSq > 0 {
		t = ((x-a.X)*dx + (y-a.Y)*dy) / lengthSq
		t = min(1, max(0, t))
	}

	px, py := a.X+t*dx, a.Y+t*dy
	return math.Hypot(x-px, y-py)
}

func styleOf(base tcell.Style, c gg.RGBA, background bool) tcell.Style {
	color := tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
	if background {
		return base.Background(color)
	}

	return base.Foreground(color)
}

func channel(value float64) int32 {
	return int32(math.Round(min(1, max(0, value)) * 255))
}
