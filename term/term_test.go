package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/oliverbestmann/spark/spark"
	"github.com/oliverbestmann/spark/view"
	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)

	t.Cleanup(screen.Fini)

	return screen
}

func snapshot(sweep spark.Sweep, size gmath.Vec, offset float64) view.Snapshot {
	return view.Snapshot{
		Running: true,
		Size:    size,
		Frame:   sweep.Frame(size, offset),
		Style: view.Style{
			Color:         gg.White,
			Background:    gg.Black,
			GradientStart: gg.Black,
			GradientEnd:   gg.White,
			Width:         1,
		},
	}
}

func TestDrawFlatLine(t *testing.T) {
	screen := newScreen(t, 20, 10)
	r := &Renderer{Screen: screen}

	width, height := r.Size()
	assert.Equal(t, 20.0, width)
	assert.Equal(t, 10.0, height)

	r.Draw(snapshot(spark.Sweep{StrokeWidth: 1}, gmath.Vec{X: width, Y: height}, 4.5))

	for x := range 20 {
		mainc, _, style, _ := screen.GetContent(x, 4)
		assert.Equal(t, sparkRune, mainc, "x=%d", x)

		fg, _, _ := style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	}

	mainc, _, _, _ := screen.GetContent(5, 0)
	assert.Equal(t, ' ', mainc)
	mainc, _, _, _ = screen.GetContent(5, 9)
	assert.Equal(t, ' ', mainc)
}

func TestDrawDefaultWidthIsOneRow(t *testing.T) {
	screen := newScreen(t, 12, 6)
	r := &Renderer{Screen: screen}

	snap := snapshot(spark.Sweep{StrokeWidth: DefaultWidth}, gmath.Vec{X: 12, Y: 6}, 2.5)
	snap.Style.Width = DefaultWidth
	r.Draw(snap)

	for y := range 6 {
		for x := range 12 {
			mainc, _, _, _ := screen.GetContent(x, y)
			if y == 2 {
				assert.Equal(t, sparkRune, mainc, "x=%d y=%d", x, y)
			} else {
				assert.Equal(t, ' ', mainc, "x=%d y=%d", x, y)
			}
		}
	}
}

func TestDrawDiagonal(t *testing.T) {
	screen := newScreen(t, 10, 10)
	r := &Renderer{Screen: screen}

	sweep := spark.Sweep{Slope: 1, Direction: spark.BottomLeftToTopRight, StrokeWidth: 1}
	r.Draw(snapshot(sweep, gmath.Vec{X: 10, Y: 10}, 0))

	for i := range 10 {
		mainc, _, _, _ := screen.GetContent(i, i)
		assert.Equal(t, sparkRune, mainc, "cell %d", i)
	}

	mainc, _, _, _ := screen.GetContent(9, 0)
	assert.Equal(t, ' ', mainc)
}

func TestDrawStopped(t *testing.T) {
	screen := newScreen(t, 8, 4)
	r := &Renderer{Screen: screen}

	snap := snapshot(spark.Sweep{StrokeWidth: 1}, gmath.Vec{X: 8, Y: 4}, 2)
	snap.Running = false
	snap.Style.Background = gg.RGB(0, 0, 1)
	r.Draw(snap)

	for y := range 4 {
		for x := range 8 {
			mainc, _, style, _ := screen.GetContent(x, y)
			assert.Equal(t, ' ', mainc)

			_, bg, _ := style.Decompose()
			assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	snap := snapshot(spark.Sweep{StrokeWidth: 1}, gmath.Vec{X: 10, Y: 10}, 5)

	assert.InDelta(t, 0, distanceToSegment(snap, 3, 5), 1e-9)
	assert.InDelta(t, 2, distanceToSegment(snap, 3, 7), 1e-9)
	assert.InDelta(t, 3, distanceToSegment(snap, 13, 5), 1e-9)

	// a degenerate segment is a point
	snap.Frame.Segment = spark.Segment{}
	assert.InDelta(t, 5, distanceToSegment(snap, 3, 4), 1e-9)
}
