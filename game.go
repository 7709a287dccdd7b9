package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/spark/config"
	"github.com/oliverbestmann/spark/view"
	"go.uber.org/zap"
	"time"
)

// Game implements ebiten.Game interface and hosts a single spark view.
type Game struct {
	initialized bool

	screenWidth  int
	screenHeight int

	now time.Time

	view *view.View

	// canvas keeps the last painted frame, it is only repainted after the
	// view asked for a redraw.
	canvas  *ebiten.Image
	dirty   bool
	redraws int

	debug bool
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{}

	v, err := view.New(cfg, g)
	if err != nil {
		return nil, err
	}

	g.view = v

	return g, nil
}

func (g *Game) RequestRedraw() {
	g.dirty = true
	g.redraws += 1
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight

		g.view.OnSurfaceSize(float64(outsideWidth), float64(outsideHeight))
	}

	// follow the window size
	return g.screenWidth, g.screenHeight
}

func (g *Game) Update() error {
	// start sweeping once the window is up
	if !g.initialized {
		g.initialized = true
		g.now = time.Now()
		g.view.Start()
	}

	// calculate delta time for animations
	now := time.Now()
	dt := now.Sub(g.now)
	g.now = now

	if quit := g.Input(); quit {
		return ebiten.Termination
	}

	g.view.Update(dt)

	return nil
}

// Input handles clicks and keys and reports whether the window should close.
func (g *Game) Input() (quit bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if Clicked() {
		if g.view.Running() {
			g.view.Stop()
		} else {
			g.view.Start()
		}
	}

	cfg := g.view.Config()
	changed := false

	for key, direction := range directionKeys {
		if inpututil.IsKeyJustPressed(key) {
			cfg = cfg.WithDirection(direction)
			changed = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		cfg.Slope += slopeStep
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		cfg.Slope -= slopeStep
		changed = true
	}

	if changed {
		if err := g.view.Configure(cfg); err != nil {
			view.Logger().Warn("Ignoring configuration", zap.Error(err))
		}
	}

	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.updateCanvas()

	screen.DrawImage(g.canvas, nil)

	if g.debug {
		snap := g.view.Snapshot()
		cfg := g.view.Config()

		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"slope %.2f  %s\noffset %.1f\n%v -> %v\nredraws %d",
			cfg.Slope, cfg.Sweep().Direction,
			snap.Frame.Offset,
			snap.Frame.Segment.Start, snap.Frame.Segment.End,
			g.redraws,
		))
	}
}

func (g *Game) updateCanvas() {
	dirty := g.dirty

	// if we have no image of the right size, create one
	if g.canvas == nil || g.canvas.Bounds().Dx() != g.screenWidth || g.canvas.Bounds().Dy() != g.screenHeight {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}

		g.canvas = ebiten.NewImage(max(1, g.screenWidth), max(1, g.screenHeight))
		dirty = true
	}

	// re-render the spark if needed
	if dirty {
		DrawSnapshot(g.canvas, g.view.Snapshot())
		g.dirty = false
	}
}
