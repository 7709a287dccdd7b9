// Package view hosts the spark animation. A View receives lifecycle
// callbacks and frame ticks from its host, advances the animation, keeps the
// last computed frame and asks the host to redraw it.
//
// All methods except Configure must be called from the host's render
// goroutine.
package view

import (
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/oliverbestmann/spark/config"
	"github.com/oliverbestmann/spark/spark"
	"github.com/oliverbestmann/spark/tween"
	"github.com/quasilyte/gmath"
	"go.uber.org/zap"
)

// Redrawer is notified whenever a new frame is ready to be painted.
type Redrawer interface {
	RequestRedraw()
}

type RedrawFunc func()

func (f RedrawFunc) RequestRedraw() {
	f()
}

// Style is the paint configuration of a frame.
type Style struct {
	Color         gg.RGBA
	Background    gg.RGBA
	GradientStart gg.RGBA
	GradientEnd   gg.RGBA
	Width         float64
}

// Snapshot is everything a renderer needs to paint the current state.
type Snapshot struct {
	// Running is false before Start and after Stop. Only the background is
	// painted then.
	Running bool

	Size  gmath.Vec
	Frame spark.Frame
	Style Style
}

type View struct {
	redraw Redrawer

	// pending holds a configuration waiting to be applied at the next
	// Update, so a tick never sees a half applied configuration.
	pending atomic.Pointer[config.Config]

	config config.Config
	sweep  spark.Sweep
	size   gmath.Vec

	tweens  tween.Tweens
	running bool
	frame   spark.Frame
}

// New creates a stopped view. The redrawer may be nil.
func New(cfg config.Config, redraw Redrawer) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if redraw == nil {
		redraw = RedrawFunc(func() {})
	}

	v := &View{redraw: redraw}
	v.apply(cfg)

	return v, nil
}

// Configure replaces the configuration. The new configuration takes effect
// at the beginning of the next Update, a running sweep restarts with it.
// Configure is safe for concurrent use.
func (v *View) Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	v.pending.Store(&cfg)
	return nil
}

// Config returns the configuration currently in effect.
func (v *View) Config() config.Config {
	return v.config
}

func (v *View) Running() bool {
	return v.running
}

// OnSurfaceSize sets the size of the drawing surface. A running sweep
// restarts to cover the new size.
func (v *View) OnSurfaceSize(width, height float64) {
	size := gmath.Vec{X: max(0, width), Y: max(0, height)}
	if size == v.size {
		return
	}

	Logger().Debug("surface size changed",
		zap.Float64("width", size.X),
		zap.Float64("height", size.Y))

	v.size = size

	if v.running {
		v.restart()
	}
}

// Start begins sweeping from the start of the offset range. A sweep that is
// already running is cancelled first.
func (v *View) Start() {
	v.cancel()
	v.restart()
}

// Stop cancels the sweep. The next redraw shows the background only.
func (v *View) Stop() {
	if !v.cancel() {
		return
	}

	Logger().Debug("animation end")
	v.redraw.RequestRedraw()
}

// Update advances the animation by dt.
func (v *View) Update(dt time.Duration) {
	if cfg := v.pending.Swap(nil); cfg != nil {
		v.apply(*cfg)

		if v.running {
			v.restart()
		} else {
			v.redraw.RequestRedraw()
		}
	}

	v.tweens.Update(dt)
}

// OnTick recomputes the frame for the given offset and requests a redraw.
func (v *View) OnTick(offset float64) {
	v.frame = v.sweep.Frame(v.size, offset)
	v.redraw.RequestRedraw()
}

func (v *View) Snapshot() Snapshot {
	return Snapshot{
		Running: v.running,
		Size:    v.size,
		Frame:   v.frame,
		Style: Style{
			Color:         v.config.Color.RGBA(),
			Background:    v.config.Background.RGBA(),
			GradientStart: v.config.GradientStart.RGBA(),
			GradientEnd:   gg.White,
			Width:         v.config.Width,
		},
	}
}

func (v *View) apply(cfg config.Config) {
	v.config = cfg
	v.sweep = cfg.Sweep()

	Logger().Debug("configuration applied",
		zap.Float64("slope", v.sweep.Slope),
		zap.Stringer("direction", v.sweep.Direction),
		zap.Float64("width", v.sweep.StrokeWidth),
		zap.Duration("duration", cfg.Duration),
		zap.String("interpolator", cfg.Interpolator))
}

// restart begins a new sweep over the range for the current size and
// configuration.
func (v *View) restart() {
	v.tweens.Clear()

	start, end := v.sweep.Range(v.size)
	duration := v.config.Duration
	ease := v.config.Ease()

	Logger().Debug("animation start",
		zap.Float64("from", start),
		zap.Float64("to", end),
		zap.Duration("duration", duration))

	v.running = true

	v.tweens.Add(tween.Repeat(
		func() *tween.Simple {
			return &tween.Simple{
				Duration: duration,
				Ease:     ease,
				Target:   tween.LerpFunc(start, end, v.OnTick),
			}
		},
		func(count int) {
			Logger().Debug("animation repeat", zap.Int("count", count))
		},
	))
}

// cancel stops a running sweep and reports whether one was running.
func (v *View) cancel() bool {
	if !v.running {
		return false
	}

	Logger().Debug("animation cancel")

	v.tweens.Clear()
	v.running = false

	return true
}
