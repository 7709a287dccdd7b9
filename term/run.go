package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/spark/config"
	"github.com/oliverbestmann/spark/driver"
	"github.com/oliverbestmann/spark/view"
)

// Run animates the spark on an initialized screen until the context
// is done or q, Escape or Ctrl-C is pressed. Space toggles the animation.
// The caller owns the screen and must finalize it.
func Run(ctx context.Context, screen tcell.Screen, cfg config.Config, interval time.Duration) error {
	renderer := &Renderer{Screen: screen}

	var dirty bool
	v, err := view.New(cfg, view.RedrawFunc(func() { dirty = true }))
	if err != nil {
		return err
	}

	v.OnSurfaceSize(renderer.Size())
	v.Start()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)

	// PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return driver.Run(ctx, interval, func(dt time.Duration) error {
	drain:
		for {
			select {
			case ev := <-events:
				if quit := handleTerminalEvent(screen, renderer, v, ev); quit {
					return driver.ErrStop
				}

			default:
				break drain
			}
		}

		v.Update(dt)

		if dirty {
			renderer.Draw(v.Snapshot())
			dirty = false
		}

		return nil
	})
}

func handleTerminalEvent(screen tcell.Screen, renderer *Renderer, v *view.View, ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true

		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true

		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if v.Running() {
				v.Stop()
			} else {
				v.Start()
			}
		}

	case *tcell.EventResize:
		screen.Sync()
		v.OnSurfaceSize(renderer.Size())
	}

	return false
}
