// Package tween drives time based animations. A tween is advanced by the
// host's frame clock and maps the elapsed time to an eased fraction.
package tween

import (
	"github.com/quasilyte/gmath"
	"slices"
	"time"
)

type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

// Clear drops all running tweens without advancing them.
func (t *Tweens) Clear() {
	t.tweens = nil
}

func (t *Tweens) Len() int {
	return len(t.tweens)
}

type Target func(f float64, elapsed, duration time.Duration)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f, t.elapsed, t.Duration)
	}

	// return if finished
	return t.elapsed >= t.Duration
}

// overshoot returns the time that passed beyond the end of the tween.
func (t *Simple) overshoot() time.Duration {
	return max(0, t.elapsed-t.Duration)
}

// Repeat runs a fresh Simple tween created by factory every time the previous
// one finishes. It never finishes on its own, unless factory returns a tween
// without duration. Time left over at the end of a pass is carried into the
// next one and complete passes within a single frame are skipped. onRepeat
// may be nil, it is called once per frame that restarted the pass and gets
// the number of completed passes.
func Repeat(factory func() *Simple, onRepeat func(count int)) Tween {
	return &repeat{factory: factory, onRepeat: onRepeat}
}

type repeat struct {
	factory  func() *Simple
	onRepeat func(count int)

	current *Simple
	count   int
}

func (r *repeat) Update(dt time.Duration) bool {
	if r.current == nil {
		r.current = r.factory()

		// a tween without duration would restart forever
		if r.current.Duration <= 0 {
			return true
		}
	}

	count := r.count

	for r.current.Update(dt) {
		dt = r.current.overshoot()

		r.count += 1
		r.current = r.factory()

		duration := r.current.Duration
		if duration <= 0 {
			r.notify(count)
			return true
		}

		// skip over complete passes of a long frame
		r.count += int(dt / duration)
		dt %= duration

		// restart at the beginning of the next pass
		if dt == 0 {
			r.current.Update(0)
			break
		}
	}

	r.notify(count)

	return false
}

func (r *repeat) notify(previous int) {
	if r.onRepeat != nil && r.count != previous {
		r.onRepeat(r.count)
	}
}

// LerpFunc passes the value between from and to for the current fraction to fn.
func LerpFunc(from, to float64, fn func(value float64)) Target {
	return func(f float64, _, _ time.Duration) {
		fn(gmath.Lerp(from, to, f))
	}
}
