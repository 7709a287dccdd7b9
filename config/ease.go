package config

import (
	"github.com/fogleman/ease"
)

// Eases maps interpolator names to easing curves. "accelerate" is the
// quadratic ease-in curve f(t) = t*t.
var Eases = map[string]func(float64) float64{
	"accelerate":           ease.InQuad,
	"decelerate":           ease.OutQuad,
	"accelerateDecelerate": ease.InOutSine,
	"linear":               ease.Linear,
	"inCubic":              ease.InCubic,
	"outCubic":             ease.OutCubic,
	"inOutCubic":           ease.InOutCubic,
	"bounce":               ease.OutBounce,
}
