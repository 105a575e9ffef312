package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenFunc adapts e to gween's easing signature, where t is the elapsed
// time, b the start value, c the change and d the duration.
func (e Easing) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*Evaluate(e, Clamp(t/d, 0, 1))
	}
}

// Gween returns a time-based gween tween shaped by e, for callers that step
// with a frame delta in seconds instead of whole ticks.
func (e Easing) Gween(from, to, seconds float32) *gween.Tween {
	return gween.New(from, to, seconds, e.TweenFunc())
}
