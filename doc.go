// Package easel is a deterministic, tick-driven animation math engine.
//
// Easel moves values from A to B under programmer control. Nothing in the
// package reads a clock or schedules work: every state machine advances by
// exactly one discrete step per call, and the caller decides how often that
// happens (once per frame, once per simulation step, once per test
// iteration).
//
// # Quick start
//
// A [Tween] interpolates between two values over a number of ticks:
//
//	tw := easel.NewTween(0.0, 300.0, 60, easel.TweenConfig{
//		Easing: easel.EaseOutCubic,
//		Loop:   easel.LoopPingPong,
//	})
//	for {
//		x := tw.Tick()
//		// ... use x ...
//	}
//
// Any type with a Lerp method can be animated through [NewTweenOf]:
//
//	from := easel.Rgba[float32]{R: 1, A: 1}
//	to := easel.Rgba[float32]{B: 1, A: 1}
//	fade := easel.NewTweenOf[easel.Rgba[float32], float32](from, to, 30, easel.TweenConfig{})
//
// # State machines
//
// [Tween], [Keyframes], [Sequence], [Parallel], [Stagger] and [Timeline]
// share one loop table ([LoopMode]) deciding what happens at the end of each
// iteration: finish, restart, or restart in the opposite [Direction].
// [SpringTween] is the exception: it integrates a damped spring toward a
// retargetable goal and settles instead of finishing.
//
// # Easing
//
// [Easing] is a closed set of 30 named curves plus [Bezier] control points,
// evaluated by [Evaluate]. CSS presets ([Ease], [EaseIn], [EaseOut],
// [EaseInOutCSS], [Snap]) are built on the Bézier solver. [Easing.TweenFunc]
// adapts any curve to [gween] so it can drive gween tweens.
//
// # Concurrency
//
// No type in this package is safe for concurrent use. Each animation owns its
// fields exclusively; guard an instance externally if several goroutines must
// touch it.
//
// [gween]: https://github.com/tanema/gween
package easel
