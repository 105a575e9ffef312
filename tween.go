package easel

// TweenConfig configures a Tween. The zero value plays once, linearly, with
// no delay.
type TweenConfig struct {
	// Easing shapes progress within each iteration.
	Easing Easing
	// Loop decides what happens when an iteration ends.
	Loop LoopMode
	// Delay is the number of ticks consumed before the first iteration
	// starts. Loop restarts do not repeat the delay.
	Delay uint32
	// Observer, when non-nil, receives lifecycle events tagged with ID.
	Observer Observer
	ID       TweenID
}

// Tween interpolates a single value from one endpoint to another over a fixed
// number of ticks.
type Tween[T any, F Float] struct {
	from, to T
	lerp     LerpFunc[T, F]
	easing   Easing
	loop     LoopMode

	duration uint32
	elapsed  uint32

	delay          uint32
	delayRemaining uint32

	state     State
	loops     uint32
	direction Direction
	started   bool

	notify notifier
}

// NewTween creates a scalar tween from from to to over duration ticks. A
// duration of 0 snaps to the target on the first tick.
func NewTween[F Float](from, to F, duration uint32, cfg TweenConfig) *Tween[F, F] {
	return NewTweenFunc[F, F](from, to, duration, Lerp[F], cfg)
}

// NewTweenOf creates a tween over any value type with a Lerp method.
func NewTweenOf[T Lerper[T, F], F Float](from, to T, duration uint32, cfg TweenConfig) *Tween[T, F] {
	return NewTweenFunc[T, F](from, to, duration, func(a, b T, t F) T { return a.Lerp(b, t) }, cfg)
}

// NewTweenFunc creates a tween that blends values with lerp.
func NewTweenFunc[T any, F Float](from, to T, duration uint32, lerp LerpFunc[T, F], cfg TweenConfig) *Tween[T, F] {
	return &Tween[T, F]{
		from:           from,
		to:             to,
		lerp:           lerp,
		easing:         cfg.Easing,
		loop:           cfg.Loop,
		duration:       duration,
		delay:          cfg.Delay,
		delayRemaining: cfg.Delay,
		state:          Playing,
		notify:         notifier{obs: cfg.Observer, id: cfg.ID},
	}
}

// Tick advances the tween by one tick and returns the value for that tick.
// While a delay remains the from value is returned unchanged. Ticking a
// paused or finished tween returns the current value without side effects.
func (tw *Tween[T, F]) Tick() T {
	if tw.state != Playing {
		return tw.Value()
	}

	if tw.delayRemaining > 0 {
		tw.delayRemaining--
		return tw.from
	}

	if !tw.started {
		tw.started = true
		tw.notify.start()
	}

	if tw.duration == 0 {
		tw.state = Finished
		tw.notify.complete()
		return tw.endpoint()
	}

	if tw.elapsed < tw.duration {
		tw.elapsed++
	}

	value := tw.Value()

	if tw.elapsed >= tw.duration {
		tw.completeIteration()
	}

	return value
}

// Advance implements Animation.
func (tw *Tween[T, F]) Advance() { tw.Tick() }

// Value returns the current value without advancing.
func (tw *Tween[T, F]) Value() T {
	if tw.delayRemaining > 0 {
		return tw.from
	}
	if tw.duration == 0 {
		return tw.endpoint()
	}
	return tw.lerp(tw.from, tw.to, Evaluate(tw.easing, tw.Progress()))
}

// endpoint is the value a zero-length iteration snaps to.
func (tw *Tween[T, F]) endpoint() T {
	if tw.direction == Backward {
		return tw.from
	}
	return tw.to
}

// Progress returns the un-eased position within the current iteration in
// [0, 1], already inverted on backward legs.
func (tw *Tween[T, F]) Progress() F {
	if tw.delayRemaining > 0 {
		return 0
	}
	if tw.duration == 0 {
		return 1
	}
	p := ratio[F](tw.elapsed, tw.duration)
	if tw.direction == Backward {
		return 1 - p
	}
	return p
}

func (tw *Tween[T, F]) completeIteration() {
	step := tw.loop.next(tw.loops, tw.direction)
	tw.loops = step.loops
	tw.direction = step.direction
	if step.finished {
		tw.state = Finished
		tw.notify.complete()
		return
	}
	tw.elapsed = 0
	tw.notify.loop(tw.loops)
}

// IsFinished reports whether every iteration has played.
func (tw *Tween[T, F]) IsFinished() bool { return tw.state == Finished }

// State returns the playback state.
func (tw *Tween[T, F]) State() State { return tw.state }

// Direction returns the direction of the current iteration.
func (tw *Tween[T, F]) Direction() Direction { return tw.direction }

// LoopsCompleted returns the number of iteration boundaries crossed.
func (tw *Tween[T, F]) LoopsCompleted() uint32 { return tw.loops }

// Elapsed returns the ticks played in the current iteration.
func (tw *Tween[T, F]) Elapsed() uint32 { return tw.elapsed }

// Duration returns the ticks per iteration.
func (tw *Tween[T, F]) Duration() uint32 { return tw.duration }

// TotalDuration returns delay plus one iteration.
func (tw *Tween[T, F]) TotalDuration() uint32 {
	return saturatingAdd(tw.delay, tw.duration)
}

// played returns the delay and iteration ticks consumed so far, capped at
// TotalDuration.
func (tw *Tween[T, F]) played() uint32 {
	return min(saturatingAdd(tw.delay-tw.delayRemaining, tw.elapsed), tw.TotalDuration())
}

// From returns the start value.
func (tw *Tween[T, F]) From() T { return tw.from }

// To returns the target value.
func (tw *Tween[T, F]) To() T { return tw.to }

// Reset rewinds to the first tick of the first iteration, re-arming the delay.
func (tw *Tween[T, F]) Reset() {
	tw.elapsed = 0
	tw.delayRemaining = tw.delay
	tw.loops = 0
	tw.direction = Forward
	tw.state = Playing
	tw.started = false
}

// Pause stops a playing tween. It is a no-op in any other state.
func (tw *Tween[T, F]) Pause() {
	if tw.state == Playing {
		tw.state = Paused
		tw.notify.pause()
	}
}

// Resume continues a paused tween. It is a no-op in any other state.
func (tw *Tween[T, F]) Resume() {
	if tw.state == Paused {
		tw.state = Playing
		tw.notify.resume()
	}
}

// SetTarget replaces the target. Elapsed ticks and state are kept, so the
// next tick blends toward the new value from the current progress.
func (tw *Tween[T, F]) SetTarget(to T) {
	tw.to = to
}

// SetRange replaces both endpoints, keeping elapsed ticks and state.
func (tw *Tween[T, F]) SetRange(from, to T) {
	tw.from = from
	tw.to = to
}
