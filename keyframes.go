package easel

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyKeyframes is returned when a keyframe list has no frames.
var ErrEmptyKeyframes = errors.New("easel: keyframes list is empty")

// KeyframeOrderError reports a frame whose tick precedes its predecessor's.
type KeyframeOrderError struct {
	Index    int
	Tick     uint32
	PrevTick uint32
}

func (e *KeyframeOrderError) Error() string {
	return fmt.Sprintf("easel: keyframe %d at tick %d precedes tick %d", e.Index, e.Tick, e.PrevTick)
}

// Keyframe anchors a value at an absolute tick. Easing shapes the segment
// from this frame to the next one; the last frame's easing is unused.
type Keyframe[T any] struct {
	Value  T
	Tick   uint32
	Easing Easing
}

// KeyframesConfig configures a Keyframes animation. The zero value plays
// once.
type KeyframesConfig struct {
	Loop     LoopMode
	Observer Observer
	ID       TweenID
}

// Keyframes interpolates piecewise through an ordered list of frames.
// Frames sharing a tick are allowed; at that tick the later frame wins.
type Keyframes[T any, F Float] struct {
	frames []Keyframe[T]
	lerp   LerpFunc[T, F]
	loop   LoopMode

	elapsed   uint32
	state     State
	loops     uint32
	direction Direction
	started   bool

	notify notifier
}

// NewKeyframes builds a scalar keyframe animation. It fails with
// ErrEmptyKeyframes or a *KeyframeOrderError.
func NewKeyframes[F Float](frames []Keyframe[F], cfg KeyframesConfig) (*Keyframes[F, F], error) {
	return NewKeyframesFunc[F, F](frames, Lerp[F], cfg)
}

// NewKeyframesOf builds a keyframe animation over a value type with a Lerp
// method.
func NewKeyframesOf[T Lerper[T, F], F Float](frames []Keyframe[T], cfg KeyframesConfig) (*Keyframes[T, F], error) {
	return NewKeyframesFunc[T, F](frames, func(a, b T, t F) T { return a.Lerp(b, t) }, cfg)
}

// NewKeyframesFunc builds a keyframe animation that blends with lerp. The
// frame slice is copied.
func NewKeyframesFunc[T any, F Float](frames []Keyframe[T], lerp LerpFunc[T, F], cfg KeyframesConfig) (*Keyframes[T, F], error) {
	if err := ValidateKeyframes(frames); err != nil {
		return nil, err
	}
	return &Keyframes[T, F]{
		frames: append([]Keyframe[T](nil), frames...),
		lerp:   lerp,
		loop:   cfg.Loop,
		state:  Playing,
		notify: notifier{obs: cfg.Observer, id: cfg.ID},
	}, nil
}

// MustKeyframes is like NewKeyframes but panics on invalid frames.
func MustKeyframes[F Float](frames []Keyframe[F], cfg KeyframesConfig) *Keyframes[F, F] {
	kf, err := NewKeyframes(frames, cfg)
	if err != nil {
		panic(err)
	}
	return kf
}

// ValidateKeyframes checks that frames is non-empty and in non-decreasing
// tick order.
func ValidateKeyframes[T any](frames []Keyframe[T]) error {
	if len(frames) == 0 {
		return ErrEmptyKeyframes
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Tick < frames[i-1].Tick {
			return &KeyframeOrderError{Index: i, Tick: frames[i].Tick, PrevTick: frames[i-1].Tick}
		}
	}
	return nil
}

// Tick advances by one tick and returns the interpolated value.
func (k *Keyframes[T, F]) Tick() T {
	if k.state != Playing {
		return k.Value()
	}
	if !k.started {
		k.started = true
		k.notify.start()
	}

	total := k.TotalDuration()
	if total > 0 && k.elapsed < total {
		k.elapsed++
	}

	value := k.Value()

	if k.elapsed >= total {
		step := k.loop.next(k.loops, k.direction)
		k.loops = step.loops
		k.direction = step.direction
		if step.finished {
			k.state = Finished
			k.notify.complete()
		} else {
			k.elapsed = 0
			k.notify.loop(k.loops)
		}
	}

	return value
}

// Advance implements Animation.
func (k *Keyframes[T, F]) Advance() { k.Tick() }

// Value returns the value at the current position without advancing.
func (k *Keyframes[T, F]) Value() T {
	return k.ValueAt(k.Cursor())
}

// Cursor returns the tick being evaluated: elapsed on forward legs, mirrored
// from the end on backward legs.
func (k *Keyframes[T, F]) Cursor() uint32 {
	if k.direction == Backward {
		return k.TotalDuration() - min(k.elapsed, k.TotalDuration())
	}
	return k.elapsed
}

// ValueAt evaluates the curve at an absolute tick.
func (k *Keyframes[T, F]) ValueAt(tick uint32) T {
	first := k.frames[0]
	if len(k.frames) == 1 || tick <= first.Tick {
		return first.Value
	}
	last := k.frames[len(k.frames)-1]
	if tick >= last.Tick {
		return last.Value
	}

	// First frame strictly after tick; its predecessor is the latest frame at
	// or before tick.
	next := sort.Search(len(k.frames), func(i int) bool { return k.frames[i].Tick > tick })
	a := k.frames[next-1]
	b := k.frames[next]
	span := b.Tick - a.Tick
	if span == 0 {
		return b.Value
	}
	t := Evaluate(a.Easing, ratio[F](tick-a.Tick, span))
	return k.lerp(a.Value, b.Value, t)
}

// TotalDuration is the tick of the last frame.
func (k *Keyframes[T, F]) TotalDuration() uint32 {
	return k.frames[len(k.frames)-1].Tick
}

// Progress returns elapsed/TotalDuration in [0, 1]. An animation with zero
// total duration reports 1.
func (k *Keyframes[T, F]) Progress() F {
	return ratio[F](k.elapsed, k.TotalDuration())
}

// Frames returns a copy of the frame list.
func (k *Keyframes[T, F]) Frames() []Keyframe[T] {
	return append([]Keyframe[T](nil), k.frames...)
}

// IsFinished reports whether every iteration has played.
func (k *Keyframes[T, F]) IsFinished() bool { return k.state == Finished }

// State returns the playback state.
func (k *Keyframes[T, F]) State() State { return k.state }

// Direction returns the direction of the current iteration.
func (k *Keyframes[T, F]) Direction() Direction { return k.direction }

// LoopsCompleted returns the number of iteration boundaries crossed.
func (k *Keyframes[T, F]) LoopsCompleted() uint32 { return k.loops }

// Reset rewinds to tick zero.
func (k *Keyframes[T, F]) Reset() {
	k.elapsed = 0
	k.loops = 0
	k.direction = Forward
	k.state = Playing
	k.started = false
}

// Pause stops a playing animation. It is a no-op in any other state.
func (k *Keyframes[T, F]) Pause() {
	if k.state == Playing {
		k.state = Paused
		k.notify.pause()
	}
}

// Resume continues a paused animation. It is a no-op in any other state.
func (k *Keyframes[T, F]) Resume() {
	if k.state == Paused {
		k.state = Playing
		k.notify.resume()
	}
}
