package easel

// SequenceConfig configures a Sequence. The zero value plays the children
// once.
type SequenceConfig struct {
	// Loop applies to the whole sequence. Each restart resets every child and
	// plays forward from the first one.
	Loop     LoopMode
	Observer Observer
	ID       TweenID
}

// Sequence plays tweens one after another. Only the current child advances.
type Sequence[T any, F Float] struct {
	tweens  []*Tween[T, F]
	current int
	loop    LoopMode
	state   State
	loops   uint32
	started bool
	notify  notifier
}

// NewSequence returns a sequence over tweens, in order. A sequence with no
// children is Idle until Push is called.
func NewSequence[T any, F Float](cfg SequenceConfig, tweens ...*Tween[T, F]) *Sequence[T, F] {
	s := &Sequence[T, F]{
		loop:   cfg.Loop,
		state:  Idle,
		notify: notifier{obs: cfg.Observer, id: cfg.ID},
	}
	for _, tw := range tweens {
		s.Push(tw)
	}
	return s
}

// Push appends a child. The first push moves an idle sequence to Playing.
func (s *Sequence[T, F]) Push(tw *Tween[T, F]) {
	s.tweens = append(s.tweens, tw)
	if s.state == Idle {
		s.state = Playing
	}
}

// Len returns the number of children.
func (s *Sequence[T, F]) Len() int { return len(s.tweens) }

// Current returns the index of the child being played.
func (s *Sequence[T, F]) Current() int { return s.current }

// Tick advances the current child and returns its value. When that child
// finishes the sequence moves on to the next one, or applies its loop mode
// after the last one.
func (s *Sequence[T, F]) Tick() T {
	if s.state != Playing {
		return s.Value()
	}
	if !s.started {
		s.started = true
		s.notify.start()
	}

	child := s.tweens[s.current]
	value := child.Tick()
	if child.IsFinished() {
		if s.current+1 < len(s.tweens) {
			s.current++
		} else {
			s.completeIteration()
		}
	}
	return value
}

// Advance implements Animation.
func (s *Sequence[T, F]) Advance() { s.Tick() }

func (s *Sequence[T, F]) completeIteration() {
	step := s.loop.next(s.loops, Forward)
	s.loops = step.loops
	if step.finished {
		s.state = Finished
		s.notify.complete()
		return
	}
	s.restart()
	s.notify.loop(s.loops)
}

func (s *Sequence[T, F]) restart() {
	for _, tw := range s.tweens {
		tw.Reset()
	}
	s.current = 0
}

// Value returns the current child's value. An empty sequence returns the
// zero value of T.
func (s *Sequence[T, F]) Value() T {
	if len(s.tweens) == 0 {
		var zero T
		return zero
	}
	return s.tweens[s.current].Value()
}

// TotalDuration is the sum of every child's TotalDuration.
func (s *Sequence[T, F]) TotalDuration() uint32 {
	var total uint32
	for _, tw := range s.tweens {
		total = saturatingAdd(total, tw.TotalDuration())
	}
	return total
}

// Progress returns the fraction of total ticks played in the current
// iteration. Completed children count in full, the current child by the
// delay and iteration ticks it has consumed. An empty or zero-length sequence
// reports 1.
func (s *Sequence[T, F]) Progress() F {
	total := s.TotalDuration()
	if total == 0 {
		return 1
	}
	var played uint32
	for i, tw := range s.tweens {
		if i < s.current {
			played = saturatingAdd(played, tw.TotalDuration())
			continue
		}
		played = saturatingAdd(played, tw.played())
		break
	}
	return ratio[F](played, total)
}

// IsFinished reports whether the sequence has finished.
func (s *Sequence[T, F]) IsFinished() bool { return s.state == Finished }

// State returns the playback state.
func (s *Sequence[T, F]) State() State { return s.state }

// LoopsCompleted returns the number of whole-sequence iterations completed.
func (s *Sequence[T, F]) LoopsCompleted() uint32 { return s.loops }

// Reset rewinds every child and returns to the first one.
func (s *Sequence[T, F]) Reset() {
	s.restart()
	s.loops = 0
	s.started = false
	s.state = idleOrPlaying(len(s.tweens))
}

// Pause stops a playing sequence. It is a no-op in any other state.
func (s *Sequence[T, F]) Pause() {
	if s.state == Playing {
		s.state = Paused
		s.notify.pause()
	}
}

// Resume continues a paused sequence. It is a no-op in any other state.
func (s *Sequence[T, F]) Resume() {
	if s.state == Paused {
		s.state = Playing
		s.notify.resume()
	}
}
