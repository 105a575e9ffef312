package easel

// Parallel ticks every child on every tick and finishes once all of them
// have. The slice returned by Tick and Values is reused by the next call.
type Parallel[T any, F Float] struct {
	tweens []*Tween[T, F]
	state  State
	buf    []T
}

// NewParallel returns a parallel group over tweens.
func NewParallel[T any, F Float](tweens ...*Tween[T, F]) *Parallel[T, F] {
	p := &Parallel[T, F]{state: Idle}
	for _, tw := range tweens {
		p.Push(tw)
	}
	return p
}

// Push appends a child. The first push moves an idle group to Playing.
func (p *Parallel[T, F]) Push(tw *Tween[T, F]) {
	p.tweens = append(p.tweens, tw)
	if p.state == Idle {
		p.state = Playing
	}
}

// Len returns the number of children.
func (p *Parallel[T, F]) Len() int { return len(p.tweens) }

// Tick advances every child and returns their values in input order.
func (p *Parallel[T, F]) Tick() []T {
	if p.state != Playing {
		return p.Values()
	}
	p.buf = p.buf[:0]
	for _, tw := range p.tweens {
		p.buf = append(p.buf, tw.Tick())
	}
	if allFinished(p.tweens) {
		p.state = Finished
	}
	return p.buf
}

// Advance implements Animation.
func (p *Parallel[T, F]) Advance() { p.Tick() }

// Values returns every child's current value without advancing.
func (p *Parallel[T, F]) Values() []T {
	p.buf = p.buf[:0]
	for _, tw := range p.tweens {
		p.buf = append(p.buf, tw.Value())
	}
	return p.buf
}

// TotalDuration is the longest child's TotalDuration.
func (p *Parallel[T, F]) TotalDuration() uint32 {
	var total uint32
	for _, tw := range p.tweens {
		total = max(total, tw.TotalDuration())
	}
	return total
}

// IsFinished reports whether every child has finished.
func (p *Parallel[T, F]) IsFinished() bool { return p.state == Finished }

// State returns the playback state.
func (p *Parallel[T, F]) State() State { return p.state }

// Reset rewinds every child.
func (p *Parallel[T, F]) Reset() {
	for _, tw := range p.tweens {
		tw.Reset()
	}
	p.state = idleOrPlaying(len(p.tweens))
}

// Pause stops a playing group. It is a no-op in any other state.
func (p *Parallel[T, F]) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Resume continues a paused group. It is a no-op in any other state.
func (p *Parallel[T, F]) Resume() {
	if p.state == Paused {
		p.state = Playing
	}
}

// Stagger is a Parallel whose child i starts advancing once the group's own
// tick counter reaches i*offset. Until then the child reports its current,
// unticked value.
type Stagger[T any, F Float] struct {
	tweens  []*Tween[T, F]
	offset  uint32
	elapsed uint32
	state   State
	buf     []T
}

// NewStagger returns a staggered group over tweens.
func NewStagger[T any, F Float](offset uint32, tweens ...*Tween[T, F]) *Stagger[T, F] {
	s := &Stagger[T, F]{offset: offset, state: Idle}
	for _, tw := range tweens {
		s.Push(tw)
	}
	return s
}

// Push appends a child. The first push moves an idle group to Playing.
func (s *Stagger[T, F]) Push(tw *Tween[T, F]) {
	s.tweens = append(s.tweens, tw)
	if s.state == Idle {
		s.state = Playing
	}
}

// Len returns the number of children.
func (s *Stagger[T, F]) Len() int { return len(s.tweens) }

// Offset returns the start offset between consecutive children.
func (s *Stagger[T, F]) Offset() uint32 { return s.offset }

// Tick advances every child whose start tick has been reached and returns
// all values in input order.
func (s *Stagger[T, F]) Tick() []T {
	if s.state != Playing {
		return s.Values()
	}
	s.buf = s.buf[:0]
	for i, tw := range s.tweens {
		if s.elapsed >= s.startOf(i) {
			s.buf = append(s.buf, tw.Tick())
		} else {
			s.buf = append(s.buf, tw.Value())
		}
	}
	if allFinished(s.tweens) {
		s.state = Finished
	} else {
		s.elapsed = saturatingAdd(s.elapsed, 1)
	}
	return s.buf
}

// Advance implements Animation.
func (s *Stagger[T, F]) Advance() { s.Tick() }

func (s *Stagger[T, F]) startOf(i int) uint32 {
	return saturatingMul(uint32(i), s.offset)
}

// Values returns every child's current value without advancing.
func (s *Stagger[T, F]) Values() []T {
	s.buf = s.buf[:0]
	for _, tw := range s.tweens {
		s.buf = append(s.buf, tw.Value())
	}
	return s.buf
}

// TotalDuration is the latest end tick over all children.
func (s *Stagger[T, F]) TotalDuration() uint32 {
	var total uint32
	for i, tw := range s.tweens {
		total = max(total, saturatingAdd(s.startOf(i), tw.TotalDuration()))
	}
	return total
}

// IsFinished reports whether every child has finished.
func (s *Stagger[T, F]) IsFinished() bool { return s.state == Finished }

// State returns the playback state.
func (s *Stagger[T, F]) State() State { return s.state }

// Reset rewinds every child and the start counter.
func (s *Stagger[T, F]) Reset() {
	for _, tw := range s.tweens {
		tw.Reset()
	}
	s.elapsed = 0
	s.state = idleOrPlaying(len(s.tweens))
}

// Pause stops a playing group. It is a no-op in any other state.
func (s *Stagger[T, F]) Pause() {
	if s.state == Playing {
		s.state = Paused
	}
}

// Resume continues a paused group. It is a no-op in any other state.
func (s *Stagger[T, F]) Resume() {
	if s.state == Paused {
		s.state = Playing
	}
}

func allFinished[T any, F Float](tweens []*Tween[T, F]) bool {
	for _, tw := range tweens {
		if !tw.IsFinished() {
			return false
		}
	}
	return true
}

func idleOrPlaying(n int) State {
	if n == 0 {
		return Idle
	}
	return Playing
}
