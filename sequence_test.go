package easel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequencePlaysInOrder(t *testing.T) {
	seq := NewSequence(SequenceConfig{},
		NewTween[float32](0, 10, 2, TweenConfig{}),
		NewTween[float32](10, 20, 2, TweenConfig{}),
	)
	want := []float32{5, 10, 15, 20}
	for i, w := range want {
		if v := seq.Tick(); v != w {
			t.Errorf("tick %d = %f, want %f", i+1, v, w)
		}
	}
	if !seq.IsFinished() {
		t.Fatal("sequence not finished")
	}
	if v := seq.Tick(); v != 20 {
		t.Errorf("tick after finish = %f, want 20", v)
	}
}

func TestSequenceAdvancesOnlyCurrentChild(t *testing.T) {
	first := NewTween[float32](0, 1, 3, TweenConfig{})
	second := NewTween[float32](0, 1, 3, TweenConfig{})
	seq := NewSequence(SequenceConfig{}, first, second)
	seq.Tick()
	seq.Tick()
	if second.Elapsed() != 0 {
		t.Errorf("second child advanced early: elapsed %d", second.Elapsed())
	}
	seq.Tick()
	if seq.Current() != 1 {
		t.Errorf("Current = %d, want 1 after first child finished", seq.Current())
	}
}

func TestSequenceProgress(t *testing.T) {
	seq := NewSequence(SequenceConfig{},
		NewTween[float64](0, 1, 2, TweenConfig{Delay: 2}),
		NewTween[float64](0, 1, 4, TweenConfig{Easing: EaseInQuad}),
	)
	if got := seq.TotalDuration(); got != 8 {
		t.Fatalf("TotalDuration = %d, want 8", got)
	}
	want := []float64{0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}
	for i, w := range want {
		seq.Tick()
		if p := seq.Progress(); !approxEqual(p, w, epsilon) {
			t.Errorf("Progress after %d ticks = %f, want %f", i+1, p, w)
		}
	}
}

func TestSequenceLoop(t *testing.T) {
	obs := &recorder{}
	seq := NewSequence(SequenceConfig{Loop: LoopCount(2), Observer: obs, ID: 3},
		NewTween[float32](0, 1, 1, TweenConfig{}),
		NewTween[float32](1, 2, 1, TweenConfig{}),
	)
	got := make([]float32, 0, 4)
	for i := 0; i < 4; i++ {
		got = append(got, seq.Tick())
	}
	if diff := cmp.Diff([]float32{1, 2, 1, 2}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !seq.IsFinished() || seq.LoopsCompleted() != 2 {
		t.Errorf("finished=%v loops=%d, want true 2", seq.IsFinished(), seq.LoopsCompleted())
	}
	if diff := cmp.Diff([]string{"start:3", "loop:3:1", "complete:3"}, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceEmpty(t *testing.T) {
	seq := NewSequence[float32, float32](SequenceConfig{})
	if seq.State() != Idle {
		t.Fatalf("State = %s, want idle", seq.State())
	}
	if v := seq.Tick(); v != 0 {
		t.Errorf("empty Tick = %f, want 0", v)
	}
	if seq.State() != Idle {
		t.Errorf("State after Tick = %s, want idle", seq.State())
	}
	if p := seq.Progress(); p != 1 {
		t.Errorf("empty Progress = %f, want 1", p)
	}
	seq.Push(NewTween[float32](0, 1, 1, TweenConfig{}))
	if seq.State() != Playing {
		t.Errorf("State after Push = %s, want playing", seq.State())
	}
}

func TestSequencePauseAndReset(t *testing.T) {
	seq := NewSequence(SequenceConfig{},
		NewTween[float32](0, 1, 2, TweenConfig{}),
		NewTween[float32](1, 0, 2, TweenConfig{}),
	)
	seq.Tick()
	seq.Pause()
	if v := seq.Tick(); v != 0.5 {
		t.Errorf("paused tick = %f, want 0.5", v)
	}
	seq.Resume()
	for !seq.IsFinished() {
		seq.Tick()
	}
	seq.Reset()
	if seq.Current() != 0 || seq.State() != Playing {
		t.Errorf("after Reset: current %d state %s", seq.Current(), seq.State())
	}
	if v := seq.Value(); v != 0 {
		t.Errorf("Value after Reset = %f, want 0", v)
	}
}

func TestParallelFinishesWithLongest(t *testing.T) {
	p := NewParallel(
		NewTween[float32](0, 1, 2, TweenConfig{}),
		NewTween[float32](0, 1, 4, TweenConfig{}),
	)
	if got := p.TotalDuration(); got != 4 {
		t.Errorf("TotalDuration = %d, want 4", got)
	}
	var last []float32
	for i := 0; i < 3; i++ {
		last = p.Tick()
		if p.IsFinished() {
			t.Fatalf("finished after %d ticks", i+1)
		}
	}
	if diff := cmp.Diff([]float32{1, 0.75}, last); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	last = p.Tick()
	if !p.IsFinished() {
		t.Error("not finished after longest child")
	}
	if diff := cmp.Diff([]float32{1, 1}, last); diff != "" {
		t.Errorf("final values mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelEmptyAndPause(t *testing.T) {
	p := NewParallel[float32, float32]()
	if p.State() != Idle || len(p.Tick()) != 0 {
		t.Errorf("empty parallel: state %s", p.State())
	}
	p.Push(NewTween[float32](0, 1, 4, TweenConfig{}))
	p.Tick()
	p.Pause()
	if v := p.Tick(); v[0] != 0.25 {
		t.Errorf("paused tick = %f, want 0.25", v[0])
	}
	p.Resume()
	p.Reset()
	if v := p.Values(); v[0] != 0 {
		t.Errorf("Values after Reset = %f, want 0", v[0])
	}
}

func TestParallelTickZeroAlloc(t *testing.T) {
	p := NewParallel(
		NewTween[float32](0, 1, 100, TweenConfig{Loop: LoopInfinite}),
		NewTween[float32](0, 1, 50, TweenConfig{Loop: LoopInfinite}),
	)
	p.Tick()
	allocs := testing.AllocsPerRun(100, func() {
		p.Tick()
	})
	if allocs > 0 {
		t.Errorf("Parallel.Tick allocates %.1f times per run, want 0", allocs)
	}
}

func TestStaggerOffsets(t *testing.T) {
	s := NewStagger(2,
		NewTween[float32](0, 1, 4, TweenConfig{}),
		NewTween[float32](0, 1, 4, TweenConfig{}),
	)
	tick1 := append([]float32(nil), s.Tick()...)
	s.Tick()
	tick3 := append([]float32(nil), s.Tick()...)

	if tick1[0] <= 0 {
		t.Errorf("tick 1 child 0 = %f, want > 0", tick1[0])
	}
	if tick1[1] != 0 {
		t.Errorf("tick 1 child 1 = %f, want 0", tick1[1])
	}
	if tick3[1] <= 0 {
		t.Errorf("tick 3 child 1 = %f, want > 0", tick3[1])
	}

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if !s.IsFinished() {
		t.Error("stagger not finished after last child's duration")
	}
}

func TestStaggerTotalDuration(t *testing.T) {
	s := NewStagger(3,
		NewTween[float32](0, 1, 4, TweenConfig{}),
		NewTween[float32](0, 1, 4, TweenConfig{}),
	)
	if got := s.TotalDuration(); got != 7 {
		t.Errorf("TotalDuration = %d, want 7", got)
	}
	if s.Offset() != 3 || s.Len() != 2 {
		t.Errorf("Offset/Len = %d/%d", s.Offset(), s.Len())
	}
}

func TestStaggerReset(t *testing.T) {
	s := NewStagger(1,
		NewTween[float32](0, 1, 2, TweenConfig{}),
		NewTween[float32](0, 1, 2, TweenConfig{}),
	)
	for !s.IsFinished() {
		s.Tick()
	}
	s.Reset()
	v := s.Tick()
	if v[0] != 0.5 || v[1] != 0 {
		t.Errorf("first tick after Reset = %v, want [0.5 0]", v)
	}
}
