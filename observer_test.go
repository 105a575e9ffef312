package easel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func TestTweenObserverEvents(t *testing.T) {
	obs := &recorder{}
	tw := NewTween[float32](0, 1, 2, TweenConfig{Loop: LoopCount(2), Delay: 1, Observer: obs, ID: 7})

	tw.Tick() // delay
	if len(obs.events) != 0 {
		t.Errorf("events during delay: %v", obs.events)
	}
	tw.Tick()
	tw.Pause()
	tw.Pause()
	tw.Resume()
	for !tw.IsFinished() {
		tw.Tick()
	}
	want := []string{"start:7", "pause:7", "resume:7", "loop:7:1", "complete:7"}
	if diff := cmp.Diff(want, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestObserverRestartsAfterReset(t *testing.T) {
	obs := &recorder{}
	kf := MustKeyframes([]Keyframe[float32]{{Value: 0}, {Value: 1, Tick: 1}},
		KeyframesConfig{Observer: obs, ID: 2})
	kf.Tick()
	kf.Reset()
	kf.Tick()
	want := []string{"start:2", "complete:2", "start:2", "complete:2"}
	if diff := cmp.Diff(want, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroDurationObserver(t *testing.T) {
	obs := &recorder{}
	tw := NewTween[float32](0, 1, 0, TweenConfig{Observer: obs, ID: 1})
	tw.Tick()
	tw.Tick()
	if diff := cmp.Diff([]string{"start:1", "complete:1"}, obs.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLogObserver(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	tw := NewTween[float32](0, 1, 1, TweenConfig{Loop: LoopCount(3), Observer: obs, ID: 4})
	for !tw.IsFinished() {
		tw.Tick()
	}

	if got := logs.FilterField(zap.String("event", "loop")).Len(); got != 2 {
		t.Errorf("loop entries = %d, want 2", got)
	}
	if got := logs.FilterMessage("animation completed").Len(); got != 1 {
		t.Errorf("complete entries = %d, want 1", got)
	}
	for _, entry := range logs.All() {
		if entry.ContextMap()["id"] != uint32(4) {
			t.Errorf("entry %q has id %v, want 4", entry.Message, entry.ContextMap()["id"])
		}
	}
}

func TestNilLogObserverLogger(t *testing.T) {
	obs := NewLogObserver(nil)
	obs.OnStart(1)
	obs.OnLoop(1, 2)
}

func TestNopObserverSatisfiesObserver(t *testing.T) {
	var obs Observer = NopObserver{}
	tw := NewTween[float32](0, 1, 1, TweenConfig{Observer: obs})
	tw.Tick()
	if !tw.IsFinished() {
		t.Error("tween with NopObserver did not finish")
	}
}
