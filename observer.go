package easel

import "go.uber.org/zap"

// TweenID is an opaque handle. Timeline assigns one per entry; Tween,
// Keyframes, Sequence and Timeline itself carry the ID set in their config so
// observers can tell them apart. IDs are not unique across timelines.
type TweenID uint32

// Observer receives lifecycle events. Callbacks run synchronously inside
// Tick, Pause and Resume and must not call back into the animation that
// raised them.
type Observer interface {
	OnStart(id TweenID)
	OnComplete(id TweenID)
	OnLoop(id TweenID, loops uint32)
	OnPause(id TweenID)
	OnResume(id TweenID)
}

// NopObserver ignores every event. Embed it to implement only some callbacks.
type NopObserver struct{}

func (NopObserver) OnStart(TweenID) {}
func (NopObserver) OnComplete(TweenID) {}
func (NopObserver) OnLoop(TweenID, uint32) {}
func (NopObserver) OnPause(TweenID) {}
func (NopObserver) OnResume(TweenID) {}

// LogObserver writes every event to a zap logger at debug level.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver returns an observer logging to logger. A nil logger is
// replaced by a no-op logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnStart(id TweenID) {
	o.logger.Debug("animation started", zap.String("event", "start"), zap.Uint32("id", uint32(id)))
}

func (o *LogObserver) OnComplete(id TweenID) {
	o.logger.Debug("animation completed", zap.String("event", "complete"), zap.Uint32("id", uint32(id)))
}

func (o *LogObserver) OnLoop(id TweenID, loops uint32) {
	o.logger.Debug("animation looped",
		zap.String("event", "loop"), zap.Uint32("id", uint32(id)), zap.Uint32("loops", loops))
}

func (o *LogObserver) OnPause(id TweenID) {
	o.logger.Debug("animation paused", zap.String("event", "pause"), zap.Uint32("id", uint32(id)))
}

func (o *LogObserver) OnResume(id TweenID) {
	o.logger.Debug("animation resumed", zap.String("event", "resume"), zap.Uint32("id", uint32(id)))
}

// notifier wraps an optional observer so owners can emit without nil checks.
type notifier struct {
	obs Observer
	id  TweenID
}

func (n notifier) start() {
	n.emitStart(n.id)
}

func (n notifier) complete() {
	n.emitComplete(n.id)
}

func (n notifier) emitStart(id TweenID) {
	if n.obs != nil {
		n.obs.OnStart(id)
	}
}

func (n notifier) emitComplete(id TweenID) {
	if n.obs != nil {
		n.obs.OnComplete(id)
	}
}

func (n notifier) loop(loops uint32) {
	if n.obs != nil {
		n.obs.OnLoop(n.id, loops)
	}
}

func (n notifier) pause() {
	if n.obs != nil {
		n.obs.OnPause(n.id)
	}
}

func (n notifier) resume() {
	if n.obs != nil {
		n.obs.OnResume(n.id)
	}
}
