package easel

import "math"

// TimelineConfig configures a Timeline. The zero value plays once.
type TimelineConfig struct {
	// Loop applies to the shared tick counter. On backward ping-pong legs
	// entry windows are evaluated from the end of the timeline.
	Loop LoopMode
	// Observer receives OnStart and OnComplete with entry IDs as entries
	// enter and leave their windows, and OnLoop, OnPause and OnResume with ID.
	Observer Observer
	ID       TweenID
}

// TimelineEntry is a window of ticks on a timeline.
type TimelineEntry struct {
	ID       TweenID
	Start    uint32
	Duration uint32
}

// End returns the last tick of the window.
func (e TimelineEntry) End() uint32 { return saturatingAdd(e.Start, e.Duration) }

// progressAt returns the local progress at tick and whether the entry is
// active there. Windows are inclusive at both ends; a zero-length entry is
// active only on its start tick, with progress 1.
func progressAt[F Float](e TimelineEntry, tick uint32) (F, bool) {
	if e.Duration == 0 {
		return 1, tick == e.Start
	}
	if tick < e.Start || tick > e.End() {
		return 0, false
	}
	return ratio[F](tick-e.Start, e.Duration), true
}

// ActiveEntry pairs an active entry with its local progress in [0, 1].
type ActiveEntry[F Float] struct {
	ID       TweenID
	Progress F
}

type timelineSlot struct {
	TimelineEntry
	live bool
}

// Timeline schedules windows of ticks against one shared counter. It drives
// no values itself; callers map active entries to their own animations.
type Timeline[F Float] struct {
	entries []timelineSlot
	nextID  uint32
	total   uint32

	elapsed   uint32
	state     State
	loop      LoopMode
	loops     uint32
	direction Direction

	notify notifier
	buf    []ActiveEntry[F]
}

// NewTimeline returns an empty, playing timeline.
func NewTimeline[F Float](cfg TimelineConfig) *Timeline[F] {
	return &Timeline[F]{
		state:  Playing,
		loop:   cfg.Loop,
		notify: notifier{obs: cfg.Observer, id: cfg.ID},
	}
}

// Add schedules a window starting at start and lasting duration ticks. IDs
// increase monotonically from 0 and are never reused; once the ID space is
// exhausted the last ID is handed out again.
func (tl *Timeline[F]) Add(start, duration uint32) TweenID {
	id := TweenID(tl.nextID)
	if tl.nextID < math.MaxUint32 {
		tl.nextID++
	}
	entry := TimelineEntry{ID: id, Start: start, Duration: duration}
	tl.entries = append(tl.entries, timelineSlot{TimelineEntry: entry})
	tl.total = max(tl.total, entry.End())
	return id
}

// Tick advances the shared counter by one tick and returns the entries
// active at the new position. The returned slice is reused by the next call
// to Tick or Active.
func (tl *Timeline[F]) Tick() []ActiveEntry[F] {
	if tl.state != Playing {
		return tl.Active()
	}

	if tl.total == 0 {
		tl.state = Finished
		tl.buf = tl.buf[:0]
		return tl.buf
	}

	if tl.elapsed < tl.total {
		tl.elapsed++
	}

	active := tl.collect(tl.Cursor(), true)

	if tl.elapsed >= tl.total {
		step := tl.loop.next(tl.loops, tl.direction)
		tl.loops = step.loops
		tl.direction = step.direction
		if step.finished {
			tl.state = Finished
			tl.closeLive()
		} else {
			tl.elapsed = 0
			tl.notify.loop(tl.loops)
		}
	}

	return active
}

// Advance implements Animation.
func (tl *Timeline[F]) Advance() { tl.Tick() }

// Active returns the entries active at the current position without
// advancing. The returned slice is reused by the next call to Tick or
// Active.
func (tl *Timeline[F]) Active() []ActiveEntry[F] {
	return tl.collect(tl.Cursor(), false)
}

func (tl *Timeline[F]) collect(tick uint32, emit bool) []ActiveEntry[F] {
	tl.buf = tl.buf[:0]
	for i := range tl.entries {
		slot := &tl.entries[i]
		progress, ok := progressAt[F](slot.TimelineEntry, tick)
		if ok {
			tl.buf = append(tl.buf, ActiveEntry[F]{ID: slot.ID, Progress: progress})
		}
		if !emit || ok == slot.live {
			continue
		}
		slot.live = ok
		if ok {
			tl.notify.emitStart(slot.ID)
		} else {
			tl.notify.emitComplete(slot.ID)
		}
	}
	return tl.buf
}

// closeLive reports every still-active entry as complete.
func (tl *Timeline[F]) closeLive() {
	for i := range tl.entries {
		if tl.entries[i].live {
			tl.entries[i].live = false
			tl.notify.emitComplete(tl.entries[i].ID)
		}
	}
}

// Seek moves the counter to tick without running the loop policy. A
// finished timeline plays again if tick precedes the end. No observer events
// are raised; entry activity is reconciled on the next Tick.
func (tl *Timeline[F]) Seek(tick uint32) {
	tl.elapsed = tick
	if tl.elapsed < tl.total {
		tl.state = Playing
	}
}

// Cursor returns the tick entries are evaluated at: the elapsed count on
// forward legs, mirrored from the end on backward legs.
func (tl *Timeline[F]) Cursor() uint32 {
	if tl.direction == Backward {
		return tl.total - min(tl.elapsed, tl.total)
	}
	return tl.elapsed
}

// Elapsed returns the ticks played in the current iteration.
func (tl *Timeline[F]) Elapsed() uint32 { return tl.elapsed }

// TotalDuration is the latest end tick over all entries.
func (tl *Timeline[F]) TotalDuration() uint32 { return tl.total }

// Progress returns elapsed/TotalDuration in [0, 1]. An empty timeline
// reports 1.
func (tl *Timeline[F]) Progress() F { return ratio[F](tl.elapsed, tl.total) }

// Entry looks up an entry by ID.
func (tl *Timeline[F]) Entry(id TweenID) (TimelineEntry, bool) {
	for _, slot := range tl.entries {
		if slot.ID == id {
			return slot.TimelineEntry, true
		}
	}
	return TimelineEntry{}, false
}

// Entries returns a copy of every entry in insertion order.
func (tl *Timeline[F]) Entries() []TimelineEntry {
	out := make([]TimelineEntry, len(tl.entries))
	for i, slot := range tl.entries {
		out[i] = slot.TimelineEntry
	}
	return out
}

// Len returns the number of entries.
func (tl *Timeline[F]) Len() int { return len(tl.entries) }

// IsFinished reports whether every iteration has played.
func (tl *Timeline[F]) IsFinished() bool { return tl.state == Finished }

// State returns the playback state.
func (tl *Timeline[F]) State() State { return tl.state }

// Direction returns the direction of the current iteration.
func (tl *Timeline[F]) Direction() Direction { return tl.direction }

// LoopsCompleted returns the number of iteration boundaries crossed.
func (tl *Timeline[F]) LoopsCompleted() uint32 { return tl.loops }

// Reset rewinds to tick zero. Entries are kept.
func (tl *Timeline[F]) Reset() {
	tl.elapsed = 0
	tl.loops = 0
	tl.direction = Forward
	tl.state = Playing
	for i := range tl.entries {
		tl.entries[i].live = false
	}
}

// Pause stops a playing timeline. It is a no-op in any other state.
func (tl *Timeline[F]) Pause() {
	if tl.state == Playing {
		tl.state = Paused
		tl.notify.pause()
	}
}

// Resume continues a paused timeline. It is a no-op in any other state.
func (tl *Timeline[F]) Resume() {
	if tl.state == Paused {
		tl.state = Playing
		tl.notify.resume()
	}
}
