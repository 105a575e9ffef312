package scene

import (
	"github.com/RobDavenport/easel"
)

// maxAutoTicks bounds Run for scenes that do not set ticks and never settle.
const maxAutoTicks = 1 << 16

// Sample is the state of one named animation after a frame.
type Sample struct {
	Name  string
	Kind  string
	Value float64
	State easel.State
	// Active is the number of active entries; timelines only.
	Active int
}

// Frame is the sampled state of every animation after one tick, in
// declaration order: tweens, springs, keyframes, then timelines.
type Frame struct {
	Index   uint32
	Samples []Sample
}

// Sample returns the sample named name.
func (f Frame) Sample(name string) (Sample, bool) {
	for _, s := range f.Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

type track struct {
	name string
	kind kind

	tween     *easel.Tween[float64, float64]
	spring    *easel.SpringTween[float64]
	springCfg SpringSpec
	keyframes *easel.Keyframes[float64, float64]
	timeline  *easel.Timeline[float64]
}

func (t *track) animation() easel.Animation {
	switch t.kind {
	case kindTween:
		return t.tween
	case kindKeyframes:
		return t.keyframes
	case kindTimeline:
		return t.timeline
	default:
		return nil
	}
}

func (t *track) tick() Sample {
	s := Sample{Name: t.name, Kind: t.kind.String()}
	switch t.kind {
	case kindTween:
		s.Value = t.tween.Tick()
		s.State = t.tween.State()
	case kindSpring:
		s.Value = t.spring.Tick()
		s.State = easel.Playing
		if t.spring.IsAtRest() {
			s.State = easel.Finished
		}
	case kindKeyframes:
		s.Value = t.keyframes.Tick()
		s.State = t.keyframes.State()
	case kindTimeline:
		s.Active = len(t.timeline.Tick())
		s.Value = t.timeline.Progress()
		s.State = t.timeline.State()
	}
	return s
}

// Runner plays a scene one frame at a time. Each frame it applies at most
// one script step and then ticks every animation once.
type Runner struct {
	tracks []*track
	byName map[string]*track

	steps     []Step
	cursor    int
	waitCount uint32
	frame     uint32
	ticks     uint32
}

// NewRunner builds the animations of sc. Observer events carry IDs assigned
// in declaration order; obs may be nil.
func NewRunner(sc *Scene, obs easel.Observer) *Runner {
	r := &Runner{
		byName: make(map[string]*track),
		steps:  sc.Steps,
		ticks:  sc.Ticks,
	}
	var id easel.TweenID
	add := func(t *track) {
		r.tracks = append(r.tracks, t)
		r.byName[t.name] = t
		id++
	}

	for _, spec := range sc.Tweens {
		add(&track{name: spec.Name, kind: kindTween, tween: easel.NewTween(spec.From, spec.To, spec.Duration, easel.TweenConfig{
			Easing:   mustEasing(spec.Easing),
			Loop:     mustLoop(spec.Loop),
			Delay:    spec.Delay,
			Observer: obs,
			ID:       id,
		})})
	}
	for _, spec := range sc.Springs {
		cfg, _ := spec.config()
		add(&track{name: spec.Name, kind: kindSpring, springCfg: spec, spring: easel.NewSpringTween(spec.From, spec.To, cfg)})
	}
	for _, spec := range sc.Keyframes {
		kf, err := easel.NewKeyframes(spec.keyframes(), easel.KeyframesConfig{
			Loop:     mustLoop(spec.Loop),
			Observer: obs,
			ID:       id,
		})
		if err != nil {
			// Validate rejects these; a hand-built Scene may still carry them.
			id++
			continue
		}
		add(&track{name: spec.Name, kind: kindKeyframes, keyframes: kf})
	}
	for _, spec := range sc.Timelines {
		tl := easel.NewTimeline[float64](easel.TimelineConfig{
			Loop:     mustLoop(spec.Loop),
			Observer: obs,
			ID:       id,
		})
		for _, e := range spec.Entries {
			tl.Add(e.Start, e.Duration)
		}
		add(&track{name: spec.Name, kind: kindTimeline, timeline: tl})
	}
	return r
}

// Frame returns the number of frames stepped so far.
func (r *Runner) Frame() uint32 { return r.frame }

// ScriptDone reports whether every script step has been applied and the
// last wait has elapsed.
func (r *Runner) ScriptDone() bool {
	return r.cursor >= len(r.steps) && r.waitCount == 0
}

// Settled reports whether every tween, keyframe track and timeline has
// finished and every spring is at rest.
func (r *Runner) Settled() bool {
	for _, t := range r.tracks {
		if t.kind == kindSpring {
			if !t.spring.IsAtRest() {
				return false
			}
			continue
		}
		if t.animation().State() != easel.Finished {
			return false
		}
	}
	return true
}

// Step advances the scene by one frame and returns its samples.
func (r *Runner) Step() Frame {
	r.applyStep()
	r.frame++
	f := Frame{Index: r.frame, Samples: make([]Sample, len(r.tracks))}
	for i, t := range r.tracks {
		f.Samples[i] = t.tick()
	}
	return f
}

// Run steps the scene for its configured number of ticks. A scene without
// ticks runs until the script is done and every animation has settled.
func (r *Runner) Run() []Frame {
	var frames []Frame
	if r.ticks > 0 {
		frames = make([]Frame, 0, r.ticks)
		for r.frame < r.ticks {
			frames = append(frames, r.Step())
		}
		return frames
	}
	for len(frames) < maxAutoTicks {
		frames = append(frames, r.Step())
		if r.ScriptDone() && r.Settled() {
			break
		}
	}
	return frames
}

func (r *Runner) applyStep() {
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == ActionWait {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return
	}

	t, ok := r.byName[st.Target]
	if !ok || !st.Action.accepts(t.kind) {
		return
	}
	switch st.Action {
	case ActionPause:
		t.animation().Pause()
	case ActionResume:
		t.animation().Resume()
	case ActionReset:
		if t.kind == kindSpring {
			t.spring.Reset(t.springCfg.From, t.springCfg.To)
			return
		}
		t.animation().Reset()
	case ActionRetarget:
		if t.kind == kindSpring {
			t.spring.SetTarget(st.Value)
			return
		}
		t.tween.SetTarget(st.Value)
	case ActionSeek:
		t.timeline.Seek(st.Tick)
	}
}
