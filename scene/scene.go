// Package scene loads declarative animation scenes from YAML and plays them
// back frame by frame with a scripted Runner.
//
// A scene names a set of scalar animations (tweens, springs, keyframe tracks
// and timelines) and an optional list of script steps that pause, resume,
// reset, retarget or seek them by name:
//
//	version: v1
//	ticks: 120
//	tweens:
//	  - name: fade
//	    to: 1
//	    duration: 60
//	    easing: ease-out-cubic
//	steps:
//	  - action: wait
//	    frames: 30
//	  - action: pause
//	    target: fade
package scene

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/RobDavenport/easel"
)

// Version is the only document version this package understands.
const Version = "v1"

// Scene is a validated scene document.
type Scene struct {
	Version   string          `yaml:"version"`
	Ticks     uint32          `yaml:"ticks,omitempty"`
	Tweens    []TweenSpec     `yaml:"tweens,omitempty"`
	Springs   []SpringSpec    `yaml:"springs,omitempty"`
	Keyframes []KeyframesSpec `yaml:"keyframes,omitempty"`
	Timelines []TimelineSpec  `yaml:"timelines,omitempty"`
	Steps     []Step          `yaml:"steps,omitempty"`
}

// TweenSpec declares a scalar tween.
type TweenSpec struct {
	Name     string  `yaml:"name"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration uint32  `yaml:"duration"`
	Delay    uint32  `yaml:"delay,omitempty"`
	Easing   string  `yaml:"easing,omitempty"`
	Loop     string  `yaml:"loop,omitempty"`
}

// SpringSpec declares a spring. Preset wins over the explicit constants when
// both are set; with neither the gentle preset is used.
type SpringSpec struct {
	Name          string  `yaml:"name"`
	From          float64 `yaml:"from"`
	To            float64 `yaml:"to"`
	Preset        string  `yaml:"preset,omitempty"`
	Stiffness     float64 `yaml:"stiffness,omitempty"`
	Damping       float64 `yaml:"damping,omitempty"`
	Mass          float64 `yaml:"mass,omitempty"`
	RestThreshold float64 `yaml:"restThreshold,omitempty"`
}

// KeyframesSpec declares a keyframe track.
type KeyframesSpec struct {
	Name   string      `yaml:"name"`
	Loop   string      `yaml:"loop,omitempty"`
	Frames []FrameSpec `yaml:"frames"`
}

// FrameSpec is one keyframe. Easing shapes the segment from this frame to
// the next; it is unused on the last frame.
type FrameSpec struct {
	Tick   uint32  `yaml:"tick"`
	Value  float64 `yaml:"value"`
	Easing string  `yaml:"easing,omitempty"`
}

// TimelineSpec declares a timeline and its entry windows.
type TimelineSpec struct {
	Name    string      `yaml:"name"`
	Loop    string      `yaml:"loop,omitempty"`
	Entries []EntrySpec `yaml:"entries"`
}

// EntrySpec is one timeline window.
type EntrySpec struct {
	Start    uint32 `yaml:"start"`
	Duration uint32 `yaml:"duration"`
}

// Action is a script step verb.
type Action string

const (
	ActionWait     Action = "wait"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionReset    Action = "reset"
	ActionRetarget Action = "retarget"
	ActionSeek     Action = "seek"
)

// Step is one script instruction. Frames is read by wait, Value by retarget
// and Tick by seek.
type Step struct {
	Action Action  `yaml:"action"`
	Target string  `yaml:"target,omitempty"`
	Frames uint32  `yaml:"frames,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Tick   uint32  `yaml:"tick,omitempty"`
}

type versionOnly struct {
	Version string `yaml:"version"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scene")
	}
	return Parse(data)
}

// Parse decodes a scene document and validates it. All validation problems
// are reported together; use multierr.Errors to list them.
func Parse(data []byte) (*Scene, error) {
	var v versionOnly
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal version")
	}

	switch v.Version {
	case Version:
	case "":
		return nil, errors.New("missing version")
	default:
		return nil, errors.Errorf("unknown version: %s", v.Version)
	}

	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal scene")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// kind is the animation family a name resolves to.
type kind uint8

const (
	kindTween kind = iota + 1
	kindSpring
	kindKeyframes
	kindTimeline
)

func (k kind) String() string {
	switch k {
	case kindTween:
		return "tween"
	case kindSpring:
		return "spring"
	case kindKeyframes:
		return "keyframes"
	case kindTimeline:
		return "timeline"
	default:
		return "unknown"
	}
}

// accepts reports whether a step action can target an animation of kind k.
func (a Action) accepts(k kind) bool {
	switch a {
	case ActionPause, ActionResume:
		return k != kindSpring
	case ActionReset:
		return true
	case ActionRetarget:
		return k == kindTween || k == kindSpring
	case ActionSeek:
		return k == kindTimeline
	default:
		return false
	}
}

// Validate checks the whole document and returns every problem found.
func (sc *Scene) Validate() error {
	var err error
	names := make(map[string]kind)

	addName := func(field, name string, k kind) {
		switch {
		case name == "":
			err = multierr.Append(err, errors.Errorf("%s: empty name", field))
		case names[name] != 0:
			err = multierr.Append(err, errors.Errorf("%s: duplicate name %q", field, name))
		default:
			names[name] = k
		}
	}

	for i, t := range sc.Tweens {
		field := fieldName("tweens", i)
		addName(field, t.Name, kindTween)
		err = multierr.Append(err, checkEasing(field, t.Easing))
		err = multierr.Append(err, checkLoop(field, t.Loop))
	}
	for i, s := range sc.Springs {
		field := fieldName("springs", i)
		addName(field, s.Name, kindSpring)
		if _, e := s.config(); e != nil {
			err = multierr.Append(err, errors.Wrap(e, field))
		}
	}
	for i, k := range sc.Keyframes {
		field := fieldName("keyframes", i)
		addName(field, k.Name, kindKeyframes)
		err = multierr.Append(err, checkLoop(field, k.Loop))
		for j, f := range k.Frames {
			err = multierr.Append(err, checkEasing(fieldName(field+".frames", j), f.Easing))
		}
		if e := easel.ValidateKeyframes(k.keyframes()); e != nil {
			err = multierr.Append(err, errors.Wrap(e, field))
		}
	}
	for i, tl := range sc.Timelines {
		field := fieldName("timelines", i)
		addName(field, tl.Name, kindTimeline)
		err = multierr.Append(err, checkLoop(field, tl.Loop))
	}

	for i, st := range sc.Steps {
		field := fieldName("steps", i)
		if st.Action == ActionWait {
			continue
		}
		if !st.Action.accepts(kindTween) && !st.Action.accepts(kindTimeline) {
			err = multierr.Append(err, errors.Errorf("%s: unknown action %q", field, st.Action))
			continue
		}
		k, ok := names[st.Target]
		if !ok {
			err = multierr.Append(err, errors.Errorf("%s: unknown target %q", field, st.Target))
			continue
		}
		if !st.Action.accepts(k) {
			err = multierr.Append(err, errors.Errorf("%s: cannot %s %s %q", field, st.Action, k, st.Target))
		}
	}

	return err
}

func fieldName(list string, i int) string {
	return list + "[" + strconv.Itoa(i) + "]"
}

// parseEasing reads an easing field; an omitted easing is linear.
func parseEasing(text string) (easel.Easing, error) {
	if text == "" {
		return easel.Linear, nil
	}
	return easel.ParseEasing(text)
}

func checkEasing(field, text string) error {
	if _, err := parseEasing(text); err != nil {
		return errors.Wrap(err, field)
	}
	return nil
}

// checkLoop parses text and rejects a zero count, which the engine would
// quietly treat as a single iteration.
func checkLoop(field, text string) error {
	m, err := easel.ParseLoopMode(text)
	if err != nil {
		return errors.Wrap(err, field)
	}
	if (m.Kind == easel.Count || m.Kind == easel.PingPongCount) && m.N == 0 {
		return errors.Errorf("%s: loop %q needs a count of at least 1", field, text)
	}
	return nil
}

func (s SpringSpec) config() (easel.SpringConfig, error) {
	if s.Preset != "" {
		cfg, ok := easel.SpringPreset(s.Preset)
		if !ok {
			return easel.SpringConfig{}, errors.Errorf("unknown spring preset %q", s.Preset)
		}
		return cfg, nil
	}
	if s.Stiffness == 0 && s.Damping == 0 {
		return easel.SpringGentle, nil
	}
	if s.Stiffness < 0 || s.Damping < 0 {
		return easel.SpringConfig{}, errors.New("stiffness and damping must not be negative")
	}
	cfg := easel.SpringConfig{
		Stiffness:     s.Stiffness,
		Damping:       s.Damping,
		Mass:          s.Mass,
		RestThreshold: s.RestThreshold,
	}
	if cfg.RestThreshold == 0 {
		cfg.RestThreshold = easel.SpringGentle.RestThreshold
	}
	return cfg, nil
}

// keyframes converts the frame specs. Easing text must already be valid.
func (k KeyframesSpec) keyframes() []easel.Keyframe[float64] {
	frames := make([]easel.Keyframe[float64], len(k.Frames))
	for i, f := range k.Frames {
		e, _ := parseEasing(f.Easing)
		frames[i] = easel.Keyframe[float64]{Value: f.Value, Tick: f.Tick, Easing: e}
	}
	return frames
}

func mustEasing(text string) easel.Easing {
	e, _ := parseEasing(text)
	return e
}

func mustLoop(text string) easel.LoopMode {
	m, _ := easel.ParseLoopMode(text)
	return m
}
