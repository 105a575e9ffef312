package easel

// springStep is the fixed integration timestep. Spring constants are tuned
// for 60 steps per unit of time regardless of how often Tick is called.
const springStep = 1.0 / 60

// SpringConfig holds the physical constants of a damped spring.
type SpringConfig struct {
	Stiffness float64 // higher is snappier
	Damping   float64 // higher oscillates less
	Mass      float64 // higher has more inertia; values <= 0 are treated as 1
	// RestThreshold is the velocity and displacement magnitude under which
	// the spring snaps to its target.
	RestThreshold float64
}

// Spring presets.
var (
	SpringGentle   = SpringConfig{Stiffness: 120, Damping: 14, Mass: 1, RestThreshold: 0.01}
	SpringWobbly   = SpringConfig{Stiffness: 180, Damping: 12, Mass: 1, RestThreshold: 0.01}
	SpringStiff    = SpringConfig{Stiffness: 400, Damping: 28, Mass: 1, RestThreshold: 0.01}
	SpringSlow     = SpringConfig{Stiffness: 80, Damping: 20, Mass: 1, RestThreshold: 0.01}
	SpringMolasses = SpringConfig{Stiffness: 60, Damping: 30, Mass: 2, RestThreshold: 0.01}
)

var springPresets = map[string]SpringConfig{
	"gentle":   SpringGentle,
	"wobbly":   SpringWobbly,
	"stiff":    SpringStiff,
	"slow":     SpringSlow,
	"molasses": SpringMolasses,
}

// SpringPresetNames returns the preset names accepted by SpringPreset.
func SpringPresetNames() []string {
	return []string{"gentle", "wobbly", "stiff", "slow", "molasses"}
}

// SpringPreset looks up a preset by its lower-case name ("gentle", "wobbly",
// "stiff", "slow", "molasses").
func SpringPreset(name string) (SpringConfig, bool) {
	cfg, ok := springPresets[name]
	return cfg, ok
}

// SpringTween moves a scalar toward a retargetable target with damped
// harmonic motion. It never finishes; it comes to rest and wakes again on
// SetTarget.
type SpringTween[F Float] struct {
	value, velocity, target F

	stiffness, damping, mass, threshold F

	atRest bool
}

// NewSpringTween returns a spring at initial, moving toward target.
func NewSpringTween[F Float](initial, target F, cfg SpringConfig) *SpringTween[F] {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	return &SpringTween[F]{
		value:     initial,
		target:    target,
		stiffness: F(cfg.Stiffness),
		damping:   F(cfg.Damping),
		mass:      F(mass),
		threshold: F(cfg.RestThreshold),
	}
}

// Tick integrates one step and returns the new value. A resting spring
// returns its settled value unchanged.
func (s *SpringTween[F]) Tick() F {
	if s.atRest {
		return s.value
	}

	dt := F(springStep)
	force := -s.stiffness*(s.value-s.target) - s.damping*s.velocity
	s.velocity += force / s.mass * dt
	s.value += s.velocity * dt

	if abs(s.velocity) < s.threshold && abs(s.value-s.target) < s.threshold {
		s.value = s.target
		s.velocity = 0
		s.atRest = true
	}
	return s.value
}

// Value returns the current value.
func (s *SpringTween[F]) Value() F { return s.value }

// Velocity returns the current velocity in units per unit of time. Each
// tick advances the spring by springStep of that time.
func (s *SpringTween[F]) Velocity() F { return s.velocity }

// Target returns the value the spring is moving toward.
func (s *SpringTween[F]) Target() F { return s.target }

// IsAtRest reports whether the spring has settled on its target.
func (s *SpringTween[F]) IsAtRest() bool { return s.atRest }

// SetTarget retargets the spring and always wakes it, even when the target
// is unchanged.
func (s *SpringTween[F]) SetTarget(target F) {
	s.target = target
	s.atRest = false
}

// Reset places the spring at value with zero velocity, moving toward target.
func (s *SpringTween[F]) Reset(value, target F) {
	s.value = value
	s.velocity = 0
	s.target = target
	s.atRest = false
}
