package easel

// Animation is the playback surface shared by Tween, Keyframes, Sequence,
// Parallel, Stagger and Timeline. Advance is Tick with the result dropped.
type Animation interface {
	Advance()
	Pause()
	Resume()
	Reset()
	State() State
}

var (
	_ Animation = (*Tween[float32, float32])(nil)
	_ Animation = (*Keyframes[float32, float32])(nil)
	_ Animation = (*Sequence[float32, float32])(nil)
	_ Animation = (*Parallel[float32, float32])(nil)
	_ Animation = (*Stagger[float32, float32])(nil)
	_ Animation = (*Timeline[float32])(nil)
)

// TweenGroup animates up to 4 fields simultaneously. Create one via the
// convenience constructors (TweenField, TweenVec2, TweenVec3, TweenRgba) and
// call Update once per tick. The group writes values straight into the bound
// fields.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup[F Float] struct {
	tweens [4]*Tween[F, F]
	count  int
	fields [4]*F
	Done   bool
}

// Update advances all tweens by one tick and writes the values to the bound
// fields. Once every tween has finished Done is set and further calls are
// no-ops.
func (g *TweenGroup[F]) Update() {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.tweens[i].Tick()
		if !g.tweens[i].IsFinished() {
			allDone = false
		}
	}
	g.Done = allDone
}

// Pause pauses every tween in the group.
func (g *TweenGroup[F]) Pause() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Pause()
	}
}

// Resume resumes every tween in the group.
func (g *TweenGroup[F]) Resume() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Resume()
	}
}

func (g *TweenGroup[F]) bind(field *F, to F, duration uint32, cfg TweenConfig) {
	g.tweens[g.count] = NewTween(*field, to, duration, cfg)
	g.fields[g.count] = field
	g.count++
}

// TweenField creates a TweenGroup that animates a single field to to.
func TweenField[F Float](field *F, to F, duration uint32, cfg TweenConfig) *TweenGroup[F] {
	g := &TweenGroup[F]{}
	g.bind(field, to, duration, cfg)
	return g
}

// TweenVec2 creates a TweenGroup that animates v.X and v.Y.
func TweenVec2[F Float](v *Vec2[F], to Vec2[F], duration uint32, cfg TweenConfig) *TweenGroup[F] {
	g := &TweenGroup[F]{}
	g.bind(&v.X, to.X, duration, cfg)
	g.bind(&v.Y, to.Y, duration, cfg)
	return g
}

// TweenVec3 creates a TweenGroup that animates v.X, v.Y and v.Z.
func TweenVec3[F Float](v *Vec3[F], to Vec3[F], duration uint32, cfg TweenConfig) *TweenGroup[F] {
	g := &TweenGroup[F]{}
	g.bind(&v.X, to.X, duration, cfg)
	g.bind(&v.Y, to.Y, duration, cfg)
	g.bind(&v.Z, to.Z, duration, cfg)
	return g
}

// TweenRgba creates a TweenGroup that animates all four components of c
// independently. Unlike Rgba.Lerp the channels are not premultiplied.
func TweenRgba[F Float](c *Rgba[F], to Rgba[F], duration uint32, cfg TweenConfig) *TweenGroup[F] {
	g := &TweenGroup[F]{}
	g.bind(&c.R, to.R, duration, cfg)
	g.bind(&c.G, to.G, duration, cfg)
	g.bind(&c.B, to.B, duration, cfg)
	g.bind(&c.A, to.A, duration, cfg)
	return g
}
