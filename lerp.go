package easel

import "math"

// Lerper is implemented by values that can blend toward another instance of
// themselves. t is a unit-interval factor, although overshooting easings may
// push it slightly outside [0, 1].
type Lerper[T any, F Float] interface {
	Lerp(to T, t F) T
}

// LerpFunc blends from toward to by t. Method expressions such as
// Vec2[float64].Lerp satisfy it.
type LerpFunc[T any, F Float] func(from, to T, t F) T

// Lerp linearly interpolates scalars.
func Lerp[F Float](from, to, t F) F {
	return from + (to-from)*t
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2[F Float] struct {
	X, Y F
}

// Lerp implements Lerper.
func (v Vec2[F]) Lerp(to Vec2[F], t F) Vec2[F] {
	return Vec2[F]{Lerp(v.X, to.X, t), Lerp(v.Y, to.Y, t)}
}

// Vec3 is a three-component tuple.
type Vec3[F Float] struct {
	X, Y, Z F
}

// Lerp implements Lerper.
func (v Vec3[F]) Lerp(to Vec3[F], t F) Vec3[F] {
	return Vec3[F]{Lerp(v.X, to.X, t), Lerp(v.Y, to.Y, t), Lerp(v.Z, to.Z, t)}
}

// Vec4 is a four-component tuple.
type Vec4[F Float] struct {
	X, Y, Z, W F
}

// Lerp implements Lerper.
func (v Vec4[F]) Lerp(to Vec4[F], t F) Vec4[F] {
	return Vec4[F]{Lerp(v.X, to.X, t), Lerp(v.Y, to.Y, t), Lerp(v.Z, to.Z, t), Lerp(v.W, to.W, t)}
}

// Values is a fixed-length array of scalars blended component-wise. When the
// lengths differ only the common prefix is blended; the remaining receiver
// elements are copied unchanged.
type Values[F Float] []F

// Lerp implements Lerper. It always returns a new slice.
func (v Values[F]) Lerp(to Values[F], t F) Values[F] {
	out := make(Values[F], len(v))
	copy(out, v)
	n := min(len(v), len(to))
	for i := 0; i < n; i++ {
		out[i] = Lerp(v[i], to[i], t)
	}
	return out
}

// Rgba is a straight-alpha color with components in [0, 1]. Interpolation
// happens in premultiplied space so fading toward transparent does not darken
// the color.
type Rgba[F Float] struct {
	R, G, B, A F
}

// Lerp implements Lerper.
func (c Rgba[F]) Lerp(to Rgba[F], t F) Rgba[F] {
	a := Lerp(c.A, to.A, t)
	if a <= 0 {
		return Rgba[F]{}
	}
	r := Lerp(c.R*c.A, to.R*to.A, t) / a
	g := Lerp(c.G*c.A, to.G*to.A, t) / a
	b := Lerp(c.B*c.A, to.B*to.A, t) / a
	return Rgba[F]{r, g, b, a}
}

// Angle is an angle in radians that interpolates along the shortest arc.
type Angle[F Float] struct {
	Radians F
}

// AngleFromDegrees converts degrees to an Angle.
func AngleFromDegrees[F Float](deg F) Angle[F] {
	return Angle[F]{Radians: deg * math.Pi / 180}
}

// Degrees returns the angle in degrees.
func (a Angle[F]) Degrees() F {
	return a.Radians * 180 / math.Pi
}

// Lerp implements Lerper. The difference between the two angles is wrapped
// into [-π, π] before blending; differences already inside that range are
// used as-is.
func (a Angle[F]) Lerp(to Angle[F], t F) Angle[F] {
	const pi, tau = math.Pi, 2 * math.Pi
	diff := to.Radians - a.Radians
	switch {
	case diff > pi:
		diff -= tau * ceil((diff-pi)/tau)
	case diff < -pi:
		diff -= tau * floor((diff+pi)/tau)
	}
	return Angle[F]{Radians: a.Radians + diff*t}
}
