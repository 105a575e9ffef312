package easel

import "math"

// EasingKind identifies one member of the closed easing set.
type EasingKind uint8

const (
	KindLinear EasingKind = iota
	KindEaseInQuad
	KindEaseOutQuad
	KindEaseInOutQuad
	KindEaseInCubic
	KindEaseOutCubic
	KindEaseInOutCubic
	KindEaseInQuart
	KindEaseOutQuart
	KindEaseInOutQuart
	KindEaseInQuint
	KindEaseOutQuint
	KindEaseInOutQuint
	KindEaseInSine
	KindEaseOutSine
	KindEaseInOutSine
	KindEaseInExpo
	KindEaseOutExpo
	KindEaseInOutExpo
	KindEaseInCirc
	KindEaseOutCirc
	KindEaseInOutCirc
	KindEaseInBack
	KindEaseOutBack
	KindEaseInOutBack
	KindEaseInElastic
	KindEaseOutElastic
	KindEaseInOutElastic
	KindEaseInBounce
	KindEaseOutBounce
	KindEaseInOutBounce
	KindCubicBezier

	numEasingKinds
)

// Easing is a stateless curve remapping linear progress. The zero value is
// Linear. X1..Y2 are the inner control points of a CubicBezier curve and are
// ignored by every other kind.
type Easing struct {
	Kind           EasingKind
	X1, Y1, X2, Y2 float64
}

// Named curves. Every one maps 0 to 0 and 1 to 1; back, elastic and bounce
// leave [0, 1] in between.
var (
	Linear           = Easing{Kind: KindLinear}
	EaseInQuad       = Easing{Kind: KindEaseInQuad}
	EaseOutQuad      = Easing{Kind: KindEaseOutQuad}
	EaseInOutQuad    = Easing{Kind: KindEaseInOutQuad}
	EaseInCubic      = Easing{Kind: KindEaseInCubic}
	EaseOutCubic     = Easing{Kind: KindEaseOutCubic}
	EaseInOutCubic   = Easing{Kind: KindEaseInOutCubic}
	EaseInQuart      = Easing{Kind: KindEaseInQuart}
	EaseOutQuart     = Easing{Kind: KindEaseOutQuart}
	EaseInOutQuart   = Easing{Kind: KindEaseInOutQuart}
	EaseInQuint      = Easing{Kind: KindEaseInQuint}
	EaseOutQuint     = Easing{Kind: KindEaseOutQuint}
	EaseInOutQuint   = Easing{Kind: KindEaseInOutQuint}
	EaseInSine       = Easing{Kind: KindEaseInSine}
	EaseOutSine      = Easing{Kind: KindEaseOutSine}
	EaseInOutSine    = Easing{Kind: KindEaseInOutSine}
	EaseInExpo       = Easing{Kind: KindEaseInExpo}
	EaseOutExpo      = Easing{Kind: KindEaseOutExpo}
	EaseInOutExpo    = Easing{Kind: KindEaseInOutExpo}
	EaseInCirc       = Easing{Kind: KindEaseInCirc}
	EaseOutCirc      = Easing{Kind: KindEaseOutCirc}
	EaseInOutCirc    = Easing{Kind: KindEaseInOutCirc}
	EaseInBack       = Easing{Kind: KindEaseInBack}
	EaseOutBack      = Easing{Kind: KindEaseOutBack}
	EaseInOutBack    = Easing{Kind: KindEaseInOutBack}
	EaseInElastic    = Easing{Kind: KindEaseInElastic}
	EaseOutElastic   = Easing{Kind: KindEaseOutElastic}
	EaseInOutElastic = Easing{Kind: KindEaseInOutElastic}
	EaseInBounce     = Easing{Kind: KindEaseInBounce}
	EaseOutBounce    = Easing{Kind: KindEaseOutBounce}
	EaseInOutBounce  = Easing{Kind: KindEaseInOutBounce}
)

// Bezier returns a cubic Bézier curve through (0,0), (x1,y1), (x2,y2), (1,1),
// CSS cubic-bezier() style.
func Bezier(x1, y1, x2, y2 float64) Easing {
	return Easing{Kind: KindCubicBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// At evaluates e in double precision.
func (e Easing) At(t float64) float64 {
	return Evaluate(e, t)
}

// Evaluate maps t through e. Named curves are only defined on [0, 1];
// CubicBezier clamps t to that range.
func Evaluate[F Float](e Easing, t F) F {
	switch e.Kind {
	case KindLinear:
		return t
	case KindEaseInQuad:
		return t * t
	case KindEaseOutQuad:
		u := 1 - t
		return 1 - u*u
	case KindEaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	case KindEaseInCubic:
		return t * t * t
	case KindEaseOutCubic:
		u := 1 - t
		return 1 - u*u*u
	case KindEaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	case KindEaseInQuart:
		return t * t * t * t
	case KindEaseOutQuart:
		u := 1 - t
		return 1 - u*u*u*u
	case KindEaseInOutQuart:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u*u/2
	case KindEaseInQuint:
		return t * t * t * t * t
	case KindEaseOutQuint:
		u := 1 - t
		return 1 - u*u*u*u*u
	case KindEaseInOutQuint:
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u*u*u/2
	case KindEaseInSine:
		return 1 - cos(t*math.Pi/2)
	case KindEaseOutSine:
		return sin(t * math.Pi / 2)
	case KindEaseInOutSine:
		return -(cos(math.Pi*t) - 1) / 2
	case KindEaseInExpo:
		if t == 0 {
			return 0
		}
		return pow[F](2, 10*t-10)
	case KindEaseOutExpo:
		if t == 1 {
			return 1
		}
		return 1 - pow[F](2, -10*t)
	case KindEaseInOutExpo:
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return pow[F](2, 20*t-10) / 2
		default:
			return (2 - pow[F](2, -20*t+10)) / 2
		}
	case KindEaseInCirc:
		return 1 - sqrt(1-t*t)
	case KindEaseOutCirc:
		u := t - 1
		return sqrt(1 - u*u)
	case KindEaseInOutCirc:
		if t < 0.5 {
			u := 2 * t
			return (1 - sqrt(1-u*u)) / 2
		}
		u := -2*t + 2
		return (sqrt(1-u*u) + 1) / 2
	case KindEaseInBack:
		const c1 = 1.70158
		const c3 = c1 + 1
		return c3*t*t*t - c1*t*t
	case KindEaseOutBack:
		const c1 = 1.70158
		const c3 = c1 + 1
		u := t - 1
		return 1 + c3*u*u*u + c1*u*u
	case KindEaseInOutBack:
		const c2 = 1.70158 * 1.525
		if t < 0.5 {
			u := 2 * t
			return u * u * ((c2+1)*u - c2) / 2
		}
		u := 2*t - 2
		return (u*u*((c2+1)*u+c2) + 2) / 2
	case KindEaseInElastic:
		if t == 0 || t == 1 {
			return t
		}
		c4 := F(2 * math.Pi / 3)
		return -pow[F](2, 10*t-10) * sin((10*t-10.75)*c4)
	case KindEaseOutElastic:
		if t == 0 || t == 1 {
			return t
		}
		c4 := F(2 * math.Pi / 3)
		return pow[F](2, -10*t)*sin((10*t-0.75)*c4) + 1
	case KindEaseInOutElastic:
		if t == 0 || t == 1 {
			return t
		}
		c5 := F(2 * math.Pi / 4.5)
		if t < 0.5 {
			return -(pow[F](2, 20*t-10) * sin((20*t-11.125)*c5)) / 2
		}
		return pow[F](2, -20*t+10)*sin((20*t-11.125)*c5)/2 + 1
	case KindEaseInBounce:
		return 1 - outBounce(1-t)
	case KindEaseOutBounce:
		return outBounce(t)
	case KindEaseInOutBounce:
		if t < 0.5 {
			return (1 - outBounce(1-2*t)) / 2
		}
		return (1 + outBounce(2*t-1)) / 2
	case KindCubicBezier:
		return CubicBezierAt(t, F(e.X1), F(e.Y1), F(e.X2), F(e.Y2))
	default:
		return t
	}
}

func outBounce[F Float](t F) F {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		u := t - 1.5/d1
		return n1*u*u + 0.75
	case t < 2.5/d1:
		u := t - 2.25/d1
		return n1*u*u + 0.9375
	default:
		u := t - 2.625/d1
		return n1*u*u + 0.984375
	}
}

// Solver limits for CubicBezierAt.
const (
	bezierNewtonIterations    = 8
	bezierBisectionIterations = 20
	bezierMinSlope            = 1e-7
	bezierMaxResidual         = 1e-5
)

// CubicBezierAt treats t as the x coordinate of the curve through (0,0),
// (x1,y1), (x2,y2), (1,1) and returns the matching y. The curve parameter is
// found with up to 8 Newton steps started at t; if the residual is still
// above 1e-5 the answer is refined by 20 rounds of bisection on [0, 1].
func CubicBezierAt[F Float](t, x1, y1, x2, y2 F) F {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	s := t
	for i := 0; i < bezierNewtonIterations; i++ {
		dx := bezierSlope(s, x1, x2)
		if abs(dx) < bezierMinSlope {
			break
		}
		s = Clamp(s-(bezierComponent(s, x1, x2)-t)/dx, 0, 1)
	}

	if abs(bezierComponent(s, x1, x2)-t) > bezierMaxResidual {
		var lo, hi F = 0, 1
		for i := 0; i < bezierBisectionIterations; i++ {
			s = (lo + hi) / 2
			if bezierComponent(s, x1, x2) < t {
				lo = s
			} else {
				hi = s
			}
		}
	}

	return bezierComponent(s, y1, y2)
}

// bezierComponent evaluates one axis of the curve with endpoints fixed at 0
// and 1.
func bezierComponent[F Float](s, p1, p2 F) F {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope[F Float](s, p1, p2 F) F {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}
