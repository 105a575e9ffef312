package easel

import "math"

// Float is the numeric backend every component is generic over. Both
// single and double precision are supported; arithmetic and comparison are
// native, the transcendental helpers below route through package math.
type Float interface {
	~float32 | ~float64
}

func sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

func sin[F Float](x F) F { return F(math.Sin(float64(x))) }

func cos[F Float](x F) F { return F(math.Cos(float64(x))) }

func pow[F Float](x, y F) F { return F(math.Pow(float64(x), float64(y))) }

func floor[F Float](x F) F { return F(math.Floor(float64(x))) }

func ceil[F Float](x F) F { return F(math.Ceil(float64(x))) }

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts v to [lo, hi].
func Clamp[F Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remap01 returns where v lies between lo and hi as a fraction. The result is
// not clamped.
func Remap01[F Float](v, lo, hi F) F {
	return (v - lo) / (hi - lo)
}

// ratio returns num/den as F clamped to [0, 1]. A zero denominator yields 1.
func ratio[F Float](num, den uint32) F {
	if den == 0 {
		return 1
	}
	return Clamp(F(num)/F(den), 0, 1)
}

func saturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func saturatingMul(a, b uint32) uint32 {
	if a != 0 && b > math.MaxUint32/a {
		return math.MaxUint32
	}
	return a * b
}
