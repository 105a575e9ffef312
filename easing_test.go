package easel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNamedEasingsEndpoints(t *testing.T) {
	curves := NamedEasings()
	if len(curves) != 31 {
		t.Fatalf("NamedEasings() len = %d, want 31", len(curves))
	}
	for _, e := range curves {
		if v := Evaluate(e, float32(0)); !approx32(v, 0) {
			t.Errorf("%s(0) = %f, want 0", e, v)
		}
		if v := Evaluate(e, float32(1)); !approx32(v, 1) {
			t.Errorf("%s(1) = %f, want 1", e, v)
		}
		if v := e.At(1); !approxEqual(v, 1, 1e-9) {
			t.Errorf("%s.At(1) = %f, want 1", e, v)
		}
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		if v := Evaluate(Linear, x); v != x {
			t.Errorf("Linear(%f) = %f, want %f", x, v, x)
		}
	}
}

func TestZeroEasingIsLinear(t *testing.T) {
	var e Easing
	if e != Linear {
		t.Errorf("zero Easing = %v, want linear", e)
	}
}

func TestDegenerateBezierIsLinear(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		if v := CubicBezierAt(x, 0, 0, 1, 1); !approx32(v, x) {
			t.Errorf("CubicBezierAt(%f, 0,0,1,1) = %f, want %f", x, v, x)
		}
	}
}

func TestBezierClampsInput(t *testing.T) {
	if v := Ease.At(-0.5); v != 0 {
		t.Errorf("Ease.At(-0.5) = %f, want 0", v)
	}
	if v := Ease.At(1.5); v != 1 {
		t.Errorf("Ease.At(1.5) = %f, want 1", v)
	}
}

func TestCSSEaseMidpoint(t *testing.T) {
	v := Evaluate(Ease, float32(0.5))
	if v <= 0.75 || v >= 0.9 {
		t.Errorf("Ease(0.5) = %f, want in (0.75, 0.9)", v)
	}
}

func TestBezierSolverSteepCurve(t *testing.T) {
	// Snap has near-vertical tangents at both ends, which exercises the
	// bisection fallback.
	v := Snap.At(0.1)
	if v < 0.5 || v > 1 {
		t.Errorf("Snap.At(0.1) = %f, want in [0.5, 1]", v)
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		cur := Snap.At(float64(i) / 20)
		if cur < prev-1e-6 {
			t.Errorf("Snap not monotonic at %d: %f < %f", i, cur, prev)
		}
		prev = cur
	}
}

func TestElasticOvershoots(t *testing.T) {
	overshoot := false
	for i := 1; i < 100; i++ {
		if EaseOutElastic.At(float64(i)/100) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("EaseOutElastic never exceeds 1")
	}
}

func TestBackDipsBelowZero(t *testing.T) {
	if v := EaseInBack.At(0.3); v >= 0 {
		t.Errorf("EaseInBack(0.3) = %f, want < 0", v)
	}
}

func TestBounceStaysNonNegative(t *testing.T) {
	for _, e := range []Easing{EaseInBounce, EaseOutBounce, EaseInOutBounce} {
		for i := 0; i <= 100; i++ {
			if v := e.At(float64(i) / 100); v < -1e-9 {
				t.Errorf("%s(%f) = %f, want >= 0", e, float64(i)/100, v)
			}
		}
	}
}

func TestInOutSymmetry(t *testing.T) {
	for _, e := range []Easing{EaseInOutQuad, EaseInOutCubic, EaseInOutSine, EaseInOutCirc} {
		if v := e.At(0.5); !approxEqual(v, 0.5, 1e-9) {
			t.Errorf("%s(0.5) = %f, want 0.5", e, v)
		}
	}
}

func TestEasingMatchesGween(t *testing.T) {
	cases := []struct {
		e  Easing
		fn ease.TweenFunc
	}{
		{Linear, ease.Linear},
		{EaseInQuad, ease.InQuad},
		{EaseOutQuad, ease.OutQuad},
		{EaseInOutQuad, ease.InOutQuad},
		{EaseInCubic, ease.InCubic},
		{EaseOutCubic, ease.OutCubic},
		{EaseInOutCubic, ease.InOutCubic},
		{EaseInSine, ease.InSine},
		{EaseOutSine, ease.OutSine},
		{EaseInOutSine, ease.InOutSine},
		{EaseOutBounce, ease.OutBounce},
	}
	for _, c := range cases {
		for i := 0; i <= 20; i++ {
			x := float32(i) / 20
			got := Evaluate(c.e, x)
			want := c.fn(x, 0, 1, 1)
			if !approx32(got, want) {
				t.Errorf("%s(%f) = %f, gween = %f", c.e, x, got, want)
			}
		}
	}
}

func TestFloat32AndFloat64Agree(t *testing.T) {
	for _, e := range append(NamedEasings(), Ease, EaseInOutCSS) {
		for i := 0; i <= 10; i++ {
			x := float64(i) / 10
			v64 := e.At(x)
			v32 := float64(Evaluate(e, float32(x)))
			if math.Abs(v64-v32) > 1e-3 {
				t.Errorf("%s(%f): float32 %f, float64 %f", e, x, v32, v64)
			}
		}
	}
}
