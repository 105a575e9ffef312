package easel

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a color that interpolates in CIE L*a*b* space, which keeps the
// perceived lightness change even across the blend. Rgba blends in linear
// premultiplied RGB instead.
type Lab[F Float] struct {
	colorful.Color
}

// LabFromHex parses a "#rrggbb" color.
func LabFromHex[F Float](s string) (Lab[F], error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Lab[F]{}, fmt.Errorf("easel: parse color %q: %w", s, err)
	}
	return Lab[F]{c}, nil
}

// LabFromRgba converts an opaque Rgba. Alpha is dropped.
func LabFromRgba[F Float](c Rgba[F]) Lab[F] {
	return Lab[F]{colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}}
}

// Lerp implements Lerper.
func (c Lab[F]) Lerp(to Lab[F], t F) Lab[F] {
	return Lab[F]{c.BlendLab(to.Color, float64(t))}
}

// Rgba converts back to an opaque Rgba, clamping out-of-gamut components.
func (c Lab[F]) Rgba() Rgba[F] {
	cl := c.Clamped()
	return Rgba[F]{R: F(cl.R), G: F(cl.G), B: F(cl.B), A: 1}
}
