package easel

import (
	"fmt"
	"strconv"
	"strings"
)

var easingNames = [numEasingKinds]string{
	KindLinear:           "linear",
	KindEaseInQuad:       "ease-in-quad",
	KindEaseOutQuad:      "ease-out-quad",
	KindEaseInOutQuad:    "ease-in-out-quad",
	KindEaseInCubic:      "ease-in-cubic",
	KindEaseOutCubic:     "ease-out-cubic",
	KindEaseInOutCubic:   "ease-in-out-cubic",
	KindEaseInQuart:      "ease-in-quart",
	KindEaseOutQuart:     "ease-out-quart",
	KindEaseInOutQuart:   "ease-in-out-quart",
	KindEaseInQuint:      "ease-in-quint",
	KindEaseOutQuint:     "ease-out-quint",
	KindEaseInOutQuint:   "ease-in-out-quint",
	KindEaseInSine:       "ease-in-sine",
	KindEaseOutSine:      "ease-out-sine",
	KindEaseInOutSine:    "ease-in-out-sine",
	KindEaseInExpo:       "ease-in-expo",
	KindEaseOutExpo:      "ease-out-expo",
	KindEaseInOutExpo:    "ease-in-out-expo",
	KindEaseInCirc:       "ease-in-circ",
	KindEaseOutCirc:      "ease-out-circ",
	KindEaseInOutCirc:    "ease-in-out-circ",
	KindEaseInBack:       "ease-in-back",
	KindEaseOutBack:      "ease-out-back",
	KindEaseInOutBack:    "ease-in-out-back",
	KindEaseInElastic:    "ease-in-elastic",
	KindEaseOutElastic:   "ease-out-elastic",
	KindEaseInOutElastic: "ease-in-out-elastic",
	KindEaseInBounce:     "ease-in-bounce",
	KindEaseOutBounce:    "ease-out-bounce",
	KindEaseInOutBounce:  "ease-in-out-bounce",
	KindCubicBezier:      "cubic-bezier",
}

// NamedEasings returns every named curve (all kinds except CubicBezier) in
// declaration order.
func NamedEasings() []Easing {
	out := make([]Easing, 0, int(KindCubicBezier))
	for k := KindLinear; k < KindCubicBezier; k++ {
		out = append(out, Easing{Kind: k})
	}
	return out
}

// String returns the kind's canonical name, e.g. "ease-out-cubic".
func (k EasingKind) String() string {
	if k < numEasingKinds {
		return easingNames[k]
	}
	return "EasingKind(" + strconv.Itoa(int(k)) + ")"
}

// String returns the canonical text form accepted by ParseEasing.
func (e Easing) String() string {
	if e.Kind != KindCubicBezier {
		return e.Kind.String()
	}
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatFloat(e.X1), formatFloat(e.Y1), formatFloat(e.X2), formatFloat(e.Y2))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseEasing parses a curve name ("ease-in-out-sine"), a CSS preset name
// ("ease", "ease-in", "ease-out", "ease-in-out", "snap") or a
// "cubic-bezier(x1, y1, x2, y2)" expression. Matching is case-insensitive.
func ParseEasing(s string) (Easing, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if e, ok := cssPresets[name]; ok {
		return e, nil
	}
	for k := KindLinear; k < KindCubicBezier; k++ {
		if easingNames[k] == name {
			return Easing{Kind: k}, nil
		}
	}

	args, ok := callArgs(name, "cubic-bezier")
	if !ok {
		return Easing{}, fmt.Errorf("easel: unknown easing %q", s)
	}
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return Easing{}, fmt.Errorf("easel: cubic-bezier wants 4 arguments, got %d in %q", len(parts), s)
	}
	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Easing{}, fmt.Errorf("easel: cubic-bezier argument %d in %q: %w", i+1, s, err)
		}
		p[i] = v
	}
	return Bezier(p[0], p[1], p[2], p[3]), nil
}

// callArgs extracts the argument list of "fn(args)".
func callArgs(s, fn string) (string, bool) {
	rest, ok := strings.CutPrefix(s, fn)
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
