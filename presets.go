package easel

// CSS timing-function presets, all cubic Bézier curves.
var (
	// Ease is CSS `ease`: cubic-bezier(0.25, 0.1, 0.25, 1).
	Ease = Bezier(0.25, 0.1, 0.25, 1)
	// EaseIn is CSS `ease-in`: cubic-bezier(0.42, 0, 1, 1).
	EaseIn = Bezier(0.42, 0, 1, 1)
	// EaseOut is CSS `ease-out`: cubic-bezier(0, 0, 0.58, 1).
	EaseOut = Bezier(0, 0, 0.58, 1)
	// EaseInOutCSS is CSS `ease-in-out`: cubic-bezier(0.42, 0, 0.58, 1).
	EaseInOutCSS = Bezier(0.42, 0, 0.58, 1)
	// Snap jumps most of the way immediately and settles on the target.
	Snap = Bezier(0, 1, 0, 1)
)

var cssPresets = map[string]Easing{
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOutCSS,
	"snap":        Snap,
}
