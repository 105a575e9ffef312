package easel

import (
	"fmt"
	"math"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func approx32(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

// recorder collects observer events as "kind:id" strings.
type recorder struct {
	events []string
}

func (r *recorder) OnStart(id TweenID)    { r.add("start:%d", id) }
func (r *recorder) OnComplete(id TweenID) { r.add("complete:%d", id) }
func (r *recorder) OnPause(id TweenID)    { r.add("pause:%d", id) }
func (r *recorder) OnResume(id TweenID)   { r.add("resume:%d", id) }

func (r *recorder) OnLoop(id TweenID, loops uint32) {
	r.add("loop:%d:%d", id, loops)
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}
