package easel

import (
	"fmt"
	"strconv"
	"strings"
)

// LoopKind selects what happens when an iteration ends.
type LoopKind uint8

const (
	Once          LoopKind = iota // finish after one iteration
	Count                         // finish after N iterations
	Infinite                      // restart forever
	PingPong                      // restart forever, flipping direction each time
	PingPongCount                 // N forward+backward round trips, then finish
)

// LoopMode is a LoopKind plus the count used by Count and PingPongCount. The
// zero value is LoopOnce.
//
// A count of 0 finishes after the first iteration (or leg) instead of looping
// forever or never starting.
type LoopMode struct {
	Kind LoopKind
	N    uint32
}

var (
	LoopOnce     = LoopMode{Kind: Once}
	LoopInfinite = LoopMode{Kind: Infinite}
	LoopPingPong = LoopMode{Kind: PingPong}
)

// LoopCount plays n iterations.
func LoopCount(n uint32) LoopMode { return LoopMode{Kind: Count, N: n} }

// LoopPingPongCount plays n round trips; each direction counts as one leg.
func LoopPingPongCount(n uint32) LoopMode { return LoopMode{Kind: PingPongCount, N: n} }

// Direction is the current playback direction. Only ping-pong loops change it.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// State is the playback state of an animation.
type State uint8

const (
	Idle     State = iota // composition with no children yet
	Playing               // advancing on every tick
	Paused                // ticks are no-ops until Resume
	Finished              // terminal until Reset
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// loopStep is the outcome of an iteration boundary.
type loopStep struct {
	finished  bool
	loops     uint32
	direction Direction
}

// next applies the iteration-end table. Owners reset their own elapsed
// counter when the result is not finished.
func (m LoopMode) next(loops uint32, dir Direction) loopStep {
	switch m.Kind {
	case Count:
		loops = saturatingAdd(loops, 1)
		if m.N == 0 || loops >= m.N {
			return loopStep{finished: true, loops: loops, direction: dir}
		}
		return loopStep{loops: loops, direction: Forward}
	case Infinite:
		return loopStep{loops: saturatingAdd(loops, 1), direction: dir}
	case PingPong:
		return loopStep{loops: saturatingAdd(loops, 1), direction: dir.Flip()}
	case PingPongCount:
		loops = saturatingAdd(loops, 1)
		legs := saturatingMul(m.N, 2)
		if legs == 0 || loops >= legs {
			return loopStep{finished: true, loops: loops, direction: dir}
		}
		return loopStep{loops: loops, direction: dir.Flip()}
	default:
		return loopStep{finished: true, loops: loops, direction: dir}
	}
}

// Iterations returns how many iterations the mode plays, or 0 when it never
// finishes on its own.
func (m LoopMode) Iterations() uint32 {
	switch m.Kind {
	case Count:
		return max(m.N, 1)
	case PingPongCount:
		return max(saturatingMul(m.N, 2), 1)
	case Infinite, PingPong:
		return 0
	default:
		return 1
	}
}

// String returns the canonical text form accepted by ParseLoopMode.
func (m LoopMode) String() string {
	switch m.Kind {
	case Once:
		return "once"
	case Count:
		return "count(" + strconv.FormatUint(uint64(m.N), 10) + ")"
	case Infinite:
		return "infinite"
	case PingPong:
		return "ping-pong"
	case PingPongCount:
		return "ping-pong-count(" + strconv.FormatUint(uint64(m.N), 10) + ")"
	default:
		return "LoopKind(" + strconv.Itoa(int(m.Kind)) + ")"
	}
}

// ParseLoopMode parses "once", "count(N)", "infinite", "ping-pong" or
// "ping-pong-count(N)". An empty string is LoopOnce.
func ParseLoopMode(s string) (LoopMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "once":
		return LoopOnce, nil
	case "infinite":
		return LoopInfinite, nil
	case "ping-pong":
		return LoopPingPong, nil
	}
	for _, fn := range []struct {
		name string
		kind LoopKind
	}{{"ping-pong-count", PingPongCount}, {"count", Count}} {
		args, ok := callArgs(name, fn.name)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
		if err != nil {
			return LoopMode{}, fmt.Errorf("easel: loop count in %q: %w", s, err)
		}
		return LoopMode{Kind: fn.kind, N: uint32(n)}, nil
	}
	return LoopMode{}, fmt.Errorf("easel: unknown loop mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m LoopMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LoopMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLoopMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
