package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/RobDavenport/easel"
)

// TweenData holds a scalar tween and the value it produced on the last tick.
type TweenData struct {
	Tween *easel.Tween[float64, float64]
	Value float64
}

// SpringData holds a spring and the value it produced on the last tick.
type SpringData struct {
	Spring *easel.SpringTween[float64]
	Value  float64
	atRest bool
}

var (
	Tween  = donburi.NewComponentType[TweenData]()
	Spring = donburi.NewComponentType[SpringData]()
)

// FinishKind says which component raised a FinishedEvent.
type FinishKind uint8

const (
	TweenFinished FinishKind = iota
	SpringAtRest
)

// FinishedEvent is published when an entity's tween finishes or its spring
// comes to rest. A spring that wakes and settles again publishes again.
type FinishedEvent struct {
	Entity donburi.Entity
	Kind   FinishKind
	Value  float64
}

// FinishedEventType carries FinishedEvent. Subscribe to it and call
// ProcessEvents after System.Update.
var FinishedEventType = events.NewEventType[FinishedEvent]()

// System ticks every Tween and Spring component once per Update.
type System struct {
	tweens  *donburi.Query
	springs *donburi.Query
}

func NewSystem() *System {
	return &System{
		tweens:  donburi.NewQuery(filter.Contains(Tween)),
		springs: donburi.NewQuery(filter.Contains(Spring)),
	}
}

// Update advances all animations in world by one tick. Entries with a nil
// animation are skipped.
func (s *System) Update(world donburi.World) {
	s.tweens.Each(world, func(entry *donburi.Entry) {
		data := Tween.Get(entry)
		if data.Tween == nil || data.Tween.IsFinished() {
			return
		}
		data.Value = data.Tween.Tick()
		if data.Tween.IsFinished() {
			FinishedEventType.Publish(world, FinishedEvent{Entity: entry.Entity(), Kind: TweenFinished, Value: data.Value})
		}
	})

	s.springs.Each(world, func(entry *donburi.Entry) {
		data := Spring.Get(entry)
		if data.Spring == nil {
			return
		}
		data.Value = data.Spring.Tick()
		rest := data.Spring.IsAtRest()
		if rest && !data.atRest {
			FinishedEventType.Publish(world, FinishedEvent{Entity: entry.Entity(), Kind: SpringAtRest, Value: data.Value})
		}
		data.atRest = rest
	})
}
