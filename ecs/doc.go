// Package ecs runs easel animations inside a [Donburi] world.
//
// Attach [Tween] or [Spring] components to entities and call
// [System.Update] once per tick. The system writes each animation's value
// back into its component and publishes a [FinishedEvent] when a tween
// finishes or a spring comes to rest.
//
// Usage:
//
//	sys := ecs.NewSystem()
//	e := world.Create(ecs.Tween)
//	ecs.Tween.SetValue(world.Entry(e), ecs.TweenData{
//		Tween: easel.NewTween(0.0, 1.0, 60, easel.TweenConfig{}),
//	})
//	ecs.FinishedEventType.Subscribe(world, onFinished)
//
//	// each tick:
//	sys.Update(world)
//	ecs.FinishedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
