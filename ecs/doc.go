// Package ecs provides ECS adapters for the tween engine.
//
// [NewDonburiSink] bridges tween lifecycle events (started, paused,
// completed, canceled, ...) into a [Donburi] world as typed events.
// Subscribe to [LifecycleEventType] in your ECS systems to receive them.
// [TickSystem] drives a [tween.ManualScheduler] from a system step.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	reg := tween.NewRegistry(tween.WithScheduler(sched), tween.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
