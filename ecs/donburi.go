package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for tween lifecycle events.
var LifecycleEventType = events.NewEventType[tween.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to LifecycleEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tween.Event) {
	LifecycleEventType.Publish(s.world, event)
}

// TickSystem returns a system step that advances sched by dt seconds and
// then processes the queued lifecycle events of the world.
func TickSystem(sched *tween.ManualScheduler, dt float64) func(donburi.World) {
	return func(w donburi.World) {
		sched.Advance(dt)
		LifecycleEventType.ProcessEvents(w)
	}
}
