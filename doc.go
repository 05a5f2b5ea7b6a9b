// Package tween is a tween scheduling and lifecycle engine for Go games and
// tools, built for [Ebitengine] but usable with any per-frame loop.
//
// A tween interpolates a value from a start to an end over a duration, with
// easing, delays, loops and yoyo, and delivers the value to a sink every
// tick. Tweens of the same value type share one compact repository, so
// thousands of them update without per-tween allocations.
//
// # Quick start
//
// Create a [Registry] with a scheduler and start tweens through it:
//
//	sched := tween.NewFrameScheduler()
//	reg := tween.NewRegistry(tween.WithScheduler(sched))
//
//	h := tween.Float(reg, 0, 100, 2).
//		WithEaseName("OutQuad").
//		OnComplete(func() { fmt.Println("done") }).
//		Bind(func(v float64) { sprite.X = v })
//
// Then drive the scheduler from your game:
//
//	func (g *Game) Update() error { g.sched.Update(); return nil }
//
// In tests and tools use [ManualScheduler] and call Advance(dt) instead.
//
// # Handles
//
// Every committed tween returns a [Handle]: a slot index, repository id and
// generation. Handles are plain values. Control calls on a stale handle
// ([Registry.Pause], [Registry.Resume], [Registry.Cancel],
// [Registry.Complete]) are no-ops, while data accessors such as
// [Registry.CoreRef] and [DataRef] fail with [ErrInvalidHandle].
//
// # Builders
//
// [New], [NewTo], [Empty] and the typed shorthands ([Float], [Int],
// [ColorTween], [Vec2Tween], [Text], ...) return a pooled [Builder]. A
// builder is committed exactly once by Run, Bind or a BindWithState
// variant; use [Builder.Preserve] or [Builder.ToShared] for templates.
//
// # Value types
//
// A tween is typed by its value, its adapter options and an [Adapter]
// that interpolates between two values. Add a value type by declaring a
// zero-size adapter struct:
//
//	type SizeAdapter struct{}
//
//	func (SizeAdapter) Evaluate(from, to Size, _ tween.NoOptions, t float32) Size { ... }
//
//	tween.New[Size, tween.NoOptions, SizeAdapter](reg, a, b, 1).Run()
//
// # Lifecycle
//
// A tween moves through Scheduled, Delayed and Running to Completed or
// Canceled; Pause and Resume move a running tween to Idle and back. A
// loop count of 0 loops forever, and such a tween only ends through Cancel
// or Complete. [Link] ties tweens to a host object's enable, disable and
// destroy hooks.
//
// # Observability
//
// Logging uses [zerolog] through [WithLogger], metrics use Prometheus
// through [WithMetrics], and [WithEventSink] receives every lifecycle
// event; the tween/ecs package publishes them into a [Donburi] world.
// [WithDebug] logs per-tick stats and panics on internal corruption.
//
// [Ebitengine]: https://ebitengine.org
// [zerolog]: https://github.com/rs/zerolog
// [Donburi]: https://github.com/yohamta/donburi
package tween
