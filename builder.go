package tween

import "fmt"

// Builder stages the configuration of one tween. It is a small value that
// refers to a pooled buffer; every fluent method returns the same builder.
//
// A builder is consumed by its commit (Run, Bind and friends) or by
// Dispose. Using it afterwards panics with an error wrapping
// ErrBuilderConsumed; using the zero Builder panics with
// ErrBuilderNotInitialized. Preserve keeps the buffer alive across commits
// until Dispose.
type Builder[T, O any, A Adapter[T, O]] struct {
	reg      *Registry
	pool     *builderPool[T, O]
	index    int32
	revision uint16
}

// Progress receives the values of a tween bound with BindProgress.
type Progress[T any] interface {
	Report(v T)
}

// New starts a builder tweening from -> to over d seconds.
func New[T, O any, A Adapter[T, O]](r *Registry, from, to T, d float32) Builder[T, O, A] {
	b := Empty[T, O, A](r, d)
	buf := b.buffer("New")
	buf.data.From = from
	buf.data.To = to
	return b
}

// NewTo starts a builder tweening to `to` over d seconds. The start value
// is the zero value of T unless From or FromFunc is set.
func NewTo[T, O any, A Adapter[T, O]](r *Registry, to T, d float32) Builder[T, O, A] {
	b := Empty[T, O, A](r, d)
	b.buffer("NewTo").data.To = to
	return b
}

// Empty starts a builder with no endpoints.
func Empty[T, O any, A Adapter[T, O]](r *Registry, d float32) Builder[T, O, A] {
	pool := poolFor[T, O](r)
	i, rev := pool.acquire()
	buf := &pool.buffers[i]
	buf.data.Core = defaultCore()
	buf.data.Core.Duration = max(d, 0)
	buf.sched = r.sched
	buf.bindOnSchedule = true
	buf.scheduleOnBind = true
	return Builder[T, O, A]{reg: r, pool: pool, index: i, revision: rev}
}

func (b Builder[T, O, A]) buffer(op string) *buffer[T, O] {
	if b.pool == nil {
		debugCheckBuilder(ErrBuilderNotInitialized, op)
	}
	buf := b.pool.get(b.index, b.revision)
	if buf == nil {
		debugCheckBuilder(ErrBuilderConsumed, op)
	}
	return buf
}

// Valid reports whether the builder can still be configured.
func (b Builder[T, O, A]) Valid() bool {
	return b.pool != nil && b.pool.get(b.index, b.revision) != nil
}

// From sets the start value.
func (b Builder[T, O, A]) From(v T) Builder[T, O, A] {
	buf := b.buffer("From")
	buf.data.From = v
	buf.managed.FromFunc = nil
	return b
}

// FromFunc resolves the start value when the tween starts running.
func (b Builder[T, O, A]) FromFunc(fn func() T) Builder[T, O, A] {
	b.buffer("FromFunc").managed.FromFunc = fn
	return b
}

// To sets the end value.
func (b Builder[T, O, A]) To(v T) Builder[T, O, A] {
	buf := b.buffer("To")
	buf.data.To = v
	buf.managed.ToFunc = nil
	return b
}

// ToFunc resolves the end value when the tween starts running.
func (b Builder[T, O, A]) ToFunc(fn func() T) Builder[T, O, A] {
	b.buffer("ToFunc").managed.ToFunc = fn
	return b
}

// WithDuration sets the duration in seconds. Negative values become 0.
func (b Builder[T, O, A]) WithDuration(d float32) Builder[T, O, A] {
	b.buffer("WithDuration").data.Core.Duration = max(d, 0)
	return b
}

// WithEase sets the easing function.
func (b Builder[T, O, A]) WithEase(e Ease) Builder[T, O, A] {
	b.buffer("WithEase").managed.Ease = e
	return b
}

// WithEaseName sets the easing function by catalog name. Unknown names
// panic with an error wrapping ErrUnknownEase.
func (b Builder[T, O, A]) WithEaseName(name string) Builder[T, O, A] {
	buf := b.buffer("WithEaseName")
	e, err := EaseByName(name)
	if err != nil {
		panic(err)
	}
	buf.managed.Ease = e
	return b
}

// WithDelay waits d seconds before the tween runs.
func (b Builder[T, O, A]) WithDelay(d float32, typ DelayType, mode DelayMode) Builder[T, O, A] {
	c := &b.buffer("WithDelay").data.Core
	c.Delay = max(d, 0)
	c.DelayType = typ
	c.DelayMode = mode
	return b
}

// WithLoops repeats the tween n times; 0 loops forever. When
// affectOnDuration is set the duration is the length of one loop, otherwise
// of all loops together.
func (b Builder[T, O, A]) WithLoops(n int32, typ LoopType, affectOnDuration bool) Builder[T, O, A] {
	c := &b.buffer("WithLoops").data.Core
	c.LoopCount = max(n, 0)
	c.LoopType = typ
	c.AffectLoopsOnDuration = affectOnDuration
	return b
}

// WithPlaybackSpeed scales the clock deltas of this tween. Negative values
// become 0.
func (b Builder[T, O, A]) WithPlaybackSpeed(s float32) Builder[T, O, A] {
	b.buffer("WithPlaybackSpeed").data.Core.PlaybackSpeed = max(s, 0)
	return b
}

// WithTimeKind selects the scheduler clock that drives the tween.
func (b Builder[T, O, A]) WithTimeKind(k TimeKind) Builder[T, O, A] {
	b.buffer("WithTimeKind").data.Core.TimeKind = k
	return b
}

// WithOptions sets the adapter options.
func (b Builder[T, O, A]) WithOptions(o O) Builder[T, O, A] {
	b.buffer("WithOptions").data.Options = o
	return b
}

// WithScheduler overrides the registry's default scheduler.
func (b Builder[T, O, A]) WithScheduler(s Scheduler) Builder[T, O, A] {
	b.buffer("WithScheduler").sched = s
	return b
}

// WithBindOnSchedule controls whether a bound sink receives the start value
// at commit time. Enabled by default.
func (b Builder[T, O, A]) WithBindOnSchedule(enabled bool) Builder[T, O, A] {
	b.buffer("WithBindOnSchedule").bindOnSchedule = enabled
	return b
}

// WithScheduleOnBind controls whether the tween starts on commit. When
// disabled it is created Idle and starts on Resume. Enabled by default.
func (b Builder[T, O, A]) WithScheduleOnBind(enabled bool) Builder[T, O, A] {
	b.buffer("WithScheduleOnBind").scheduleOnBind = enabled
	return b
}

// Preserve keeps the buffer after commit so the builder can be committed
// again. Call Dispose when done with it.
func (b Builder[T, O, A]) Preserve() Builder[T, O, A] {
	b.buffer("Preserve").preserve = true
	return b
}

// OnUpdate subscribes fn to every emitted value.
func (b Builder[T, O, A]) OnUpdate(fn func(T)) Builder[T, O, A] {
	m := &b.buffer("OnUpdate").managed
	m.OnUpdate = chainValue(m.OnUpdate, fn)
	return b
}

// OnStart subscribes fn to the start transition.
func (b Builder[T, O, A]) OnStart(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnStart").managed
	m.OnStart = chain(m.OnStart, fn)
	return b
}

// OnStartDelayed subscribes fn to the moment the tween starts running after
// its delay.
func (b Builder[T, O, A]) OnStartDelayed(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnStartDelayed").managed
	m.OnStartDelayed = chain(m.OnStartDelayed, fn)
	return b
}

func (b Builder[T, O, A]) OnCancel(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnCancel").managed
	m.OnCancel = chain(m.OnCancel, fn)
	return b
}

func (b Builder[T, O, A]) OnComplete(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnComplete").managed
	m.OnComplete = chain(m.OnComplete, fn)
	return b
}

func (b Builder[T, O, A]) OnPause(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnPause").managed
	m.OnPause = chain(m.OnPause, fn)
	return b
}

func (b Builder[T, O, A]) OnResume(fn func()) Builder[T, O, A] {
	m := &b.buffer("OnResume").managed
	m.OnResume = chain(m.OnResume, fn)
	return b
}

// Run commits the tween without a value sink.
func (b Builder[T, O, A]) Run() Handle {
	b.buffer("Run")
	return b.commit(sink[T]{})
}

// Bind commits the tween and delivers every value to fn.
func (b Builder[T, O, A]) Bind(fn func(T)) Handle {
	b.buffer("Bind")
	if fn == nil {
		panic(fmt.Errorf("tween: Bind: sink: %w", ErrNilArgument))
	}
	return b.commit(sink[T]{fn0: fn})
}

// BindWithState commits the tween and delivers every value to fn together
// with state. Passing a pointer as state avoids a capturing closure.
func (b Builder[T, O, A]) BindWithState(state any, fn func(v T, state any)) Handle {
	b.buffer("BindWithState")
	checkNil("BindWithState", fn == nil, state)
	return b.commit(sink[T]{states: 1, fn1: fn, s1: state})
}

// BindWithState2 is BindWithState with two state values.
func (b Builder[T, O, A]) BindWithState2(s1, s2 any, fn func(v T, s1, s2 any)) Handle {
	b.buffer("BindWithState2")
	checkNil("BindWithState2", fn == nil, s1, s2)
	return b.commit(sink[T]{states: 2, fn2: fn, s1: s1, s2: s2})
}

// BindWithState3 is BindWithState with three state values.
func (b Builder[T, O, A]) BindWithState3(s1, s2, s3 any, fn func(v T, s1, s2, s3 any)) Handle {
	b.buffer("BindWithState3")
	checkNil("BindWithState3", fn == nil, s1, s2, s3)
	return b.commit(sink[T]{states: 3, fn3: fn, s1: s1, s2: s2, s3: s3})
}

// BindProgress commits the tween and reports every value to p.
func (b Builder[T, O, A]) BindProgress(p Progress[T]) Handle {
	b.buffer("BindProgress")
	checkNil("BindProgress", false, p)
	return b.commit(sink[T]{states: 1, fn1: reportProgress[T], s1: p})
}

func reportProgress[T any](v T, p any) {
	p.(Progress[T]).Report(v)
}

func checkNil(op string, nilFn bool, states ...any) {
	if nilFn {
		panic(fmt.Errorf("tween: %s: sink: %w", op, ErrNilArgument))
	}
	for i, s := range states {
		if s == nil {
			panic(fmt.Errorf("tween: %s: state %d: %w", op, i+1, ErrNilArgument))
		}
	}
}

// commit hands the staged tween to its repository. Without a scheduler
// nothing is stored and InvalidHandle is returned.
func (b Builder[T, O, A]) commit(s sink[T]) Handle {
	buf := b.pool.get(b.index, b.revision)
	data := buf.data
	managed := buf.managed
	managed.sink = s
	sched := buf.sched
	bindOnSchedule := buf.bindOnSchedule
	if managed.Ease == nil {
		managed.Ease = b.reg.defaultEase
	}
	if buf.scheduleOnBind {
		data.Core.State = StateScheduled
	} else {
		data.Core.State = StateIdle
	}
	if !buf.preserve {
		b.pool.release(b.index)
	}

	if sched == nil {
		b.reg.env.log.Warn().Str("type", fmt.Sprintf("%T", data.From)).Msg("tween committed without a scheduler")
		return InvalidHandle
	}
	if bindOnSchedule && s.bound() && managed.FromFunc == nil {
		s.invoke(evaluate[T, O, A](&data, managed.Ease, 0))
	}
	return RepositoryFor[T, O, A](b.reg, sched).Add(data, managed)
}

// Dispose releases the buffer without committing. Disposing a consumed
// builder is a no-op.
func (b Builder[T, O, A]) Dispose() {
	if !b.Valid() {
		return
	}
	b.pool.release(b.index)
}

// ToShared turns the builder into a reusable template. The builder itself
// must not be used afterwards.
func (b Builder[T, O, A]) ToShared() SharedBuilder[T, O, A] {
	b.buffer("ToShared").preserve = true
	return SharedBuilder[T, O, A]{b: b}
}
