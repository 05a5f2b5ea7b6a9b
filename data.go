package tween

import "math"

// Core is the per-tween scalar state advanced by the update task.
type Core struct {
	State State

	// Time is the elapsed progress time, accumulated from clock deltas
	// scaled by PlaybackSpeed.
	Time          float64
	Duration      float32
	PlaybackSpeed float32
	TimeKind      TimeKind

	DelayType DelayType
	DelayMode DelayMode
	Delay     float32

	LoopType LoopType
	// AffectLoopsOnDuration makes Duration the length of one loop. When
	// false, Duration is the length of all loops together.
	AffectLoopsOnDuration bool
	// LoopCount is the number of loops; 0 loops forever.
	LoopCount int32

	// started is set by the start transition, live by the delayed-start
	// transition once the endpoints are resolved.
	started bool
	live    bool
}

func defaultCore() Core {
	return Core{PlaybackSpeed: 1, LoopCount: 1}
}

// loopGap is the idle time between two loops.
func (c *Core) loopGap() float64 {
	if c.DelayType == DelayEveryLoop && c.DelayMode == DelayAffectOnDuration && c.Delay > 0 {
		return float64(c.Delay)
	}
	return 0
}

// Durations returns the total playing time and the length of a single loop.
// Total is +Inf when the tween loops forever.
func (c *Core) Durations() (total, loop float64) {
	d := float64(c.Duration)
	if c.LoopCount <= 0 {
		return math.Inf(1), d
	}
	n := float64(c.LoopCount)
	if c.AffectLoopsOnDuration {
		total, loop = d*n, d
	} else {
		total, loop = d, d/n
	}
	if gap := c.loopGap(); gap > 0 {
		total += gap * (n - 1)
	}
	return total, loop
}

// progress maps Time to the normalized loop parameter. finished is true once
// Time reaches the total duration, in which case t is the final parameter.
// A zero or negative loop length yields t = 1 immediately.
func (c *Core) progress() (t float32, finished bool) {
	total, loop := c.Durations()
	if c.Time >= total {
		return c.finalProgress(), true
	}
	if loop <= 0 {
		return 1, false
	}

	var k, within float64
	if gap := c.loopGap(); gap > 0 {
		period := loop + gap
		k = math.Floor(c.Time / period)
		within = c.Time - k*period
	} else {
		k = math.Floor(c.Time / loop)
		within = math.Mod(c.Time, loop)
	}

	p := 1.0
	if within < loop {
		p = within / loop
	}
	if c.LoopType == LoopYoyo && int64(k)%2 == 1 {
		p = 1 - p
	}
	return float32(p), false
}

// finalProgress is the parameter at the end of the last loop, reversed when
// that loop is an odd yoyo loop.
func (c *Core) finalProgress() float32 {
	if c.LoopType == LoopYoyo && c.LoopCount > 0 && (c.LoopCount-1)%2 == 1 {
		return 0
	}
	return 1
}

// Data is the plain-value record of one tween: its core state plus the typed
// endpoints and adapter options.
type Data[T, O any] struct {
	Core    Core
	Options O
	From    T
	To      T
}

// Managed holds everything of a tween that is not plain data: easing,
// deferred endpoint getters, the value sink and lifecycle callbacks. Each
// record belongs to exactly one repository slot.
type Managed[T any] struct {
	Ease Ease

	// FromFunc and ToFunc, when set, resolve the endpoints at the moment the
	// tween starts running (after any delay).
	FromFunc func() T
	ToFunc   func() T

	OnUpdate       func(T)
	OnStart        func()
	OnStartDelayed func()
	OnCancel       func()
	OnComplete     func()
	OnPause        func()
	OnResume       func()

	sink sink[T]
}

// sink is the value sink bound at commit time. Up to three state values are
// carried next to a function of matching arity so that binding plain
// pointers does not need a capturing closure.
type sink[T any] struct {
	states     uint8
	fn0        func(T)
	fn1        func(T, any)
	fn2        func(T, any, any)
	fn3        func(T, any, any, any)
	s1, s2, s3 any
}

func (s *sink[T]) bound() bool {
	switch s.states {
	case 0:
		return s.fn0 != nil
	case 1:
		return s.fn1 != nil
	case 2:
		return s.fn2 != nil
	default:
		return s.fn3 != nil
	}
}

func (s *sink[T]) invoke(v T) {
	switch s.states {
	case 0:
		if s.fn0 != nil {
			s.fn0(v)
		}
	case 1:
		s.fn1(v, s.s1)
	case 2:
		s.fn2(v, s.s1, s.s2)
	case 3:
		s.fn3(v, s.s1, s.s2, s.s3)
	}
}

// deliver passes v to the bound sink, then to OnUpdate.
func (m *Managed[T]) deliver(v T) {
	m.sink.invoke(v)
	if m.OnUpdate != nil {
		m.OnUpdate(v)
	}
}

// evaluate computes the value of d at loop parameter t through the ease
// and the adapter A.
func evaluate[T, O any, A Adapter[T, O]](d *Data[T, O], e Ease, t float32) T {
	var a A
	return a.Evaluate(d.From, d.To, d.Options, e.Apply(t))
}

func chain(a, b func()) func() {
	if a == nil {
		return b
	}
	return func() {
		a()
		b()
	}
}

func chainValue[T any](a, b func(T)) func(T) {
	if a == nil {
		return b
	}
	return func(v T) {
		a(v)
		b(v)
	}
}

func callIf(fn func()) {
	if fn != nil {
		fn()
	}
}
