package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(opts ...Option) (*Registry, *ManualScheduler) {
	sched := NewManualScheduler()
	opts = append([]Option{WithScheduler(sched), WithDebug(true)}, opts...)
	return NewRegistry(opts...), sched
}

func coreOf(t *testing.T, r *Registry, h Handle) *Core {
	t.Helper()
	c, err := r.CoreRef(h)
	require.NoError(t, err)
	return c
}

func TestTween_CompletesAtExactEndValue(t *testing.T) {
	reg, sched := newTestRegistry()
	got := -1.0
	completed := 0
	h := Float(reg, 0, 100, 2).
		OnComplete(func() { completed++ }).
		Bind(func(v float64) { got = v })

	assert.Equal(t, 0.0, got, "bind on schedule delivers the start value")

	sched.Advance(1)
	assert.Equal(t, 50.0, got)
	assert.True(t, reg.IsActive(h))

	sched.Advance(1)
	assert.Equal(t, 100.0, got)
	assert.Equal(t, 1, completed)
	assert.False(t, reg.IsActive(h))
	assert.Equal(t, 0, reg.Len())
}

func TestTween_YoyoReversesOddLoops(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	h := Float(reg, 0, 10, 1).
		WithLoops(4, LoopYoyo, true).
		Bind(func(v float64) { got = v })

	sched.Advance(0.25)
	assert.InDelta(t, 2.5, got, 1e-9)

	sched.Advance(1.25)
	assert.InDelta(t, 5, got, 1e-9)

	sched.Advance(0.25)
	assert.InDelta(t, 2.5, got, 1e-9, "loop 1 runs backwards")

	sched.Advance(2.25)
	assert.False(t, reg.IsActive(h))
	assert.Equal(t, 0.0, got, "an even loop count ends at the start value")
}

func TestTween_RestartLoopsWithoutAffect(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	Float(reg, 0, 100, 2).
		WithLoops(4, LoopRestart, false).
		Bind(func(v float64) { got = v })

	sched.Advance(0.75)
	assert.InDelta(t, 50, got, 1e-9, "each loop lasts 0.5s")

	sched.Advance(0.5)
	assert.InDelta(t, 50, got, 1e-9)
}

func TestTween_DelayAffectOnDuration(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	var events []string
	h := Float(reg, 0, 100, 1).
		WithDelay(0.5, DelayFirstLoop, DelayAffectOnDuration).
		OnStart(func() { events = append(events, "start") }).
		OnStartDelayed(func() { events = append(events, "delayed") }).
		OnComplete(func() { events = append(events, "complete") }).
		Bind(func(v float64) { got = v })

	sched.Advance(0.25)
	assert.Equal(t, StateDelayed, coreOf(t, reg, h).State)
	assert.Equal(t, []string{"start"}, events)

	sched.Advance(0.25)
	c := coreOf(t, reg, h)
	assert.Equal(t, StateRunning, c.State)
	assert.Equal(t, 0.0, c.Time, "progress restarts after the delay")
	assert.Equal(t, 0.0, got)

	sched.Advance(0.5)
	assert.InDelta(t, 50, got, 1e-9)

	sched.Advance(0.5)
	assert.Equal(t, 100.0, got)
	assert.False(t, reg.IsActive(h), "completes at external time 1.5")
	assert.Equal(t, []string{"start", "delayed", "complete"}, events)
}

func TestTween_DelaySkipValuesCountsTowardDuration(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	h := Float(reg, 0, 100, 1).
		WithDelay(0.5, DelayFirstLoop, DelaySkipValuesDuringDelay).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	assert.InDelta(t, 50, got, 1e-9)

	sched.Advance(0.5)
	assert.Equal(t, 100.0, got)
	assert.False(t, reg.IsActive(h))
}

func TestTween_EveryLoopDelayHoldsBetweenLoops(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	h := Float(reg, 0, 100, 1).
		WithLoops(2, LoopRestart, true).
		WithDelay(0.5, DelayEveryLoop, DelayAffectOnDuration).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	assert.Equal(t, 0.0, got)

	sched.Advance(1.25)
	assert.Equal(t, 100.0, got, "gap holds the end of the loop")

	sched.Advance(0.5)
	assert.InDelta(t, 25, got, 1e-9)

	sched.Advance(1)
	assert.Equal(t, 100.0, got)
	assert.False(t, reg.IsActive(h))
}

func TestTween_CancelIsIdempotent(t *testing.T) {
	reg, sched := newTestRegistry()
	canceled := 0
	got := -1.0
	h := Float(reg, 0, 100, 1).
		WithBindOnSchedule(false).
		OnCancel(func() { canceled++ }).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	assert.True(t, reg.Cancel(h))
	assert.False(t, reg.Cancel(h))
	assert.False(t, reg.Complete(h))
	assert.Equal(t, 1, canceled)
	assert.InDelta(t, 50, got, 1e-9, "cancel does not snap")

	sched.Advance(1)
	assert.InDelta(t, 50, got, 1e-9)
}

func TestTween_CompleteIsIdempotent(t *testing.T) {
	reg, _ := newTestRegistry()
	completed := 0
	var got float64
	h := Float(reg, 0, 100, 1).
		OnComplete(func() { completed++ }).
		Bind(func(v float64) { got = v })

	assert.True(t, reg.Complete(h))
	assert.False(t, reg.Complete(h))
	assert.Equal(t, 1, completed)
	assert.Equal(t, 100.0, got)
}

func TestTween_CompleteResolvesGetters(t *testing.T) {
	reg, _ := newTestRegistry()
	var got float64
	h := NewTo[float64, NoOptions, FloatAdapter](reg, 0, 1).
		ToFunc(func() float64 { return 42 }).
		Bind(func(v float64) { got = v })

	reg.Complete(h)
	assert.Equal(t, 42.0, got)
}

func TestTween_CompleteOddYoyoEndsAtStart(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	h := Float(reg, 0, 10, 1).
		WithLoops(2, LoopYoyo, true).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	reg.Complete(h)
	assert.Equal(t, 0.0, got)
}

func TestTween_PauseAndResume(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	var calls []string
	h := Float(reg, 0, 100, 2).
		OnPause(func() { calls = append(calls, "pause") }).
		OnResume(func() { calls = append(calls, "resume") }).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	assert.InDelta(t, 25, got, 1e-9)

	require.True(t, reg.Pause(h))
	assert.False(t, reg.Pause(h))
	assert.True(t, reg.IsActive(h), "paused tweens are still active")

	sched.Advance(1)
	assert.InDelta(t, 25, got, 1e-9)
	assert.Equal(t, 0.5, coreOf(t, reg, h).Time)

	require.True(t, reg.Resume(h))
	assert.False(t, reg.Resume(h))

	sched.Advance(0.5)
	assert.InDelta(t, 50, got, 1e-9)
	assert.Equal(t, []string{"pause", "resume"}, calls)
}

func TestTween_PauseIgnoresDelayed(t *testing.T) {
	reg, sched := newTestRegistry()
	h := Float(reg, 0, 1, 1).WithDelay(1, DelayFirstLoop, DelayAffectOnDuration).Run()

	sched.Advance(0.1)
	assert.False(t, reg.Pause(h))
	assert.Equal(t, StateDelayed, coreOf(t, reg, h).State)
}

func TestTween_ScheduleOnBindDisabledWaitsForResume(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	started := 0
	h := Float(reg, 0, 100, 2).
		WithScheduleOnBind(false).
		WithBindOnSchedule(false).
		OnStart(func() { started++ }).
		Bind(func(v float64) { got = v })

	assert.Equal(t, StateIdle, coreOf(t, reg, h).State)
	sched.Advance(1)
	assert.Equal(t, 0, started)

	require.True(t, reg.Resume(h))
	assert.Equal(t, StateScheduled, coreOf(t, reg, h).State)

	sched.Advance(1)
	assert.Equal(t, 1, started)
	assert.InDelta(t, 50, got, 1e-9)
}

func TestTween_InfiniteLoopsOnlyEndExternally(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	h := Float(reg, 0, 100, 1).
		WithLoops(0, LoopRestart, true).
		Bind(func(v float64) { got = v })

	for range 40 {
		sched.Advance(0.25)
	}
	sched.Advance(0.25)
	assert.True(t, reg.IsActive(h))
	assert.InDelta(t, 25, got, 1e-9)

	total, loop := coreOf(t, reg, h).Durations()
	assert.True(t, total > 1e300)
	assert.Equal(t, 1.0, loop)

	reg.Complete(h)
	assert.Equal(t, 100.0, got)
	assert.False(t, reg.IsActive(h))
}

func TestTween_ZeroDurationCompletesImmediately(t *testing.T) {
	reg, sched := newTestRegistry()
	got := -1.0
	h := Float(reg, 0, 100, 0).WithBindOnSchedule(false).Bind(func(v float64) { got = v })

	sched.Advance(0.016)
	assert.Equal(t, 100.0, got)
	assert.False(t, reg.IsActive(h))
}

func TestTween_TimeKindSelectsClock(t *testing.T) {
	reg, sched := newTestRegistry()
	sched.TimeScale = 0.5
	var scaled, unscaled, real float64
	Float(reg, 0, 100, 2).Bind(func(v float64) { scaled = v })
	Float(reg, 0, 100, 2).WithTimeKind(TimeUnscaled).Bind(func(v float64) { unscaled = v })
	Float(reg, 0, 100, 2).WithTimeKind(TimeReal).Bind(func(v float64) { real = v })

	sched.Advance(1)
	assert.InDelta(t, 25, scaled, 1e-9)
	assert.InDelta(t, 50, unscaled, 1e-9)
	assert.InDelta(t, 50, real, 1e-9)

	sched.AdvanceClock(Clock{Real: 0.5})
	assert.InDelta(t, 25, scaled, 1e-9)
	assert.InDelta(t, 75, real, 1e-9)
}

func TestTween_PlaybackSpeed(t *testing.T) {
	reg, sched := newTestRegistry()
	var fast, stopped float64
	Float(reg, 0, 100, 2).WithPlaybackSpeed(2).Bind(func(v float64) { fast = v })
	h := Float(reg, 0, 100, 2).WithPlaybackSpeed(-3).Bind(func(v float64) { stopped = v })

	sched.Advance(0.5)
	assert.InDelta(t, 50, fast, 1e-9)
	assert.Equal(t, 0.0, stopped)
	assert.Equal(t, float32(0), coreOf(t, reg, h).PlaybackSpeed, "negative speed clamps to zero")
}

func TestTween_FromFuncResolvedAtStart(t *testing.T) {
	reg, sched := newTestRegistry()
	x := 10.0
	got := -1.0
	Float(reg, 0, 100, 1).
		FromFunc(func() float64 { return x }).
		Bind(func(v float64) { got = v })

	assert.Equal(t, -1.0, got, "no start value without a resolved From")

	x = 20
	sched.Advance(0.5)
	assert.InDelta(t, 60, got, 1e-9)
}

func TestTween_EaseIsApplied(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	Float(reg, 0, 100, 1).
		WithEase(func(t float32) float32 { return t * t }).
		Bind(func(v float64) { got = v })

	sched.Advance(0.5)
	assert.InDelta(t, 25, got, 1e-6)
}

func TestTween_OvershootNotClamped(t *testing.T) {
	reg, sched := newTestRegistry()
	var got float64
	Float(reg, 0, 100, 1).
		WithEase(func(t float32) float32 { return t * 1.5 }).
		Bind(func(v float64) { got = v })

	sched.Advance(0.9)
	assert.InDelta(t, 135, got, 1e-3)
}

func TestTween_CallbackCancelsSibling(t *testing.T) {
	reg, sched := newTestRegistry()
	var b Handle
	canceled := 0
	a := Float(reg, 0, 1, 1).WithBindOnSchedule(false).Bind(func(float64) {
		reg.Cancel(b)
	})
	b = Float(reg, 0, 1, 1).OnCancel(func() { canceled++ }).Run()

	sched.Advance(0.1)
	assert.True(t, reg.IsActive(a))
	assert.False(t, reg.IsActive(b))
	assert.Equal(t, 1, canceled)
	assert.Equal(t, 1, reg.Len())
}

func TestTween_CallbackCancelsItself(t *testing.T) {
	reg, sched := newTestRegistry()
	var h Handle
	updates := 0
	h = Float(reg, 0, 1, 1).WithBindOnSchedule(false).Bind(func(float64) {
		updates++
		reg.Cancel(h)
	})

	sched.Advance(0.1)
	sched.Advance(0.1)
	assert.Equal(t, 1, updates)
	assert.Equal(t, 0, reg.Len())
}

func TestTween_CallbackAddsTween(t *testing.T) {
	reg, sched := newTestRegistry()
	var second Handle
	var got float64
	Float(reg, 0, 1, 0.5).OnComplete(func() {
		second = Float(reg, 0, 10, 1).Bind(func(v float64) { got = v })
	}).Run()

	sched.Advance(0.5)
	require.True(t, reg.IsActive(second))
	assert.Equal(t, StateScheduled, coreOf(t, reg, second).State)

	sched.Advance(0.5)
	assert.InDelta(t, 5, got, 1e-9)
}

func TestTween_TaskDiscardedWhenEmpty(t *testing.T) {
	reg, sched := newTestRegistry()
	Float(reg, 0, 1, 0.5).Run()
	assert.Equal(t, 1, sched.Len())

	sched.Advance(0.5)
	assert.Equal(t, 0, sched.Len())

	Float(reg, 0, 1, 0.5).Run()
	Float(reg, 0, 1, 0.5).Run()
	assert.Equal(t, 1, sched.Len(), "one task per repository")

	Int(reg, 0, 1, 0.5, RoundNearest).Run()
	assert.Equal(t, 2, sched.Len())
}

func TestTween_NoSchedulerReturnsInvalidHandle(t *testing.T) {
	reg := NewRegistry()
	h := Float(reg, 0, 1, 1).Run()
	assert.Equal(t, InvalidHandle, h)
	assert.False(t, h.IsValid())
	assert.False(t, reg.IsActive(h))
}
