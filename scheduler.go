package tween

// Clock holds the three monotonic time readings of a scheduler, in seconds.
type Clock struct {
	Scaled   float64
	Unscaled float64
	Real     float64
}

// Sub returns the per-clock difference c - prev.
func (c Clock) Sub(prev Clock) Clock {
	return Clock{
		Scaled:   c.Scaled - prev.Scaled,
		Unscaled: c.Unscaled - prev.Unscaled,
		Real:     c.Real - prev.Real,
	}
}

// Pick returns the reading selected by kind.
func (c Clock) Pick(kind TimeKind) float64 {
	switch kind {
	case TimeUnscaled:
		return c.Unscaled
	case TimeReal:
		return c.Real
	default:
		return c.Scaled
	}
}

// Task is a unit of per-tick work. Update receives the scheduler clock and
// returns true when the task is finished and must not be ticked again.
type Task interface {
	Update(now Clock) (done bool)
}

// Scheduler drives tasks once per tick. Implementations are single-threaded:
// Now, Schedule and the tick itself must run on the same goroutine.
type Scheduler interface {
	Now() Clock
	Schedule(task Task)
}

// taskList runs registered tasks and drops the ones that report done.
// Tasks scheduled while a tick is running join after that tick.
type taskList struct {
	tasks   []Task
	pending []Task
	ticking bool
}

func (l *taskList) add(task Task) {
	if l.ticking {
		l.pending = append(l.pending, task)
		return
	}
	l.tasks = append(l.tasks, task)
}

func (l *taskList) run(now Clock) {
	l.ticking = true
	kept := l.tasks[:0]
	for _, task := range l.tasks {
		if !task.Update(now) {
			kept = append(kept, task)
		}
	}
	clear(l.tasks[len(kept):])
	l.tasks = append(kept, l.pending...)
	clear(l.pending)
	l.pending = l.pending[:0]
	l.ticking = false
}

func (l *taskList) len() int {
	return len(l.tasks) + len(l.pending)
}

// ManualScheduler is a Scheduler advanced explicitly by the caller. It is the
// scheduler for tests, tools and hosts that own their own loop.
type ManualScheduler struct {
	// TimeScale multiplies deltas passed to Advance for the scaled clock.
	TimeScale float64

	now   Clock
	tasks taskList
}

// NewManualScheduler creates a scheduler with all clocks at zero and a time
// scale of 1.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{TimeScale: 1}
}

// Now returns the current clock readings.
func (s *ManualScheduler) Now() Clock {
	return s.now
}

// Schedule registers task to be ticked from the next Tick on.
func (s *ManualScheduler) Schedule(task Task) {
	s.tasks.add(task)
}

// Advance moves every clock forward by dt (the scaled clock by
// dt*TimeScale) and ticks all tasks.
func (s *ManualScheduler) Advance(dt float64) {
	s.now.Scaled += dt * s.TimeScale
	s.now.Unscaled += dt
	s.now.Real += dt
	s.tasks.run(s.now)
}

// AdvanceClock moves each clock forward by the matching field of delta and
// ticks all tasks.
func (s *ManualScheduler) AdvanceClock(delta Clock) {
	s.now.Scaled += delta.Scaled
	s.now.Unscaled += delta.Unscaled
	s.now.Real += delta.Real
	s.tasks.run(s.now)
}

// Tick runs all tasks without moving the clocks.
func (s *ManualScheduler) Tick() {
	s.tasks.run(s.now)
}

// Len returns the number of registered tasks.
func (s *ManualScheduler) Len() int {
	return s.tasks.len()
}
