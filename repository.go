package tween

import (
	"fmt"

	"github.com/rs/zerolog"
)

// entry is the sparse slot metadata. next links free slots, dense is -1 while
// the slot is free, and version counts every free/used transition.
type entry struct {
	next    int32
	dense   int32
	version int32
}

// repository is the type-erased view of a Repository used by the Registry to
// route handles and run bulk operations.
type repository interface {
	ID() int32
	TypeName() string
	Valid(h Handle) bool
	IsActive(h Handle) bool
	Pause(h Handle) bool
	Resume(h Handle) bool
	Cancel(h Handle) bool
	Complete(h Handle) bool
	CoreRef(h Handle) (*Core, error)
	CancelAll()
	CompleteAll()
	EnsureCapacity(n int)
	Len() int
	detach()
}

// Repository stores the active tweens of one (value, options, adapter)
// combination for one scheduler. Tweens live in dense slices that are
// compacted by swap-removal; handles address them through sparse entries
// that carry a generation counter.
//
// A Repository is not safe for concurrent use. All calls, including the
// callbacks it invokes, happen on the scheduler's goroutine.
type Repository[T, O any, A Adapter[T, O]] struct {
	id       int32
	typeName string

	entries  []entry
	freeHead int32

	denseToSparse []int32
	data          []Data[T, O]
	managed       []Managed[T]

	// busy counts nested scans. While it is non-zero, removals are queued
	// in pending (as sparse slots) and applied when the outermost scan ends.
	busy    int
	pending []int32

	sched Scheduler
	task  *updateTask[T, O, A]

	log     zerolog.Logger
	metrics *Metrics
	events  EventSink
	debug   bool
}

func newRepository[T, O any, A Adapter[T, O]](id int32, sched Scheduler, env *environment) *Repository[T, O, A] {
	var zero T
	r := &Repository[T, O, A]{
		id:       id,
		typeName: fmt.Sprintf("%T", zero),
		freeHead: -1,
		sched:    sched,
	}
	if env != nil {
		r.log = env.log.With().
			Str("component", "repository").
			Int32("repository", id).
			Str("type", r.typeName).
			Logger()
		r.metrics = env.metrics
		r.events = env.events
		r.debug = env.debug
	} else {
		r.log = zerolog.Nop()
	}
	return r
}

// ID returns the repository id carried by every handle it issues.
func (r *Repository[T, O, A]) ID() int32 { return r.id }

// TypeName returns the value type name used in logs and metric labels.
func (r *Repository[T, O, A]) TypeName() string { return r.typeName }

// Len returns the number of stored tweens, including tweens that reached a
// terminal state during the current scan and are waiting for removal.
func (r *Repository[T, O, A]) Len() int { return len(r.data) }

// Scheduler returns the scheduler that drives this repository.
func (r *Repository[T, O, A]) Scheduler() Scheduler { return r.sched }

// Add stores a tween and returns its handle. If no update task is running
// for the repository, one is registered with the scheduler.
func (r *Repository[T, O, A]) Add(d Data[T, O], m Managed[T]) Handle {
	slot := r.freeHead
	if slot == -1 {
		slot = int32(len(r.entries))
		r.entries = append(r.entries, entry{next: -1, dense: -1})
	} else {
		r.freeHead = r.entries[slot].next
	}

	e := &r.entries[slot]
	e.next = -1
	e.dense = int32(len(r.data))
	e.version++

	r.denseToSparse = append(r.denseToSparse, slot)
	r.data = append(r.data, d)
	r.managed = append(r.managed, m)

	h := Handle{Slot: slot, RepositoryID: r.id, Version: e.version}
	r.metrics.scheduled(r.typeName)
	r.metrics.active(r.typeName, len(r.data))
	if r.debug {
		r.log.Debug().Stringer("handle", h).Msg("tween added")
	}
	r.wake()
	return h
}

// wake registers the update task if the repository has none.
func (r *Repository[T, O, A]) wake() {
	if r.task != nil || r.sched == nil {
		return
	}
	r.task = &updateTask[T, O, A]{repo: r, last: r.sched.Now()}
	r.sched.Schedule(r.task)
	if r.debug {
		r.log.Debug().Msg("update task registered")
	}
}

// detach drops the update task; it finishes on its next tick.
func (r *Repository[T, O, A]) detach() {
	r.task = nil
	r.sched = nil
}

// RemoveAt removes the tween at dense index i. During a scan the removal is
// deferred to the end of the scan.
func (r *Repository[T, O, A]) RemoveAt(i int) {
	if i < 0 || i >= len(r.data) {
		return
	}
	r.remove(r.denseToSparse[i])
}

func (r *Repository[T, O, A]) remove(slot int32) {
	if r.busy > 0 {
		r.pending = append(r.pending, slot)
		return
	}
	r.removeSlot(slot)
	r.metrics.active(r.typeName, len(r.data))
}

// removeSlot frees a used slot: the last dense element is swapped into the
// freed position and its entry retargeted through denseToSparse.
func (r *Repository[T, O, A]) removeSlot(slot int32) {
	e := &r.entries[slot]
	if e.dense == -1 {
		return
	}
	i := e.dense
	last := int32(len(r.data) - 1)
	if i != last {
		r.data[i] = r.data[last]
		r.managed[i] = r.managed[last]
		moved := r.denseToSparse[last]
		r.denseToSparse[i] = moved
		r.entries[moved].dense = i
	}
	r.data[last] = Data[T, O]{}
	r.managed[last] = Managed[T]{}
	r.data = r.data[:last]
	r.managed = r.managed[:last]
	r.denseToSparse = r.denseToSparse[:last]

	e.dense = -1
	e.version++
	e.next = r.freeHead
	r.freeHead = slot

	if r.debug {
		r.log.Debug().Int32("slot", slot).Msg("tween removed")
	}
}

// flush applies all queued removals and returns how many slots were freed.
func (r *Repository[T, O, A]) flush() int {
	n := 0
	for _, slot := range r.pending {
		if r.entries[slot].dense != -1 {
			r.removeSlot(slot)
			n++
		}
	}
	clear(r.pending)
	r.pending = r.pending[:0]
	if n > 0 {
		r.metrics.active(r.typeName, len(r.data))
	}
	return n
}

func (r *Repository[T, O, A]) enter() { r.busy++ }

func (r *Repository[T, O, A]) leave() int {
	r.busy--
	if r.busy > 0 {
		return 0
	}
	return r.flush()
}

// Valid reports whether h names a stored tween of this repository.
func (r *Repository[T, O, A]) Valid(h Handle) bool {
	_, ok := r.lookup(h)
	return ok
}

func (r *Repository[T, O, A]) lookup(h Handle) (int, bool) {
	if h.RepositoryID != r.id || h.Slot < 0 || int(h.Slot) >= len(r.entries) {
		return 0, false
	}
	e := r.entries[h.Slot]
	if e.version != h.Version || e.dense == -1 {
		return 0, false
	}
	return int(e.dense), true
}

func (r *Repository[T, O, A]) handleAt(i int) Handle {
	slot := r.denseToSparse[i]
	return Handle{Slot: slot, RepositoryID: r.id, Version: r.entries[slot].version}
}

// CoreRef returns a pointer to the core state of h. The pointer is only
// valid until the next Add or removal.
func (r *Repository[T, O, A]) CoreRef(h Handle) (*Core, error) {
	i, ok := r.lookup(h)
	if !ok {
		return nil, fmt.Errorf("core of %v: %w", h, ErrInvalidHandle)
	}
	return &r.data[i].Core, nil
}

// DataRef returns a pointer to the data record of h. The pointer is only
// valid until the next Add or removal.
func (r *Repository[T, O, A]) DataRef(h Handle) (*Data[T, O], error) {
	i, ok := r.lookup(h)
	if !ok {
		return nil, fmt.Errorf("data of %v: %w", h, ErrInvalidHandle)
	}
	return &r.data[i], nil
}

// ManagedRef returns a pointer to the managed record of h. The pointer is
// only valid until the next Add or removal.
func (r *Repository[T, O, A]) ManagedRef(h Handle) (*Managed[T], error) {
	i, ok := r.lookup(h)
	if !ok {
		return nil, fmt.Errorf("managed data of %v: %w", h, ErrInvalidHandle)
	}
	return &r.managed[i], nil
}

// IsActive reports whether h names a stored tween that has not reached a
// terminal state.
func (r *Repository[T, O, A]) IsActive(h Handle) bool {
	i, ok := r.lookup(h)
	return ok && !r.data[i].Core.State.Terminal()
}

// Pause moves a running tween to Idle and reports whether it did.
func (r *Repository[T, O, A]) Pause(h Handle) bool {
	i, ok := r.lookup(h)
	if !ok || r.data[i].Core.State != StateRunning {
		return false
	}
	r.data[i].Core.State = StateIdle
	r.emit(EventPaused, h)
	callIf(r.managed[i].OnPause)
	return true
}

// Resume moves an Idle tween back into play and reports whether it did. A
// tween that was never started is scheduled again, one paused before its
// endpoints were resolved resumes in the Delayed state.
func (r *Repository[T, O, A]) Resume(h Handle) bool {
	i, ok := r.lookup(h)
	if !ok || r.data[i].Core.State != StateIdle {
		return false
	}
	c := &r.data[i].Core
	switch {
	case !c.started:
		c.State = StateScheduled
	case !c.live:
		c.State = StateDelayed
	default:
		c.State = StateRunning
	}
	r.emit(EventResumed, h)
	callIf(r.managed[i].OnResume)
	return true
}

// Cancel stops a tween without emitting a value and reports whether it did.
// Canceling a stale or finished handle is a no-op.
func (r *Repository[T, O, A]) Cancel(h Handle) bool {
	i, ok := r.lookup(h)
	if !ok || r.data[i].Core.State.Terminal() {
		return false
	}
	r.enter()
	r.cancelAt(i)
	r.leave()
	return true
}

// Complete jumps a tween to its final value and reports whether it did.
// Completing a stale or finished handle is a no-op.
func (r *Repository[T, O, A]) Complete(h Handle) bool {
	i, ok := r.lookup(h)
	if !ok || r.data[i].Core.State.Terminal() {
		return false
	}
	r.enter()
	r.completeAt(i)
	r.leave()
	return true
}

// cancelAt must be called inside enter/leave.
func (r *Repository[T, O, A]) cancelAt(i int) {
	h := r.handleAt(i)
	r.data[i].Core.State = StateCanceled
	r.remove(h.Slot)
	r.metrics.canceled(r.typeName)
	r.emit(EventCanceled, h)
	callIf(r.managed[i].OnCancel)
}

// completeAt must be called inside enter/leave.
func (r *Repository[T, O, A]) completeAt(i int) {
	h := r.handleAt(i)
	c := &r.data[i].Core
	if !c.live {
		r.resolve(i)
		c = &r.data[i].Core
		c.started, c.live = true, true
	}
	total, _ := c.Durations()
	if c.LoopCount <= 0 {
		total = float64(c.Duration)
	}
	c.Time = total
	r.finish(i, h, c.finalProgress())
}

// finish delivers the final value, marks the tween completed and queues it
// for removal.
func (r *Repository[T, O, A]) finish(i int, h Handle, t float32) {
	v := evaluate[T, O, A](&r.data[i], r.managed[i].Ease, t)
	r.data[i].Core.State = StateCompleted
	r.remove(h.Slot)
	r.metrics.completed(r.typeName)
	r.managed[i].deliver(v)
	r.emit(EventCompleted, h)
	callIf(r.managed[i].OnComplete)
}

// resolve replaces the endpoints with the getter results, if any.
func (r *Repository[T, O, A]) resolve(i int) {
	m := &r.managed[i]
	var from, to T
	hasFrom, hasTo := m.FromFunc != nil, m.ToFunc != nil
	if hasFrom {
		from = m.FromFunc()
	}
	if hasTo {
		to = m.ToFunc()
	}
	d := &r.data[i]
	if hasFrom {
		d.From = from
	}
	if hasTo {
		d.To = to
	}
}

// CancelAll cancels every stored tween. Outside a scan the repository is
// then reset, which invalidates every outstanding handle.
func (r *Repository[T, O, A]) CancelAll() {
	r.all(r.cancelAt)
}

// CompleteAll completes every stored tween. Outside a scan the repository
// is then reset, which invalidates every outstanding handle.
func (r *Repository[T, O, A]) CompleteAll() {
	r.all(r.completeAt)
}

func (r *Repository[T, O, A]) all(fn func(i int)) {
	nested := r.busy > 0
	r.busy++
	n := len(r.data)
	for i := 0; i < n; i++ {
		if r.data[i].Core.State.Terminal() {
			continue
		}
		fn(i)
	}
	r.busy--
	if nested {
		return
	}
	if len(r.data) == n {
		r.reset()
		return
	}
	// Callbacks added tweens that must survive; fall back to batch removal.
	r.flush()
}

// reset frees every slot at once. Versions of used slots are bumped and the
// freelist is rebuilt in ascending slot order.
func (r *Repository[T, O, A]) reset() {
	r.freeHead = -1
	for slot := len(r.entries) - 1; slot >= 0; slot-- {
		e := &r.entries[slot]
		if e.dense != -1 {
			e.dense = -1
			e.version++
		}
		e.next = r.freeHead
		r.freeHead = int32(slot)
	}
	clear(r.data)
	clear(r.managed)
	r.data = r.data[:0]
	r.managed = r.managed[:0]
	r.denseToSparse = r.denseToSparse[:0]
	clear(r.pending)
	r.pending = r.pending[:0]

	r.metrics.active(r.typeName, 0)
	if r.debug {
		r.log.Debug().Int("slots", len(r.entries)).Msg("repository reset")
	}
}

// EnsureCapacity grows storage so that at least n tweens fit without
// reallocation. Existing handles stay valid.
func (r *Repository[T, O, A]) EnsureCapacity(n int) {
	if grow := n - len(r.entries); grow > 0 {
		first := int32(len(r.entries))
		r.entries = append(r.entries, make([]entry, grow)...)
		for slot := int32(len(r.entries) - 1); slot >= first; slot-- {
			r.entries[slot] = entry{next: r.freeHead, dense: -1}
			r.freeHead = slot
		}
	}
	if n > cap(r.data) {
		data := make([]Data[T, O], len(r.data), n)
		copy(data, r.data)
		r.data = data
		managed := make([]Managed[T], len(r.managed), n)
		copy(managed, r.managed)
		r.managed = managed
		dts := make([]int32, len(r.denseToSparse), n)
		copy(dts, r.denseToSparse)
		r.denseToSparse = dts
	}
}

// tick advances every stored tween by delta and removes the ones that
// finished. It returns the number of removed tweens.
func (r *Repository[T, O, A]) tick(delta Clock) int {
	r.enter()
	n := len(r.data)
	for i := 0; i < n; i++ {
		r.step(i, delta)
	}
	removed := r.leave()
	if r.debug {
		r.checkInvariants()
	}
	return removed
}

// step runs the state machine of the tween at dense index i. Callbacks may
// append to the dense slices, so every access after a callback indexes them
// again.
func (r *Repository[T, O, A]) step(i int, delta Clock) {
	switch r.data[i].Core.State {
	case StateIdle:
		return
	case StateCompleted, StateCanceled:
		r.remove(r.denseToSparse[i])
		return
	case StateScheduled:
		if !r.start(i) {
			return
		}
	}

	c := &r.data[i].Core
	c.Time += delta.Pick(c.TimeKind) * float64(c.PlaybackSpeed)

	if c.State == StateDelayed {
		if c.Time < float64(c.Delay) {
			return
		}
		if c.DelayMode == DelayAffectOnDuration {
			c.Time -= float64(c.Delay)
		}
		if !r.startDelayed(i) {
			return
		}
		c = &r.data[i].Core
	}
	if c.State != StateRunning {
		return
	}

	t, finished := c.progress()
	if finished {
		total, _ := c.Durations()
		c.Time = total
		r.finish(i, r.handleAt(i), t)
		return
	}
	v := evaluate[T, O, A](&r.data[i], r.managed[i].Ease, t)
	r.managed[i].deliver(v)
}

// start runs the start transition. It reports whether the tween is still in
// play afterwards.
func (r *Repository[T, O, A]) start(i int) bool {
	c := &r.data[i].Core
	c.started = true
	if c.Delay > 0 {
		c.State = StateDelayed
	} else {
		c.State = StateRunning
	}
	r.emit(EventStarted, r.handleAt(i))
	callIf(r.managed[i].OnStart)

	c = &r.data[i].Core
	switch c.State {
	case StateDelayed:
		return true
	case StateRunning:
		return r.startDelayed(i)
	}
	return false
}

// startDelayed resolves the endpoints and enters Running. It reports
// whether the tween is still running after OnStartDelayed.
func (r *Repository[T, O, A]) startDelayed(i int) bool {
	r.resolve(i)
	c := &r.data[i].Core
	c.live = true
	c.State = StateRunning
	r.emit(EventStartedAfterDelay, r.handleAt(i))
	callIf(r.managed[i].OnStartDelayed)
	return r.data[i].Core.State == StateRunning
}

func (r *Repository[T, O, A]) emit(kind EventKind, h Handle) {
	if r.events == nil {
		return
	}
	r.events.EmitEvent(Event{Kind: kind, Handle: h, RepositoryType: r.typeName})
}
