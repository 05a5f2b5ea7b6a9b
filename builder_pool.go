package tween

import "math"

// buffer is the staged configuration of one builder.
type buffer[T, O any] struct {
	data    Data[T, O]
	managed Managed[T]
	sched   Scheduler

	bindOnSchedule bool
	scheduleOnBind bool
	preserve       bool

	revision uint16
	inUse    bool
}

// builderPool is an arena of builder buffers for one (T, O) pair. A builder
// refers to its buffer by index and remembers the revision it was issued
// with; releasing a buffer bumps the revision so stale builders fail.
type builderPool[T, O any] struct {
	buffers []buffer[T, O]
	free    []int32
}

type poolKey[T, O any] struct{}

func poolFor[T, O any](r *Registry) *builderPool[T, O] {
	r.checkOpen()
	if p, ok := r.pools[poolKey[T, O]{}]; ok {
		return p.(*builderPool[T, O])
	}
	p := &builderPool[T, O]{}
	r.pools[poolKey[T, O]{}] = p
	return p
}

func (p *builderPool[T, O]) acquire() (int32, uint16) {
	var i int32
	if n := len(p.free); n > 0 {
		i = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		i = int32(len(p.buffers))
		p.buffers = append(p.buffers, buffer[T, O]{})
	}
	b := &p.buffers[i]
	b.inUse = true
	return i, b.revision
}

// get returns the buffer issued as (i, rev), or nil when it was released.
func (p *builderPool[T, O]) get(i int32, rev uint16) *buffer[T, O] {
	if i < 0 || int(i) >= len(p.buffers) {
		return nil
	}
	b := &p.buffers[i]
	if !b.inUse || b.revision != rev {
		return nil
	}
	return b
}

// release clears the buffer and makes it available again. A buffer whose
// revision has reached the maximum is retired instead of wrapping around.
func (p *builderPool[T, O]) release(i int32) {
	b := &p.buffers[i]
	rev := b.revision
	*b = buffer[T, O]{}
	if rev == math.MaxUint16 {
		b.revision = rev
		return
	}
	b.revision = rev + 1
	p.free = append(p.free, i)
}

// live returns the number of buffers currently checked out.
func (p *builderPool[T, O]) live() int {
	n := 0
	for i := range p.buffers {
		if p.buffers[i].inUse {
			n++
		}
	}
	return n
}
