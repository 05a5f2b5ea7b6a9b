package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventSink_ReceivesLifecycle(t *testing.T) {
	var kinds []EventKind
	var handles []Handle
	sink := EventSinkFunc(func(e Event) {
		kinds = append(kinds, e.Kind)
		handles = append(handles, e.Handle)
		assert.Equal(t, "float64", e.RepositoryType)
	})
	reg, sched := newTestRegistry(WithEventSink(sink))

	h := Float(reg, 0, 1, 1).WithDelay(0.25, DelayFirstLoop, DelayAffectOnDuration).Run()
	sched.Advance(0.25)
	sched.Advance(0.25)
	reg.Pause(h)
	reg.Resume(h)
	reg.Complete(h)

	assert.Equal(t, []EventKind{
		EventStarted,
		EventStartedAfterDelay,
		EventPaused,
		EventResumed,
		EventCompleted,
	}, kinds)
	for _, got := range handles {
		assert.Equal(t, h, got)
	}

	h2 := Float(reg, 0, 1, 1).Run()
	reg.Cancel(h2)
	assert.Equal(t, EventCanceled, kinds[len(kinds)-1])
	assert.Equal(t, "canceled", EventCanceled.String())
}
