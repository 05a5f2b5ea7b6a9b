package tween

// EventKind identifies a lifecycle transition.
type EventKind uint8

const (
	EventStarted EventKind = iota
	EventStartedAfterDelay
	EventPaused
	EventResumed
	EventCompleted
	EventCanceled
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStartedAfterDelay:
		return "started_after_delay"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventCompleted:
		return "completed"
	case EventCanceled:
		return "canceled"
	}
	return "unknown"
}

// Event describes one lifecycle transition of a tween.
type Event struct {
	Kind           EventKind
	Handle         Handle
	RepositoryType string
}

// EventSink receives lifecycle events from every repository of a Registry.
// Events are emitted synchronously before the matching per-tween callback.
type EventSink interface {
	EmitEvent(Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent implements EventSink.
func (f EventSinkFunc) EmitEvent(e Event) { f(e) }
