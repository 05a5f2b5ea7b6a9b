package tween

// LinkBehavior decides what happens to a linked tween when its owner is
// disabled or destroyed.
type LinkBehavior uint8

const (
	// ContinueAfterDisable pauses on Disable and resumes on Enable.
	ContinueAfterDisable LinkBehavior = iota
	// CompleteOnDisable completes the tween on Disable.
	CompleteOnDisable
	// CancelOnDisable cancels the tween on Disable.
	CancelOnDisable
	// CompleteOnDestroy keeps running through Disable and completes on
	// Destroy.
	CompleteOnDestroy
	// CancelOnDestroy keeps running through Disable and cancels on Destroy.
	CancelOnDestroy
)

type linked struct {
	h        Handle
	behavior LinkBehavior
}

// Link ties tweens to the lifetime of a host object. Call Disable, Enable
// and Destroy from the host's own lifecycle hooks. Handles that went stale
// are dropped the next time the link is touched.
type Link struct {
	reg     *Registry
	handles []linked
}

// NewLink creates an empty link for tweens of r.
func NewLink(r *Registry) *Link {
	return &Link{reg: r}
}

// Add links h with behavior b and returns h.
func (l *Link) Add(h Handle, b LinkBehavior) Handle {
	if h.IsValid() {
		l.handles = append(l.handles, linked{h: h, behavior: b})
	}
	return h
}

// Enable resumes tweens paused by Disable.
func (l *Link) Enable() {
	l.prune()
	for _, e := range l.handles {
		if e.behavior == ContinueAfterDisable {
			l.reg.Resume(e.h)
		}
	}
}

// Disable pauses, completes or cancels linked tweens by their behavior.
func (l *Link) Disable() {
	l.prune()
	for _, e := range l.handles {
		switch e.behavior {
		case ContinueAfterDisable:
			l.reg.Pause(e.h)
		case CompleteOnDisable:
			l.reg.Complete(e.h)
		case CancelOnDisable:
			l.reg.Cancel(e.h)
		}
	}
	l.prune()
}

// Destroy completes or cancels every linked tween and empties the link.
// Tweens linked with a disable behavior are canceled.
func (l *Link) Destroy() {
	handles := l.handles
	l.handles = nil
	for _, e := range handles {
		if e.behavior == CompleteOnDestroy {
			l.reg.Complete(e.h)
		} else {
			l.reg.Cancel(e.h)
		}
	}
}

// Active reports whether any linked tween is still active.
func (l *Link) Active() bool {
	l.prune()
	for _, e := range l.handles {
		if l.reg.IsActive(e.h) {
			return true
		}
	}
	return false
}

// Len returns the number of linked tweens that are still stored.
func (l *Link) Len() int {
	l.prune()
	return len(l.handles)
}

func (l *Link) prune() {
	kept := l.handles[:0]
	for _, e := range l.handles {
		if l.reg.IsActive(e.h) {
			kept = append(kept, e)
		}
	}
	clear(l.handles[len(kept):])
	l.handles = kept
}
