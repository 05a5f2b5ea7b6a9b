package tween

import "fmt"

// Handle identifies one tween. It is a generational reference: it stays valid
// only while the slot it names has not been freed or reused since the handle
// was issued. Handles are plain values, safe to copy and compare with ==.
type Handle struct {
	Slot         int32
	RepositoryID int32
	Version      int32
}

// InvalidHandle is the sentinel returned when no tween was scheduled.
var InvalidHandle = Handle{Slot: -1, RepositoryID: -1, Version: -1}

// IsValid reports whether h is not the sentinel. It does not tell whether the
// tween is still alive; use Registry.IsActive for that.
func (h Handle) IsValid() bool {
	return h != InvalidHandle
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d@%d)", h.RepositoryID, h.Slot, h.Version)
}
