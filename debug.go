package tween

import "fmt"

// checkInvariants panics when the sparse and dense views of the repository
// disagree. Only called in debug mode, after every tick.
func (r *Repository[T, O, A]) checkInvariants() {
	n := len(r.data)
	if len(r.managed) != n || len(r.denseToSparse) != n {
		panic(fmt.Sprintf("tween debug: repository %d: dense lengths differ (data %d, managed %d, sparse %d)",
			r.id, n, len(r.managed), len(r.denseToSparse)))
	}
	used := 0
	for slot, e := range r.entries {
		if e.dense == -1 {
			continue
		}
		used++
		if int(e.dense) >= n {
			panic(fmt.Sprintf("tween debug: repository %d: slot %d points past dense end (%d >= %d)",
				r.id, slot, e.dense, n))
		}
		if r.denseToSparse[e.dense] != int32(slot) {
			panic(fmt.Sprintf("tween debug: repository %d: slot %d -> dense %d -> slot %d",
				r.id, slot, e.dense, r.denseToSparse[e.dense]))
		}
	}
	if used != n {
		panic(fmt.Sprintf("tween debug: repository %d: %d used slots for %d tweens", r.id, used, n))
	}
}

// debugCheckBuilder panics with a descriptive error when a builder is used
// after it was consumed or before it was initialized.
func debugCheckBuilder(err error, op string) {
	if err != nil {
		panic(fmt.Errorf("tween: %s: %w", op, err))
	}
}
