package tween

import "time"

// updateTask drives one repository. It remembers the clock of its previous
// tick and discards itself once the repository is empty; the repository
// registers a fresh task on the next Add.
type updateTask[T, O any, A Adapter[T, O]] struct {
	repo *Repository[T, O, A]
	last Clock
	done bool
}

// Update implements Task.
func (t *updateTask[T, O, A]) Update(now Clock) bool {
	r := t.repo
	if t.done || r.task != t {
		return true
	}
	delta := now.Sub(t.last)
	t.last = now

	start := time.Now()
	removed := r.tick(delta)
	elapsed := time.Since(start)
	r.metrics.tick(r.typeName, elapsed)
	if r.debug {
		r.log.Debug().
			Int("count", len(r.data)).
			Int("removed", removed).
			Dur("duration", elapsed).
			Msg("tick")
	}

	if len(r.data) == 0 {
		t.done = true
		r.task = nil
		if r.debug {
			r.log.Debug().Msg("update task discarded")
		}
		return true
	}
	return false
}
