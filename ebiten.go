package tween

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameScheduler is a Scheduler driven by the Ebitengine game loop. Call
// Update from your ebiten.Game Update method, once per tick:
//
//	func (g *Game) Update() error {
//		g.tweens.Update()
//		return nil
//	}
//
// Each call advances the unscaled clock by one tick (1/TPS seconds), the
// scaled clock by that amount times TimeScale, and the real clock to the
// wall time elapsed since the scheduler was created.
type FrameScheduler struct {
	TimeScale float64

	start time.Time
	now   Clock
	tasks taskList
}

// NewFrameScheduler creates a scheduler with a time scale of 1.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{TimeScale: 1, start: time.Now()}
}

// Now returns the current clock readings.
func (s *FrameScheduler) Now() Clock {
	return s.now
}

// Schedule registers task to be ticked from the next Update on.
func (s *FrameScheduler) Schedule(task Task) {
	s.tasks.add(task)
}

// Update advances the clocks by one ebiten tick and runs all tasks.
func (s *FrameScheduler) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	s.now.Scaled += dt * s.TimeScale
	s.now.Unscaled += dt
	s.now.Real = time.Since(s.start).Seconds()
	s.tasks.run(s.now)
}

// Len returns the number of registered tasks.
func (s *FrameScheduler) Len() int {
	return s.tasks.len()
}
