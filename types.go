package tween

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// State is the lifecycle phase of a tween.
type State uint8

const (
	StateIdle      State = iota // paused, or created without scheduling
	StateScheduled              // waiting for its first tick
	StateDelayed                // counting down the configured delay
	StateRunning                // emitting values every tick
	StateCompleted              // reached its end value (terminal)
	StateCanceled               // stopped without snapping (terminal)
)

var stateNames = [...]string{"idle", "scheduled", "delayed", "running", "completed", "canceled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether s is Completed or Canceled.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCanceled
}

// LoopType selects how consecutive loops are played.
type LoopType uint8

const (
	LoopRestart LoopType = iota // every loop plays from From to To
	LoopYoyo                    // odd loops play back from To to From
)

func (l LoopType) String() string {
	if l == LoopYoyo {
		return "yoyo"
	}
	return "restart"
}

// DelayType selects whether the delay is applied once or before every loop.
type DelayType uint8

const (
	DelayFirstLoop DelayType = iota // delay only before the first loop
	DelayEveryLoop                  // delay also between loops
)

func (d DelayType) String() string {
	if d == DelayEveryLoop {
		return "every-loop"
	}
	return "first-loop"
}

// DelayMode selects how the delay relates to the tween's duration.
type DelayMode uint8

const (
	// DelayAffectOnDuration excludes the delay from progress: the progress
	// clock restarts at zero once the delay has elapsed.
	DelayAffectOnDuration DelayMode = iota
	// DelaySkipValuesDuringDelay counts the delay toward the duration. No
	// values are emitted while the delay runs.
	DelaySkipValuesDuringDelay
)

func (d DelayMode) String() string {
	if d == DelaySkipValuesDuringDelay {
		return "skip-values"
	}
	return "affect-on-duration"
}

// TimeKind selects which of the scheduler's three clocks drives a tween.
type TimeKind uint8

const (
	TimeScaled   TimeKind = iota // game time, affected by the scheduler time scale
	TimeUnscaled                 // game time ignoring the time scale
	TimeReal                     // wall-clock time
)

func (k TimeKind) String() string {
	switch k {
	case TimeUnscaled:
		return "unscaled"
	case TimeReal:
		return "real"
	default:
		return "scaled"
	}
}
