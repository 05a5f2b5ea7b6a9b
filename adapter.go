package tween

import "math"

// Adapter interpolates two values of type T at parameter t using options O.
// Implementations must be pure and deterministic. Adapters are used through
// their zero value, so they are normally empty structs.
type Adapter[T, O any] interface {
	Evaluate(from, to T, opts O, t float32) T
}

// NoOptions is the options type of adapters that take no options.
type NoOptions struct{}

// FloatAdapter interpolates float64 values.
type FloatAdapter struct{}

func (FloatAdapter) Evaluate(from, to float64, _ NoOptions, t float32) float64 {
	return lerp(from, to, float64(t))
}

// Float32Adapter interpolates float32 values.
type Float32Adapter struct{}

func (Float32Adapter) Evaluate(from, to float32, _ NoOptions, t float32) float32 {
	return lerp32(from, to, t)
}

// Rounding selects how IntAdapter converts interpolated values to integers.
type Rounding uint8

const (
	RoundNearest  Rounding = iota // half away from zero
	RoundCeil                     // toward +Inf
	RoundFloor                    // toward -Inf
	RoundTruncate                 // toward zero
)

// IntOptions configures IntAdapter.
type IntOptions struct {
	Rounding Rounding
}

// Round converts v to an int according to the rounding mode.
func (o IntOptions) Round(v float64) int {
	switch o.Rounding {
	case RoundCeil:
		return int(math.Ceil(v))
	case RoundFloor:
		return int(math.Floor(v))
	case RoundTruncate:
		return int(v)
	default:
		return int(math.Round(v))
	}
}

// IntAdapter interpolates integers, rounding each result.
type IntAdapter struct{}

func (IntAdapter) Evaluate(from, to int, opts IntOptions, t float32) int {
	return opts.Round(lerp(float64(from), float64(to), float64(t)))
}

// ColorOptions configures ColorAdapter.
type ColorOptions struct {
	// UseAlpha interpolates alpha too. When false the alpha of From is kept.
	UseAlpha bool
}

// ColorAdapter interpolates colors component-wise.
type ColorAdapter struct{}

func (ColorAdapter) Evaluate(from, to Color, opts ColorOptions, t float32) Color {
	if !opts.UseAlpha {
		to.A = from.A
	}
	f := float64(t)
	return Color{
		R: lerp(from.R, to.R, f),
		G: lerp(from.G, to.G, f),
		B: lerp(from.B, to.B, f),
		A: lerp(from.A, to.A, f),
	}
}

// Vec2Adapter interpolates 2D vectors.
type Vec2Adapter struct{}

func (Vec2Adapter) Evaluate(from, to Vec2, _ NoOptions, t float32) Vec2 {
	f := float64(t)
	return Vec2{X: lerp(from.X, to.X, f), Y: lerp(from.Y, to.Y, f)}
}

// Vec3Adapter interpolates 3D vectors.
type Vec3Adapter struct{}

func (Vec3Adapter) Evaluate(from, to Vec3, _ NoOptions, t float32) Vec3 {
	f := float64(t)
	return Vec3{X: lerp(from.X, to.X, f), Y: lerp(from.Y, to.Y, f), Z: lerp(from.Z, to.Z, f)}
}

// lerp linearly interpolates between a and b by t without clamping.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerp32 linearly interpolates between a and b by t (float32).
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
