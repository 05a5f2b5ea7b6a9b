package tween

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tanema/gween/ease"
)

// Ease maps the normalized loop parameter to the interpolation parameter.
// Results may leave [0, 1] (back, elastic) and are never clamped afterwards.
// A nil Ease is linear.
type Ease func(t float32) float32

// Apply evaluates e at t, treating nil as linear.
func (e Ease) Apply(t float32) float32 {
	if e == nil {
		return t
	}
	return e(t)
}

// Linear is the identity ease.
func Linear(t float32) float32 { return t }

// FromGween adapts a gween easing function to an Ease.
func FromGween(fn ease.TweenFunc) Ease {
	if fn == nil {
		return nil
	}
	return func(t float32) float32 {
		return fn(t, 0, 1, 1)
	}
}

var gweenCatalog = map[string]ease.TweenFunc{
	"Linear":       ease.Linear,
	"InQuad":       ease.InQuad,
	"OutQuad":      ease.OutQuad,
	"InOutQuad":    ease.InOutQuad,
	"OutInQuad":    ease.OutInQuad,
	"InCubic":      ease.InCubic,
	"OutCubic":     ease.OutCubic,
	"InOutCubic":   ease.InOutCubic,
	"OutInCubic":   ease.OutInCubic,
	"InQuart":      ease.InQuart,
	"OutQuart":     ease.OutQuart,
	"InOutQuart":   ease.InOutQuart,
	"OutInQuart":   ease.OutInQuart,
	"InQuint":      ease.InQuint,
	"OutQuint":     ease.OutQuint,
	"InOutQuint":   ease.InOutQuint,
	"OutInQuint":   ease.OutInQuint,
	"InSine":       ease.InSine,
	"OutSine":      ease.OutSine,
	"InOutSine":    ease.InOutSine,
	"OutInSine":    ease.OutInSine,
	"InExpo":       ease.InExpo,
	"OutExpo":      ease.OutExpo,
	"InOutExpo":    ease.InOutExpo,
	"OutInExpo":    ease.OutInExpo,
	"InCirc":       ease.InCirc,
	"OutCirc":      ease.OutCirc,
	"InOutCirc":    ease.InOutCirc,
	"OutInCirc":    ease.OutInCirc,
	"InElastic":    ease.InElastic,
	"OutElastic":   ease.OutElastic,
	"InOutElastic": ease.InOutElastic,
	"OutInElastic": ease.OutInElastic,
	"InBack":       ease.InBack,
	"OutBack":      ease.OutBack,
	"InOutBack":    ease.InOutBack,
	"OutInBack":    ease.OutInBack,
	"InBounce":     ease.InBounce,
	"OutBounce":    ease.OutBounce,
	"InOutBounce":  ease.InOutBounce,
	"OutInBounce":  ease.OutInBounce,
}

// EaseByName returns the gween easing function with the given name, such as
// "OutBounce". The error wraps ErrUnknownEase.
func EaseByName(name string) (Ease, error) {
	fn, ok := gweenCatalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	if name == "Linear" {
		return Linear, nil
	}
	return FromGween(fn), nil
}

// EaseNames lists the names accepted by EaseByName in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(gweenCatalog))
	for name := range gweenCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurvePoint is a keyframe of a Curve: the eased value V at parameter T.
type CurvePoint struct {
	T, V float32
}

// Curve builds a piecewise-linear ease through the given keyframes. Points
// are sorted by T; parameters outside the first and last keyframe hold the
// end values. With no points the curve is linear.
func Curve(points ...CurvePoint) Ease {
	if len(points) == 0 {
		return Linear
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b CurvePoint) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})
	return func(t float32) float32 {
		if t <= pts[0].T {
			return pts[0].V
		}
		last := pts[len(pts)-1]
		if t >= last.T {
			return last.V
		}
		i, _ := slices.BinarySearchFunc(pts, t, func(p CurvePoint, t float32) int {
			switch {
			case p.T < t:
				return -1
			case p.T > t:
				return 1
			}
			return 0
		})
		// pts[i-1].T < t <= pts[i].T
		a, b := pts[i-1], pts[i]
		if b.T == a.T {
			return b.V
		}
		return lerp32(a.V, b.V, (t-a.T)/(b.T-a.T))
	}
}
