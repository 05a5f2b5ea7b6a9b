package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestEase_NilIsLinear(t *testing.T) {
	var e Ease
	assert.Equal(t, float32(0.3), e.Apply(0.3))
	assert.Equal(t, float32(0.3), Linear(0.3))
}

func TestEaseByName_MatchesCatalog(t *testing.T) {
	for _, name := range EaseNames() {
		e, err := EaseByName(name)
		require.NoError(t, err, name)
		fn := gweenCatalog[name]
		for _, p := range []float32{0, 0.1, 0.5, 0.9, 1} {
			assert.InDelta(t, fn(p, 0, 1, 1), e(p), 1e-6, "%s(%v)", name, p)
		}
	}
}

func TestEaseByName_Unknown(t *testing.T) {
	_, err := EaseByName("OutWobble")
	assert.ErrorIs(t, err, ErrUnknownEase)
}

func TestEaseNames_Sorted(t *testing.T) {
	names := EaseNames()
	assert.Len(t, names, len(gweenCatalog))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "OutBounce")
}

func TestFromGween(t *testing.T) {
	assert.Nil(t, FromGween(nil))
	e := FromGween(ease.InQuad)
	assert.InDelta(t, 0.25, e(0.5), 1e-6)
}

// The engine must agree with gween's own tween for every eased value.
func TestTween_MatchesGweenOracle(t *testing.T) {
	for _, name := range []string{"OutQuad", "InOutCubic", "OutBounce", "InBack", "OutElastic"} {
		t.Run(name, func(t *testing.T) {
			reg, sched := newTestRegistry()
			var got float32
			Float32(reg, 10, 90, 2).
				WithEaseName(name).
				WithBindOnSchedule(false).
				Bind(func(v float32) { got = v })

			oracle := gween.New(10, 90, 2, gweenCatalog[name])
			for range 7 {
				sched.Advance(0.25)
				want, _ := oracle.Update(0.25)
				assert.InDelta(t, want, got, 1e-3)
			}
		})
	}
}

func TestCurve(t *testing.T) {
	c := Curve(
		CurvePoint{T: 1, V: 1},
		CurvePoint{T: 0, V: 0},
		CurvePoint{T: 0.5, V: 0.8},
	)
	assert.Equal(t, float32(0), c(-1))
	assert.Equal(t, float32(0), c(0))
	assert.InDelta(t, 0.4, c(0.25), 1e-6)
	assert.InDelta(t, 0.8, c(0.5), 1e-6)
	assert.InDelta(t, 0.9, c(0.75), 1e-6)
	assert.Equal(t, float32(1), c(2))

	assert.Equal(t, float32(0.6), Curve()(0.6))
	assert.Equal(t, float32(0.3), Curve(CurvePoint{T: 0.5, V: 0.3})(0.9))
}
