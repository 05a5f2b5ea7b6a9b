package tween

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsLifecycle(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m, err := NewMetrics("test", promReg)
	require.NoError(t, err)

	reg, sched := newTestRegistry(WithMetrics(m))
	Float(reg, 0, 1, 0.5).Run()
	Float(reg, 0, 1, 0.5).Run()
	h := Float(reg, 0, 1, 0.5).Run()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.scheduledTotal.WithLabelValues("float64")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeTweens.WithLabelValues("float64")))

	reg.Cancel(h)
	sched.Advance(0.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.completedTotal.WithLabelValues("float64")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.canceledTotal.WithLabelValues("float64")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.activeTweens.WithLabelValues("float64")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.tickDuration))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	promReg := prometheus.NewRegistry()
	_, err := NewMetrics("dup", promReg)
	require.NoError(t, err)
	_, err = NewMetrics("dup", promReg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.scheduled("x")
		m.completed("x")
		m.canceled("x")
		m.active("x", 3)
		m.tick("x", 0)
	})
}
