package tween

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports tween counters to Prometheus. All methods are safe to call
// on a nil *Metrics, which records nothing.
type Metrics struct {
	scheduledTotal *prometheus.CounterVec
	completedTotal *prometheus.CounterVec
	canceledTotal  *prometheus.CounterVec
	activeTweens   *prometheus.GaugeVec
	tickDuration   *prometheus.HistogramVec
}

// NewMetrics creates the tween collectors under namespace and registers them
// with reg. A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		scheduledTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tweens_scheduled_total",
				Help:      "Total number of tweens added to a repository",
			},
			[]string{"type"},
		),
		completedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tweens_completed_total",
				Help:      "Total number of tweens that completed",
			},
			[]string{"type"},
		),
		canceledTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tweens_canceled_total",
				Help:      "Total number of tweens that were canceled",
			},
			[]string{"type"},
		),
		activeTweens: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tweens_active",
				Help:      "Current number of stored tweens",
			},
			[]string{"type"},
		),
		tickDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tick_duration_seconds",
				Help:      "Duration of one repository update in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"type"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.scheduledTotal,
		m.completedTotal,
		m.canceledTotal,
		m.activeTweens,
		m.tickDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) scheduled(typ string) {
	if m == nil {
		return
	}
	m.scheduledTotal.WithLabelValues(typ).Inc()
}

func (m *Metrics) completed(typ string) {
	if m == nil {
		return
	}
	m.completedTotal.WithLabelValues(typ).Inc()
}

func (m *Metrics) canceled(typ string) {
	if m == nil {
		return
	}
	m.canceledTotal.WithLabelValues(typ).Inc()
}

func (m *Metrics) active(typ string, n int) {
	if m == nil {
		return
	}
	m.activeTweens.WithLabelValues(typ).Set(float64(n))
}

func (m *Metrics) tick(typ string, d time.Duration) {
	if m == nil {
		return
	}
	m.tickDuration.WithLabelValues(typ).Observe(d.Seconds())
}
