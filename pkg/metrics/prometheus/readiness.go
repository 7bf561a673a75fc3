package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chinookhq/chinook-api/pkg/metrics"
	"github.com/chinookhq/chinook-api/pkg/readiness"
)

type readinessMetrics struct {
	attempts *prometheus.CounterVec
	state    prometheus.Gauge
}

// NewReadinessMetrics returns a readiness.Metrics backed by Prometheus, or
// nil when metrics are disabled.
func NewReadinessMetrics() readiness.Metrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &readinessMetrics{
		attempts: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chinook_readiness_attempts_total",
				Help: "Total number of database readiness probe attempts by result",
			},
			[]string{"result"}, // "success", "failure"
		),
		state: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "chinook_readiness_state",
				Help: "Readiness gate state (0=not-started, 1=probing, 2=ready, 3=failed)",
			},
		),
	}
}

func (m *readinessMetrics) ObserveAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.attempts.WithLabelValues(result).Inc()
}

func (m *readinessMetrics) SetState(state readiness.State) {
	m.state.Set(float64(state))
}
