package config

import (
	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/pkg/metrics"
	prommetrics "github.com/chinookhq/chinook-api/pkg/metrics/prometheus"
	"github.com/chinookhq/chinook-api/pkg/readiness"
)

// MetricsResult carries everything metrics initialization produced. All
// fields are nil when metrics are disabled.
type MetricsResult struct {
	Server    *metrics.Server
	HTTP      *prommetrics.HTTPMetrics
	Readiness readiness.Metrics
}

// InitializeMetrics sets up the registry and collectors when metrics are
// enabled. It must run before the readiness gate and the router are built.
func InitializeMetrics(cfg *Config) MetricsResult {
	if !cfg.Metrics.Enabled {
		return MetricsResult{}
	}

	metrics.InitRegistry()

	server, err := metrics.NewServer(cfg.Metrics.Port)
	if err != nil {
		logger.Warn("Metrics server unavailable", logger.Err(err))
	}

	return MetricsResult{
		Server:    server,
		HTTP:      prommetrics.NewHTTPMetrics(),
		Readiness: prommetrics.NewReadinessMetrics(),
	}
}
