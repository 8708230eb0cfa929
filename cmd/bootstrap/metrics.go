package bootstrap

import (
	"booking-core/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		prometheus.NewRegistry,
		NewCollector,
	),
)

func NewCollector(registry *prometheus.Registry) *metrics.Collector {
	return metrics.NewCollector(registry)
}
