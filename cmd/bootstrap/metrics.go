package bootstrap

import (
	"slotbook/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewHTTPMetrics,
		NewBookingMetrics,
	),
)

func NewHTTPMetrics() *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)
}

func NewBookingMetrics() *metrics.BookingMetrics {
	return metrics.NewBookingMetrics(prometheus.DefaultRegisterer)
}
