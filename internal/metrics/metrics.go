// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors the service updates.
type Metrics struct {
	OrdersPlaced        prometheus.Counter
	PaymentsDeclined    prometheus.Counter
	ReconciliationCases prometheus.Counter
	RequestDuration     *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New registers the service collectors on the given registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopeasy_orders_placed_total",
			Help: "Orders successfully recorded at checkout.",
		}),
		PaymentsDeclined: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopeasy_payments_declined_total",
			Help: "Checkout attempts that ended with a declined payment.",
		}),
		ReconciliationCases: factory.NewCounter(prometheus.CounterOpts{
			Name: "shopeasy_reconciliation_cases_total",
			Help: "Payments captured whose order could not be recorded.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shopeasy_http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// Registry exposes the backing registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// GinMiddleware records request latency per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
