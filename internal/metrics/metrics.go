// Package metrics provides Prometheus metrics collection for the pizzeria order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal tracks cart engine operations by kind and result.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// OrdersComposedTotal tracks order message compositions by outcome.
	OrdersComposedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_composed_total",
			Help: "Total number of order messages composed at checkout",
		},
		[]string{"status"},
	)

	// OrderComposeDuration tracks how long message composition takes.
	OrderComposeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_compose_duration_seconds",
			Help:    "Order message composition duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// CartStoreOperationsTotal tracks cart session store operations.
	CartStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_store_operations_total",
			Help: "Total number of cart store operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveCarts tracks the number of live cart sessions.
	ActiveCarts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_carts",
			Help: "Current number of live cart sessions",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records a cart engine operation.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordOrderComposed records an order composition attempt.
func RecordOrderComposed(duration time.Duration, status string) {
	OrderComposeDuration.Observe(duration.Seconds())
	OrdersComposedTotal.WithLabelValues(status).Inc()
}

// RecordCartStoreOperation records a cart store operation.
func RecordCartStoreOperation(operation, result string) {
	CartStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetActiveCarts updates the live cart session gauge.
func SetActiveCarts(n int) {
	ActiveCarts.Set(float64(n))
}
