package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	// HTTP request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	// Wallet API operations counter
	WalletOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_operations_total",
			Help: "Total number of Google Wallet API operations",
		},
		[]string{"operation", "status", "service"},
	)

	// RabbitMQ messages counter
	RabbitMQMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_total",
			Help: "Total number of RabbitMQ messages",
		},
		[]string{"action", "queue", "status", "service"},
	)
)

// PrometheusMiddleware records HTTP metrics
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			serviceName,
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
			serviceName,
		).Observe(duration)
	}
}
