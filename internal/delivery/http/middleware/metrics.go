package middleware

import (
	"strconv"
	"time"

	"go-jobseeker-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware records latency and counts per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.RequestsInFlight.Inc()
		defer metrics.RequestsInFlight.Dec()

		c.Next()

		// unmatched routes share one label to bound cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}

		metrics.RequestDuration.With(labels).Observe(time.Since(start).Seconds())
		metrics.RequestTotal.With(labels).Inc()
	}
}
