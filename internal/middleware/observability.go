package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/skillhub/skillhub-api/pkg/metrics"
	"go.uber.org/zap"
)

// redactedQueryKeys never make it into request logs.
var redactedQueryKeys = map[string]struct{}{
	"password": {}, "token": {}, "secret": {}, "session": {},
	"auth": {}, "key": {}, "api_key": {},
}

// ObservabilityMiddleware records per-request metrics and a structured
// access log entry. Metrics are labeled with the route template
// ("/requests/:id/:status") rather than the concrete URL so cardinality
// stays bounded.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		metrics.ActiveRequests.WithLabelValues(method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method).Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		code := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, code).Inc()

		fields := []zap.Field{
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if status >= 400 {
			fields = append(fields, errorContext(c)...)
		}

		logger.LogHTTPRequest(method, c.Request.URL.Path, status, duration, fields...)
	}
}

// errorContext collects route params, sanitized query params and any
// attached handler errors for failed requests.
func errorContext(c *gin.Context) []zap.Field {
	var fields []zap.Field

	if len(c.Params) > 0 {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		fields = append(fields, zap.Any("route_params", params))
	}

	if query := c.Request.URL.Query(); len(query) > 0 {
		sanitized := make(map[string]string, len(query))
		for key, values := range query {
			if _, redacted := redactedQueryKeys[strings.ToLower(key)]; redacted || len(values) == 0 {
				continue
			}
			sanitized[key] = values[0]
		}
		if len(sanitized) > 0 {
			fields = append(fields, zap.Any("query_params", sanitized))
		}
	}

	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("error", c.Errors.String()))
	}

	return fields
}
