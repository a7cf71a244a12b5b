package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Histogram buckets covering the millisecond-to-seconds range of
	// API and query latencies
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Client Metrics
	DBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	SessionRequestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_session_requests_created_total",
			Help: "Total number of course session requests created",
		},
		[]string{"status"},
	)

	SessionRequestStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_session_request_status_updates_total",
			Help: "Total number of session request status transitions",
		},
		[]string{"to_status"},
	)

	SkillRequestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_skill_requests_created_total",
			Help: "Total number of peer skill mentoring requests created",
		},
		[]string{"status"},
	)

	SkillRequestStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_skill_request_status_updates_total",
			Help: "Total number of skill request status transitions",
		},
		[]string{"to_status"},
	)

	UserRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_user_registrations_total",
			Help: "Total user registration attempts",
		},
		[]string{"status"},
	)

	UserLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillhub_user_logins_total",
			Help: "Total user login attempts",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics samples goroutine count and heap usage
// every 15 seconds for the process gauges.
func RecordInfrastructureMetrics() {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration returns elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
