package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets covering response times from milliseconds up to
	// the 30s external-call timeout
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34}

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

	// Business Metrics
	PlayRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kootaah_play_registrations_total",
			Help: "Total play registration attempts by terminal status",
		},
		[]string{"status"},
	)

	RegistrationValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kootaah_registration_validation_errors_total",
			Help: "Total registration validation errors by field",
		},
		[]string{"field"},
	)

	// Greeting Generator Client Metrics
	GreetingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "greeting_client_request_duration_seconds",
			Help:    "Greeting generator request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"status"},
	)

	GreetingRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greeting_client_request_total",
			Help: "Total number of greeting generator requests",
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

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
