package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scramblectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scramblectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scramblectl",
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Program runs by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)
	runOperations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scramblectl",
			Subsystem: "engine",
			Name:      "run_operations",
			Help:      "Operations per program run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		},
		[]string{"mode"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, runs, runOperations)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordRun counts one program run. outcome is "ok" or an error kind.
func RecordRun(mode, outcome string, ops int) {
	RegisterMetrics()
	runs.WithLabelValues(mode, outcome).Inc()
	runOperations.WithLabelValues(mode).Observe(float64(ops))
}
