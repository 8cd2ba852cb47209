package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuthEventsTotal counts register/login/verify outcomes.
	AuthEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codepad_auth_events_total",
			Help: "Authentication events by kind and result",
		},
		[]string{"event", "result"},
	)

	// ProjectOpsTotal counts project operations by kind and result.
	ProjectOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codepad_project_operations_total",
			Help: "Project operations by kind and result",
		},
		[]string{"op", "result"},
	)
)

var (
	uuidPathSegment    = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuthEventsTotal, ProjectOpsTotal)
	})
}

// NormalizePath replaces UUID and numeric path segments with {id}.
// E.g. /project/0b8a4f7e-9d52-4e1a-8c37-5d6e2f1a3b04 -> /project/{id}.
// Used for requests that did not match a route.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	path = uuidPathSegment.ReplaceAllString(path, "/{id}$1")
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. path should already
// be a route pattern or normalized.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncAuthEvent counts an auth event (register, login, verify) with result ok or a failure kind.
func IncAuthEvent(event, result string) {
	AuthEventsTotal.WithLabelValues(event, result).Inc()
}

// IncProjectOp counts a project operation (list, get, create, update, delete).
func IncProjectOp(op, result string) {
	ProjectOpsTotal.WithLabelValues(op, result).Inc()
}
