package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"status"}, // success, failure
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"result"}, // found, not_found, invalid, error
	)

	inquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"outcome"}, // accepted, masked, rejected
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_notifications_total",
			Help: "Total number of inquiry notification emails attempted",
		},
		[]string{"status"}, // success, failure
	)

	adminMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_mutations_total",
			Help: "Total number of admin mutations",
		},
		[]string{"entity", "operation", "status"},
	)
)

// PrometheusMiddleware creates a middleware that records Prometheus metrics
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip metrics endpoint itself
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, endpointLabel(r)).Observe(float64(r.ContentLength))
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, endpointLabel(r), statusCode).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpointLabel(r), statusCode).Observe(duration)
	})
}

// endpointLabel collapses numeric id segments so admin URLs don't explode label cardinality
func endpointLabel(r *http.Request) string {
	path := []byte(r.URL.Path)
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); {
		if path[i] == '/' {
			j := i + 1
			for j < len(path) && path[j] >= '0' && path[j] <= '9' {
				j++
			}
			if j > i+1 && (j == len(path) || path[j] == '/') {
				out = append(out, "/{id}"...)
				i = j
				continue
			}
		}
		out = append(out, path[i])
		i++
	}
	return string(out)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RecordAuthAttempt records an authentication attempt
func RecordAuthAttempt(success bool) {
	authAttemptsTotal.WithLabelValues(successLabel(success)).Inc()
}

// RecordSearch records a catalog search by result
func RecordSearch(result string) {
	searchesTotal.WithLabelValues(result).Inc()
}

// RecordInquiry records a contact submission by outcome
func RecordInquiry(outcome string) {
	inquiriesTotal.WithLabelValues(outcome).Inc()
}

// RecordNotification records an inquiry notification attempt
func RecordNotification(success bool) {
	notificationsTotal.WithLabelValues(successLabel(success)).Inc()
}

// RecordAdminMutation records an admin write by entity and operation
func RecordAdminMutation(entity, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	adminMutationsTotal.WithLabelValues(entity, operation, status).Inc()
}

func successLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
