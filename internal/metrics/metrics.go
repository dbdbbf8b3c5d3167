package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for HTTP requests and login attempts, and
// histograms for request and database query durations.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Logins          *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hera_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hera_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		Logins: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hera_logins_total",
			Help: "Total number of login attempts by outcome.",
		}, []string{"status"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hera_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee', 'delete_employee_cascade'
	}

	metrics.Logins.WithLabelValues("success")
	metrics.Logins.WithLabelValues("failure")

	return metrics
}
