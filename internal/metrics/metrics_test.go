package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	mts := metrics.NewMetrics(reg)

	mts.Logins.WithLabelValues("success").Inc()
	mts.HTTPRequests.WithLabelValues("GET", "/api/employees", "OK").Inc()

	assert.InDelta(t, 1.0, testutil.ToFloat64(mts.Logins.WithLabelValues("success")), 0.001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(mts.Logins.WithLabelValues("failure")), 0.001)
}
