package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"userblog/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.RecordCreated("user")
	m.RecordCreated("user")
	m.ValidationFailed("post", "TitleTooShort")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("user")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("post")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("post", "TitleTooShort")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordCreated("user")
		m.ValidationFailed("user", "InvalidEmail")
		m.ObserveRequest(http.MethodGet, "/users", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/users", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "userblog_http_request_duration_seconds")
}
