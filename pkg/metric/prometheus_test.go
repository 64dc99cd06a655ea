package metric_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/repertoire-hero/pkg/metric"
)

func TestPrometheusMetrics_Handler_ExposesRecordedMetrics(t *testing.T) {
	metrics := metric.NewPrometheusMetrics()

	metrics.WithLabel("reason", "token_mismatch").Increment("session_gate_rejections_total")
	metrics.WithLabel("reason", "token_mismatch").Increment("session_gate_rejections_total")
	metrics.With(metric.Labels{"method": "GET", "code": "200"}).
		Duration("http_api_request_duration_seconds", 20*time.Millisecond)

	body := scrape(t, metrics.Handler())

	assert.Contains(t, body, `session_gate_rejections_total{reason="token_mismatch"} 2`)
	assert.Contains(t, body, `http_api_request_duration_seconds_count{code="200",method="GET"} 1`)
}

func TestPrometheusMetrics_InconsistentLabels_Dropped(t *testing.T) {
	metrics := metric.NewPrometheusMetrics()

	metrics.WithLabel("reason", "missing_token").Increment("session_gate_rejections_total")
	assert.NotPanics(t, func() {
		metrics.WithLabel("other", "value").Increment("session_gate_rejections_total")
	})

	body := scrape(t, metrics.Handler())
	assert.Contains(t, body, `session_gate_rejections_total{reason="missing_token"} 1`)
}

func scrape(t *testing.T, handler http.Handler) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	return string(body)
}
