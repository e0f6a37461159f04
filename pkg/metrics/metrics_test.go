package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("holidaze-gateway")

	m.IncSubmission("created")
	m.IncSubmission("created")
	m.IncValidationFailure("conflict")
	m.IncSelectionPick("ignored")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selectionPicks.WithLabelValues("ignored")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("holidaze-gateway")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/venues/{venueId}/calendar", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/venues/{venueId}/calendar",service="holidaze-gateway",status="200"} 1`)
}
