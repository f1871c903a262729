package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAlertPayload(t *testing.T) {
	before := testutil.ToFloat64(alertsComputed.WithLabelValues(SourceCache))

	RecordAlertPayload(SourceCache)
	RecordAlertPayload(SourceCache)

	assert.Equal(t, before+2, testutil.ToFloat64(alertsComputed.WithLabelValues(SourceCache)))
}

func TestSetAlertResources(t *testing.T) {
	SetAlertResources("critical", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(alertResources.WithLabelValues("critical")))

	SetAlertResources("critical", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(alertResources.WithLabelValues("critical")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordWebhookDelivery("success")
	RecordHTTPRequest(http.MethodGet, "/api/dashboard/alerts", "200", 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "resource_planner_webhook_deliveries_total")
	assert.Contains(t, body, `resource_planner_http_requests_total{method="GET",path="/api/dashboard/alerts",status="200"}`)
}
