package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/metrics"
)

func ok(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
		body   string
	}{
		{"disabled", "", "", http.StatusOK, "ok"},
		{"missing", "secret", "", http.StatusUnauthorized, `{"error":"missing x-api-key header"}`},
		{"wrong", "secret", "guess", http.StatusUnauthorized, `{"error":"invalid API key"}`},
		{"valid", "secret", "secret", http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/", ok, APIKeyAuth(tt.key))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.body, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/widgets/:id", ok)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/widgets/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	assert.Contains(t, body, `path="/api/widgets/:id"`)
	assert.NotContains(t, body, `path="/api/widgets/42"`)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ping", ok)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	assert.Contains(t, out, `"uri":"/ping?x=1"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"request rejected"`)
}
