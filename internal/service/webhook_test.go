package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

func TestWebhookService_Check(t *testing.T) {
	ctx := context.Background()
	f := newFixture(
		[]models.Resource{activeResource(1, "Ann", "Engineering"), activeResource(2, "Ben", "Engineering")},
		[]models.Allocation{
			weeklyAllocation(1, 1, "2024-03-11", "2024-03-24", map[string]float64{"2024-W11": 10, "2024-W12": 36}),
			weeklyAllocation(2, 1, "2024-03-11", "2024-03-17", map[string]float64{"2024-W11": 30}),
			weeklyAllocation(2, 1, "2024-03-04", "2024-03-10", map[string]float64{"2024-W10": 90}),
		},
	)
	svc := f.webhookService("http://example.invalid")

	p, err := svc.Check(ctx, 1, day("2024-03-11"), day("2024-03-24"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, string(utilization.CategoryError), p.Category)
	assert.Equal(t, 113, p.PeakUtilizationPercent)
	assert.Equal(t, "2024-W12", p.PeakWeekKey)
	assert.Contains(t, p.Message, "Ann is at 113% of capacity in 2024-W12")
	assert.Equal(t, testNow, p.DetectedAt)

	p, err = svc.Check(ctx, 2, day("2024-03-11"), day("2024-03-17"))
	require.NoError(t, err)
	assert.Nil(t, p, "warning band does not alert")

	p, err = svc.Check(ctx, 2, day("2024-03-04"), day("2024-03-10"))
	require.NoError(t, err)
	assert.Nil(t, p, "elapsed weeks do not alert")
}

func TestWebhookService_CheckUnknownResource(t *testing.T) {
	f := newFixture(nil, nil)

	_, err := f.webhookService("http://example.invalid").Check(context.Background(), 3, day("2024-03-11"), day("2024-03-17"))

	assert.Error(t, err)
}

func TestWebhookService_Disabled(t *testing.T) {
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := f.webhookService("")

	assert.False(t, svc.Enabled())
	svc.CheckAndAlert(context.Background(), 1, day("2024-03-11"), day("2024-03-17"))
	svc.Wait()
}

func TestWebhookService_SendRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newFixture(nil, nil)
	err := f.webhookService(srv.URL).Send(context.Background(), models.WebhookAlertPayload{ID: "x"})

	assert.ErrorContains(t, err, "status 502")
}

func TestNewAlertPayload_WithoutPeakWeek(t *testing.T) {
	p := newAlertPayload(activeResource(1, "Ann", "Engineering"), utilization.Result{PeakUtilizationPercent: 150}, utilization.CategoryCritical, testNow)

	assert.Empty(t, p.PeakWeekKey)
	assert.Equal(t, "Ann is at 150% of capacity (critical)", p.Message)
}
