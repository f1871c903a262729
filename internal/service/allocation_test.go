package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
)

type webhookRecorder struct {
	mu       sync.Mutex
	payloads []models.WebhookAlertPayload
}

func (r *webhookRecorder) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var p models.WebhookAlertPayload
		if !assert.NoError(t, json.NewDecoder(req.Body).Decode(&p)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		r.mu.Lock()
		r.payloads = append(r.payloads, p)
		r.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (r *webhookRecorder) received() []models.WebhookAlertPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.WebhookAlertPayload(nil), r.payloads...)
}

func newAllocationFixture(t *testing.T) (*fixture, *AllocationService, *webhookRecorder) {
	rec := &webhookRecorder{}
	srv := httptest.NewServer(rec.handler(t))
	t.Cleanup(srv.Close)

	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := NewAllocationService(f.allocations, f.resources, f.projects, f.cache, f.webhookService(srv.URL))
	return f, svc, rec
}

func TestAllocationService_CreateOverloadSendsWebhook(t *testing.T) {
	f, svc, rec := newAllocationFixture(t)

	a, err := svc.Create(context.Background(), &models.UpsertAllocationRequest{
		ResourceID:  1,
		ProjectID:   1,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-17",
		WeeklyHours: map[string]float64{"2024-W11": 44},
	})
	require.NoError(t, err)
	svc.webhook.Wait()

	assert.Equal(t, models.AllocationStatusActive, a.Status)
	assert.Equal(t, 1, f.cache.Invalidations())

	got := rec.received()
	require.Len(t, got, 1)
	assert.Equal(t, "critical", got[0].Category)
	assert.Equal(t, 138, got[0].PeakUtilizationPercent)
	assert.Equal(t, "2024-W11", got[0].PeakWeekKey)
	assert.NotEmpty(t, got[0].ID)
}

func TestAllocationService_LightLoadSendsNothing(t *testing.T) {
	_, svc, rec := newAllocationFixture(t)

	_, err := svc.Create(context.Background(), &models.UpsertAllocationRequest{
		ResourceID:  1,
		ProjectID:   1,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-17",
		WeeklyHours: map[string]float64{"2024-W11": 20},
	})
	require.NoError(t, err)
	svc.webhook.Wait()

	assert.Empty(t, rec.received())
}

func TestAllocationService_PlannedAllocationIsNotChecked(t *testing.T) {
	_, svc, rec := newAllocationFixture(t)

	_, err := svc.Create(context.Background(), &models.UpsertAllocationRequest{
		ResourceID:  1,
		ProjectID:   1,
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-17",
		Status:      "planned",
		WeeklyHours: map[string]float64{"2024-W11": 80},
	})
	require.NoError(t, err)
	svc.webhook.Wait()

	assert.Empty(t, rec.received())
}

func TestAllocationService_Validation(t *testing.T) {
	_, svc, _ := newAllocationFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.UpsertAllocationRequest
		want error
	}{
		{"bad start", models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "03/11/2024", EndDate: "2024-03-17"}, ErrInvalidAllocation},
		{"bad end", models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "2024-03-11", EndDate: ""}, ErrInvalidAllocation},
		{"reversed", models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "2024-03-17", EndDate: "2024-03-11"}, ErrInvalidAllocation},
		{"bad week key", models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "2024-03-11", EndDate: "2024-03-17", WeeklyHours: map[string]float64{"2024-11": 8}}, ErrInvalidAllocation},
		{"unknown resource", models.UpsertAllocationRequest{ResourceID: 9, ProjectID: 1, StartDate: "2024-03-11", EndDate: "2024-03-17"}, repository.ErrResourceNotFound},
		{"unknown project", models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 9, StartDate: "2024-03-11", EndDate: "2024-03-17"}, repository.ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAllocationService_UpdateAndDelete(t *testing.T) {
	f, svc, _ := newAllocationFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 5, &models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "2024-03-11", EndDate: "2024-03-17"})
	assert.ErrorIs(t, err, repository.ErrAllocationNotFound)

	a, err := svc.Create(ctx, &models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 1, StartDate: "2024-03-11", EndDate: "2024-03-17", AllocatedHoursTotal: 10})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, &models.UpsertAllocationRequest{ResourceID: 1, ProjectID: 2, StartDate: "2024-03-11", EndDate: "2024-03-24", AllocatedHoursTotal: 20})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)

	list, err := svc.ListByResource(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ProjectID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), repository.ErrAllocationNotFound)
	assert.Equal(t, 3, f.cache.Invalidations())
	svc.webhook.Wait()
}

func TestAllocationService_ListUnknownResource(t *testing.T) {
	_, svc, _ := newAllocationFixture(t)

	_, err := svc.ListByResource(context.Background(), 7)

	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}
