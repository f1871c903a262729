package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

func TestAlertService_GetAlerts(t *testing.T) {
	f := newFixture(
		[]models.Resource{activeResource(1, "Ann", "Engineering"), activeResource(2, "Ben", "Sales")},
		[]models.Allocation{
			weeklyAllocation(1, 1, "2024-03-11", "2024-03-17", map[string]float64{"2024-W11": 44}),
		},
	)

	payload, err := f.alertService().GetAlerts(context.Background(), PeriodQuery{
		StartDate: "2024-03-11",
		EndDate:   "2024-03-17",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, payload.Summary.CriticalCount)
	assert.Equal(t, 1, payload.Summary.UnassignedCount)
	assert.Equal(t, 2, payload.Summary.TotalAlerts)
	assert.Equal(t, testNow, payload.Metadata.GeneratedAt)
}

func TestAlertService_FetchesNormalizedWindow(t *testing.T) {
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)

	_, err := f.alertService().GetAlerts(context.Background(), PeriodQuery{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-24",
	})
	require.NoError(t, err)

	assert.Equal(t, day("2024-03-11"), f.allocations.lastFrom)
	assert.Equal(t, day("2024-03-24"), f.allocations.lastTo)
}

func TestAlertService_OpenPeriodFetchesEverything(t *testing.T) {
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)

	_, err := f.alertService().GetAlerts(context.Background(), PeriodQuery{StartDate: "soon", EndDate: "2024-03-24"})
	require.NoError(t, err)

	assert.True(t, f.allocations.lastFrom.IsZero())
	assert.True(t, f.allocations.lastTo.IsZero())
}

func TestAlertService_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := f.alertService()
	q := PeriodQuery{StartDate: "2024-03-11", EndDate: "2024-03-24"}

	first, err := svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	_, err = svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, f.resources.listCalls)
	assert.Equal(t, 1, first.Summary.UnassignedCount)

	resources := NewResourceService(f.resources, f.projects, f.cache)
	_, err = resources.CreateResource(ctx, &models.CreateResourceRequest{Name: "Cara", Department: "Engineering"})
	require.NoError(t, err)

	again, err := svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, f.resources.listCalls)
	assert.Equal(t, 2, again.Summary.UnassignedCount)
}

func TestAlertService_DoesNotCachePayloadReadBeforeAWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := f.alertService()
	q := PeriodQuery{StartDate: "2024-03-11", EndDate: "2024-03-24"}

	f.resources.afterList = func() {
		f.resources.afterList = nil
		require.NoError(t, f.cache.Invalidate(ctx))
	}

	stale, err := svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, stale.Summary.UnassignedCount)
	assert.Zero(t, f.cache.Len())

	_, err = svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, f.resources.listCalls)
}

func TestAlertService_DistinctQueriesAreCachedSeparately(t *testing.T) {
	ctx := context.Background()
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := f.alertService()

	_, err := svc.GetAlerts(ctx, PeriodQuery{Department: "Engineering"})
	require.NoError(t, err)
	_, err = svc.GetAlerts(ctx, PeriodQuery{Department: "Sales"})
	require.NoError(t, err)

	assert.Equal(t, 2, f.resources.listCalls)
}

func TestAlertService_StoreErrorIsReturned(t *testing.T) {
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	f.resources.err = errStoreDown

	payload, err := f.alertService().GetAlerts(context.Background(), PeriodQuery{})

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestAlertService_UsesStoredSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(
		[]models.Resource{activeResource(1, "Ann", "Engineering")},
		[]models.Allocation{
			weeklyAllocation(1, 1, "2024-03-11", "2024-03-17", map[string]float64{"2024-W11": 24}),
		},
	)
	svc := f.alertService()
	q := PeriodQuery{StartDate: "2024-03-11", EndDate: "2024-03-17"}

	payload, err := svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, payload.Categories) // 75% sits between the default bands

	_, err = f.settingsSvc.Update(ctx, &models.UpdateAlertSettingsRequest{
		WarningThreshold:          70,
		ErrorThreshold:            100,
		CriticalThreshold:         120,
		UnderUtilizationThreshold: 30,
	})
	require.NoError(t, err)

	payload, err = svc.GetAlerts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Count(utilization.CategoryWarning))
}
