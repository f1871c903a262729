package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

func TestHeatmapService_DefaultsToUpcomingWeeks(t *testing.T) {
	f := newFixture([]models.Resource{activeResource(1, "Ann", "Engineering")}, nil)
	svc := NewHeatmapService(f.resources, f.allocations, f.settingsSvc, f.log, fixedClock)

	hm, err := svc.GetHeatmap(context.Background(), PeriodQuery{})
	require.NoError(t, err)

	require.Len(t, hm.Weeks, DefaultHeatmapWeeks)
	assert.Equal(t, utilization.WeekKey{Year: 2024, Week: 11}, hm.Weeks[0])
	assert.Equal(t, "2024-03-11", hm.Metadata.StartDate)
	assert.Equal(t, "2024-06-02", hm.Metadata.EndDate)
}

func TestHeatmapService_Cells(t *testing.T) {
	f := newFixture(
		[]models.Resource{activeResource(1, "Ann", "Engineering"), activeResource(2, "Ben", "Sales")},
		[]models.Allocation{
			weeklyAllocation(1, 1, "2024-03-11", "2024-03-24", map[string]float64{"2024-W11": 36, "2024-W12": 29}),
		},
	)
	svc := NewHeatmapService(f.resources, f.allocations, f.settingsSvc, f.log, fixedClock)

	hm, err := svc.GetHeatmap(context.Background(), PeriodQuery{Department: "Engineering", StartDate: "2024-03-11", EndDate: "2024-03-24"})
	require.NoError(t, err)

	require.Len(t, hm.Rows, 1)
	cells := hm.Rows[0].Cells
	require.Len(t, cells, 2)
	assert.Equal(t, utilization.StatusOverallocated, cells[0].Status)
	assert.Equal(t, utilization.StatusNearCapacity, cells[1].Status)
}
