package utilization

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
)

func resource(id int, name, department string, capacity float64) models.Resource {
	return models.Resource{
		ID:                  id,
		Name:                name,
		Department:          department,
		WeeklyCapacityHours: capacity,
		IsActive:            true,
	}
}

func TestComputeAlerts_CriticalOverload(t *testing.T) {
	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Alice", "Engineering", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-11", "2024-03-17", 0, map[string]float64{"2024-W11": 44}),
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-03-17",
		Now:       wednesdayW11,
	})

	require.Len(t, payload.Categories, 1)
	cat := payload.Categories[0]
	assert.Equal(t, CategoryCritical, cat.Type)
	assert.Equal(t, 1, cat.Count)
	require.NotNil(t, cat.Threshold)
	assert.Equal(t, 120.0, *cat.Threshold)

	res := cat.Resources[0]
	assert.Equal(t, 138, res.PeakUtilizationPercent)
	assert.Equal(t, WeekKey{2024, 11}, *res.PeakWeekKey)
	assert.Equal(t, 44.0, res.TotalAllocatedHours)

	assert.Equal(t, Summary{TotalAlerts: 1, CriticalCount: 1}, payload.Summary)
}

func TestComputeAlerts_GapBandIsNotAnAlert(t *testing.T) {
	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Bob", "Engineering", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-11", "2024-03-24", 0, map[string]float64{"2024-W11": 28, "2024-W12": 2}),
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-03-24",
		Now:       wednesdayW11,
	})

	assert.Empty(t, payload.Categories)
	assert.NotNil(t, payload.Categories)
	assert.Equal(t, 0, payload.Summary.TotalAlerts)
}

func TestComputeAlerts_StraddlingRangeSkipsPastWeeks(t *testing.T) {
	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Cara", "Design", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-04", "2024-03-24", 0, map[string]float64{
				"2024-W10": 100,
				"2024-W11": 30,
				"2024-W12": 8,
			}),
		},
		StartDate: "2024-03-04",
		EndDate:   "2024-03-24",
		Now:       wednesdayW11,
	})

	require.Len(t, payload.Categories, 1)
	assert.Equal(t, CategoryWarning, payload.Categories[0].Type)

	res := payload.Categories[0].Resources[0]
	assert.Equal(t, 94, res.PeakUtilizationPercent)
	require.Len(t, res.WeeklyBreakdown, 2)
	assert.Equal(t, WeekKey{2024, 11}, res.WeeklyBreakdown[0].WeekKey)
	assert.Equal(t, WeekKey{2024, 12}, res.WeeklyBreakdown[1].WeekKey)
	assert.Equal(t, 38.0, res.TotalAllocatedHours)

	assert.Equal(t, "2024-03-04", payload.Metadata.StartDate)
	assert.Equal(t, "2024-03-24", payload.Metadata.EndDate)
}

func TestComputeAlerts_CategoryOrderAndCounts(t *testing.T) {
	resources := []models.Resource{
		resource(1, "Idle", "Ops", 40),
		resource(2, "Light", "Ops", 40),
		resource(3, "Busy", "Ops", 40),
		resource(4, "Over", "Ops", 40),
		resource(5, "Burning", "Ops", 40),
		resource(6, "Balanced", "Ops", 40),
	}
	weekly := func(h float64) map[string]float64 { return map[string]float64{"2024-W12": h} }
	allocs := []models.Allocation{
		allocation(2, 1, "2024-03-18", "2024-03-24", 0, weekly(4)),  // 13%
		allocation(3, 1, "2024-03-18", "2024-03-24", 0, weekly(30)), // 94%
		allocation(4, 1, "2024-03-18", "2024-03-24", 0, weekly(33)), // 103%
		allocation(5, 1, "2024-03-18", "2024-03-24", 0, weekly(48)), // 150%
		allocation(6, 1, "2024-03-18", "2024-03-24", 0, weekly(24)), // 75%
	}

	payload := ComputeAlerts(Input{
		Resources:   resources,
		Allocations: allocs,
		StartDate:   "2024-03-18",
		EndDate:     "2024-03-24",
		Now:         wednesdayW11,
	})

	types := make([]Category, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		types = append(types, c.Type)
		assert.Equal(t, c.Count, len(c.Resources))
	}
	assert.Equal(t, []Category{CategoryCritical, CategoryError, CategoryWarning, CategoryInfo, CategoryUnassigned}, types)

	assert.Equal(t, Summary{
		TotalAlerts:     5,
		CriticalCount:   1,
		WarningCount:    1,
		InfoCount:       1,
		UnassignedCount: 1,
	}, payload.Summary)
	assert.Equal(t, 1, payload.Count(CategoryError))
	assert.Nil(t, payload.Categories[4].Threshold)
}

func TestComputeAlerts_ResourceFilters(t *testing.T) {
	inactive := resource(3, "Gone", "Engineering", 40)
	inactive.IsActive = false
	roleOnly := resource(4, "Riley", "", 40)
	roleOnly.Role = "Design"

	in := Input{
		Resources: []models.Resource{
			resource(1, "Ann", "Engineering", 40),
			resource(2, "Ben", "Sales", 40),
			inactive,
			roleOnly,
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-03-17",
		Now:       wednesdayW11,
	}

	all := ComputeAlerts(in)
	assert.Equal(t, 3, all.Summary.UnassignedCount)
	assert.Equal(t, "all", all.Metadata.Department)

	in.Department = "engineering"
	eng := ComputeAlerts(in)
	require.Equal(t, 1, eng.Summary.UnassignedCount)
	assert.Equal(t, "Ann", eng.Categories[0].Resources[0].Name)
	assert.Equal(t, "engineering", eng.Metadata.Department)

	in.Department = "Design"
	design := ComputeAlerts(in)
	require.Equal(t, 1, design.Summary.UnassignedCount)
	assert.Equal(t, "Design", design.Categories[0].Resources[0].Department)

	in.Department = "Finance"
	unknown := ComputeAlerts(in)
	assert.Equal(t, 3, unknown.Summary.UnassignedCount)
}

func TestComputeAlerts_CustomSettings(t *testing.T) {
	settings := models.AlertSettings{
		WarningThreshold:          60,
		ErrorThreshold:            80,
		CriticalThreshold:         95,
		UnderUtilizationThreshold: 20,
	}

	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Ann", "Engineering", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-11", "2024-03-17", 0, map[string]float64{"2024-W11": 28}),
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-03-17",
		Settings:  &settings,
		Now:       wednesdayW11,
	})

	require.Len(t, payload.Categories, 1)
	assert.Equal(t, CategoryError, payload.Categories[0].Type)
	assert.Equal(t, 80.0, *payload.Categories[0].Threshold)
}

func TestComputeAlerts_InvalidRangeUsesAggregate(t *testing.T) {
	for _, bounds := range [][2]string{{"", ""}, {"2024-03-24", "2024-03-11"}, {"not-a-date", "2024-03-11"}} {
		payload := ComputeAlerts(Input{
			Resources: []models.Resource{resource(1, "Ann", "Engineering", 40)},
			Allocations: []models.Allocation{
				allocation(1, 1, "2023-01-02", "2023-01-08", 40, nil),
			},
			StartDate: bounds[0],
			EndDate:   bounds[1],
			Now:       wednesdayW11,
		})

		require.Len(t, payload.Categories, 1, "bounds %v", bounds)
		res := payload.Categories[0].Resources[0]
		assert.Equal(t, 125, res.PeakUtilizationPercent)
		assert.Nil(t, res.PeakWeekKey)
		assert.Empty(t, res.WeeklyBreakdown)
		assert.Equal(t, bounds[0], payload.Metadata.StartDate)
	}
}

// A fully elapsed range has no remaining weeks, so the weekly map is never
// consulted and the allocation totals are measured as one aggregate week.
func TestComputeAlerts_PastRangeFallsBackToTotals(t *testing.T) {
	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Ann", "Engineering", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-01-08", "2024-01-14", 8, map[string]float64{"2024-W02": 60}),
		},
		StartDate: "2024-01-01",
		EndDate:   "2024-02-28",
		Now:       wednesdayW11,
	})

	require.Len(t, payload.Categories, 1)
	assert.Equal(t, CategoryInfo, payload.Categories[0].Type)
	res := payload.Categories[0].Resources[0]
	assert.Equal(t, 25, res.PeakUtilizationPercent)
	assert.Empty(t, res.WeeklyBreakdown)
}

func TestComputeAlerts_Deterministic(t *testing.T) {
	in := Input{
		Resources: []models.Resource{resource(1, "Ann", "Engineering", 40), resource(2, "Ben", "Sales", 30)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-11", "2024-04-07", 100, nil),
			allocation(2, 2, "2024-03-11", "2024-04-07", 0, map[string]float64{"2024-W13": 25}),
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-04-07",
		Now:       wednesdayW11,
	}

	first, err := json.Marshal(ComputeAlerts(in))
	require.NoError(t, err)
	second, err := json.Marshal(ComputeAlerts(in))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestAlertPayload_JSONShape(t *testing.T) {
	payload := ComputeAlerts(Input{
		Resources: []models.Resource{resource(1, "Ann", "Engineering", 40)},
		Allocations: []models.Allocation{
			allocation(1, 1, "2024-03-11", "2024-03-17", 0, map[string]float64{"2024-W11": 44}),
		},
		StartDate: "2024-03-11",
		EndDate:   "2024-03-17",
		Now:       wednesdayW11,
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "categories")
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "metadata")

	res := decoded["categories"].([]any)[0].(map[string]any)["resources"].([]any)[0].(map[string]any)
	assert.Equal(t, "2024-W11", res["peakWeekKey"])
	week := res["weeklyBreakdown"].([]any)[0].(map[string]any)
	assert.Equal(t, "2024-W11", week["weekKey"])
	assert.Equal(t, float64(138), week["utilizationPercent"])
}

func TestDepartmentOf(t *testing.T) {
	assert.Equal(t, "Engineering", DepartmentOf(models.Resource{Department: "Engineering", Role: "Dev"}))
	assert.Equal(t, "Dev", DepartmentOf(models.Resource{Department: "  ", Role: "Dev"}))
	assert.Equal(t, DefaultDepartment, DepartmentOf(models.Resource{}))
}
