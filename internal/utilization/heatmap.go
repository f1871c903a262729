package utilization

import (
	"github.com/gti/resource-planner/internal/models"
)

// HeatmapStatus is the coarse load bucket shown on the heatmap.
type HeatmapStatus string

const (
	StatusAvailable     HeatmapStatus = "available"
	StatusNearCapacity  HeatmapStatus = "near-capacity"
	StatusOverallocated HeatmapStatus = "overallocated"
)

// HeatmapCell is one resource-week on the heatmap.
type HeatmapCell struct {
	WeekKey            WeekKey       `json:"weekKey"`
	AllocatedHours     float64       `json:"allocatedHours"`
	UtilizationPercent int           `json:"utilizationPercent"`
	Status             HeatmapStatus `json:"status"`
	Color              string        `json:"color"`
}

// HeatmapRow is one resource across the heatmap's weeks.
type HeatmapRow struct {
	ResourceID             int           `json:"resourceId"`
	Name                   string        `json:"name"`
	Department             string        `json:"department"`
	EffectiveCapacity      float64       `json:"effectiveWeeklyCapacity"`
	PeakUtilizationPercent int           `json:"peakUtilizationPercent"`
	Cells                  []HeatmapCell `json:"weeks"`
}

// Heatmap is the weekly utilization grid for a set of resources.
type Heatmap struct {
	Window   Window       `json:"period"`
	Weeks    []WeekKey    `json:"weeks"`
	Rows     []HeatmapRow `json:"resources"`
	Metadata Metadata     `json:"metadata"`
}

// StatusFor buckets a weekly utilization percentage.
func StatusFor(pct int, s models.AlertSettings) HeatmapStatus {
	switch {
	case pct > FullCapacityPercent:
		return StatusOverallocated
	case float64(pct) >= s.WarningThreshold:
		return StatusNearCapacity
	default:
		return StatusAvailable
	}
}

// HeatmapColor returns the cell color for hours against capacity.
func HeatmapColor(hours, capacity float64) string {
	if capacity == 0 {
		if hours > 0 {
			return "#8B0000" // Blood red - any load with zero capacity is overloaded
		}
		return "#e5e7eb"
	}

	ratio := hours / capacity
	switch {
	case ratio > 1.0:
		return "#8B0000" // Blood red - overloaded
	case ratio > 0.8:
		return "#dc2626" // Red - near capacity
	case ratio > 0.6:
		return "#f97316" // Orange
	case ratio > 0.4:
		return "#fbbf24" // Yellow/Amber
	case ratio > 0.2:
		return "#a3e635" // Lime green
	case ratio > 0:
		return "#22c55e" // Green - low load
	default:
		return "#e5e7eb" // Gray - no load
	}
}

// ComputeHeatmap lays out weekly utilization for every in-scope resource.
// It shares the week expansion and utilization arithmetic with ComputeAlerts
// and only adds status buckets and colors.
func ComputeHeatmap(in Input) Heatmap {
	settings := models.DefaultAlertSettings()
	if in.Settings != nil {
		settings = *in.Settings
	}

	department := in.Department
	if department == "" {
		department = "all"
	}

	scope := ResolveScope(in.StartDate, in.EndDate, in.Now)
	byResource := GroupByResource(in.Allocations)

	hm := Heatmap{
		Window: scope.Window,
		Weeks:  scope.Weeks,
		Rows:   []HeatmapRow{},
		Metadata: Metadata{
			Department:  department,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			GeneratedAt: in.Now,
		},
	}
	if hm.Weeks == nil {
		hm.Weeks = []WeekKey{}
	}

	for _, res := range FilterResources(in.Resources, in.Department) {
		result := ComputeForResource(res, byResource[res.ID], scope.Window, scope.Weeks)
		hm.Rows = append(hm.Rows, heatmapRow(res, result, settings))
	}

	return hm
}

func heatmapRow(res models.Resource, r Result, s models.AlertSettings) HeatmapRow {
	row := HeatmapRow{
		ResourceID:             res.ID,
		Name:                   res.Name,
		Department:             DepartmentOf(res),
		EffectiveCapacity:      r.EffectiveCapacity,
		PeakUtilizationPercent: r.PeakUtilizationPercent,
		Cells:                  make([]HeatmapCell, 0, len(r.Weeks)),
	}
	for _, w := range r.Weeks {
		row.Cells = append(row.Cells, HeatmapCell{
			WeekKey:            w.WeekKey,
			AllocatedHours:     w.AllocatedHours,
			UtilizationPercent: w.UtilizationPercent,
			Status:             StatusFor(w.UtilizationPercent, s),
			Color:              HeatmapColor(w.AllocatedHours, r.EffectiveCapacity),
		})
	}
	return row
}
