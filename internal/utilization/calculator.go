package utilization

import (
	"math"

	"github.com/gti/resource-planner/internal/models"
)

// NonProjectHoursPerWeek is subtracted from nominal capacity for meetings,
// admin and other time that cannot be allocated to projects.
const NonProjectHoursPerWeek = 8.0

// WeekUtilization is one week of a resource's load.
type WeekUtilization struct {
	WeekKey            WeekKey `json:"weekKey"`
	AllocatedHours     float64 `json:"allocatedHours"`
	UtilizationPercent int     `json:"utilizationPercent"`
}

// Result is a resource's utilization over a period.
type Result struct {
	ResourceID             int               `json:"resourceId"`
	Weeks                  []WeekUtilization `json:"weeklyBreakdown"`
	PeakUtilizationPercent int               `json:"peakUtilizationPercent"`
	PeakWeekKey            *WeekKey          `json:"peakWeekKey"`
	TotalAllocatedHours    float64           `json:"totalAllocatedHours"`
	EffectiveCapacity      float64           `json:"effectiveWeeklyCapacity"`
}

// PeakWeek returns the week holding the peak, if any.
func (r Result) PeakWeek() (WeekUtilization, bool) {
	if r.PeakWeekKey == nil {
		return WeekUtilization{}, false
	}
	for _, w := range r.Weeks {
		if w.WeekKey == *r.PeakWeekKey {
			return w, true
		}
	}
	return WeekUtilization{}, false
}

// EffectiveWeeklyCapacity is nominal capacity less the non-project overhead,
// never negative.
func EffectiveWeeklyCapacity(weeklyCapacityHours float64) float64 {
	return math.Max(0, weeklyCapacityHours-NonProjectHoursPerWeek)
}

// Percent converts hours against a capacity into a whole percentage,
// rounding half away from zero. Zero capacity and negative hours yield 0.
func Percent(hours, capacity float64) int {
	if capacity <= 0 || hours <= 0 {
		return 0
	}
	return int(math.Round(hours / capacity * 100))
}

// ComputeForResource computes weekly utilization for res over the given
// weeks. Allocations of other resources and ones that do not qualify for w
// are ignored. With no weeks, the whole allocated total is measured against
// a single week of effective capacity.
func ComputeForResource(res models.Resource, allocations []models.Allocation, w Window, weeks []WeekKey) Result {
	capacity := EffectiveWeeklyCapacity(res.WeeklyCapacityHours)
	result := Result{
		ResourceID:        res.ID,
		Weeks:             []WeekUtilization{},
		EffectiveCapacity: capacity,
	}

	own := make([]models.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.ResourceID == res.ID && Qualifies(a, w) {
			own = append(own, a)
		}
	}

	if len(weeks) == 0 {
		for _, a := range own {
			result.TotalAllocatedHours += a.AllocatedHoursTotal
		}
		result.PeakUtilizationPercent = Percent(result.TotalAllocatedHours, capacity)
		return result
	}

	hours := ExpandAll(own, w, weeks)
	for _, k := range weeks {
		wu := WeekUtilization{
			WeekKey:            k,
			AllocatedHours:     hours[k],
			UtilizationPercent: Percent(hours[k], capacity),
		}
		result.Weeks = append(result.Weeks, wu)
		result.TotalAllocatedHours += wu.AllocatedHours

		if wu.UtilizationPercent > result.PeakUtilizationPercent {
			result.PeakUtilizationPercent = wu.UtilizationPercent
			peak := k
			result.PeakWeekKey = &peak
		}
	}

	return result
}
