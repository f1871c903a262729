package utilization

import (
	"github.com/gti/resource-planner/internal/models"
)

// Qualifies reports whether an allocation takes part in a computation over w:
// it must be active and, when w is bounded, its span must overlap w.
func Qualifies(a models.Allocation, w Window) bool {
	if a.Status != models.AllocationStatusActive {
		return false
	}
	if !w.Bounded() {
		return true
	}
	return !dayOf(a.StartDate).After(w.End) && !dayOf(a.EndDate).Before(w.Start)
}

// Expand returns the hours an allocation contributes to each requested week.
// An explicit weekly map is looked up key by key; otherwise the total is
// spread evenly over the requested weeks.
func Expand(a models.Allocation, weeks []WeekKey) map[WeekKey]float64 {
	hours := make(map[WeekKey]float64, len(weeks))
	if len(weeks) == 0 {
		return hours
	}

	if len(a.WeeklyHours) > 0 {
		for _, k := range weeks {
			hours[k] = a.WeeklyHours[k.String()]
		}
		return hours
	}

	share := a.AllocatedHoursTotal / float64(len(weeks))
	for _, k := range weeks {
		hours[k] = share
	}
	return hours
}

// ExpandAll sums Expand over every allocation, keeping only the ones that
// qualify for w.
func ExpandAll(allocations []models.Allocation, w Window, weeks []WeekKey) map[WeekKey]float64 {
	total := make(map[WeekKey]float64, len(weeks))
	for _, a := range allocations {
		if !Qualifies(a, w) {
			continue
		}
		for k, h := range Expand(a, weeks) {
			total[k] += h
		}
	}
	return total
}
