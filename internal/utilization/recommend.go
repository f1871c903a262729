package utilization

import (
	"fmt"
)

// Priority ranks how urgently a recommendation should be acted on.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Recommendation is a single actionable suggestion for a resource.
type Recommendation struct {
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// RecommendationInput carries values already computed for a resource.
// ExcessHours is the peak-week load above effective capacity.
type RecommendationInput struct {
	UtilizationPercent   int
	ProblematicPeriods   int
	ContributingProjects int
	ExcessHours          float64
}

// Recommend returns the recommendations for a utilization level, most
// urgent first.
func Recommend(in RecommendationInput) []Recommendation {
	pct := in.UtilizationPercent

	switch {
	case pct > 120:
		return []Recommendation{
			{
				Type:        "redistribution",
				Priority:    PriorityCritical,
				Title:       "Immediate workload redistribution required",
				Description: fmt.Sprintf("Utilization is at %d%%, well beyond sustainable levels. Reassign work now to prevent burnout and missed deadlines.", pct),
			},
			{
				Type:        "emergency-redistribution",
				Priority:    PriorityHigh,
				Title:       "Emergency redistribution of excess hours",
				Description: fmt.Sprintf("%.1f hours above capacity in the peak week (%d%% over). Move them to team members with spare capacity.", in.ExcessHours, pct-100),
			},
		}

	case pct > 100:
		recs := []Recommendation{{
			Type:        "redistribution",
			Priority:    PriorityHigh,
			Title:       "Redistribute workload",
			Description: fmt.Sprintf("Utilization is at %d%%. Shift %.1f hours to other team members to bring the load back within capacity.", pct, in.ExcessHours),
		}}
		if in.ProblematicPeriods > 0 {
			recs = append(recs, Recommendation{
				Type:        "timeline-adjustment",
				Priority:    PriorityMedium,
				Title:       "Adjust project timelines",
				Description: fmt.Sprintf("%d overallocated week(s) in this period. Consider moving deadlines or phasing work over more weeks.", in.ProblematicPeriods),
			})
		}
		return recs

	case pct >= 90:
		recs := []Recommendation{
			{
				Type:        "monitor",
				Priority:    PriorityMedium,
				Title:       "Monitor workload closely",
				Description: fmt.Sprintf("Utilization is at %d%%, close to full capacity. Track progress weekly to catch slippage early.", pct),
			},
			{
				Type:        "buffer",
				Priority:    PriorityMedium,
				Title:       "Keep a capacity buffer",
				Description: "Avoid adding new commitments so there is room for unplanned work.",
			},
		}
		if in.ContributingProjects > 1 {
			recs = append(recs, Recommendation{
				Type:        "priority-review",
				Priority:    PriorityLow,
				Title:       "Review project priorities",
				Description: fmt.Sprintf("Time is split across %d projects. Confirm priorities with project leads.", in.ContributingProjects),
			})
		}
		return recs

	case pct >= 70:
		recs := []Recommendation{{
			Type:        "optimal",
			Priority:    PriorityLow,
			Title:       "Optimal utilization",
			Description: fmt.Sprintf("Utilization is at %d%%, a healthy level. No action needed.", pct),
		}}
		if pct < 85 {
			recs = append(recs, Recommendation{
				Type:        "opportunity",
				Priority:    PriorityLow,
				Title:       "Room for small tasks",
				Description: fmt.Sprintf("With %d%% utilization there is room for small tasks or reviews.", pct),
			})
		}
		return recs

	case pct >= 50:
		return []Recommendation{
			{
				Type:        "additional-assignments",
				Priority:    PriorityMedium,
				Title:       "Consider additional assignments",
				Description: fmt.Sprintf("Utilization is at %d%%. This resource can take on more project work.", pct),
			},
			{
				Type:        "development",
				Priority:    PriorityLow,
				Title:       "Development opportunity",
				Description: "Use spare capacity for training, documentation or internal improvements.",
			},
		}

	case pct > 0:
		return []Recommendation{{
			Type:        "under-utilization",
			Priority:    PriorityHigh,
			Title:       "Significant under-utilization",
			Description: fmt.Sprintf("Utilization is only %d%%. Assign this resource to active projects.", pct),
		}}

	default:
		return []Recommendation{{
			Type:        "unassigned",
			Priority:    PriorityHigh,
			Title:       "No current assignments",
			Description: "This resource has no active allocations in the period. Assign work or review availability.",
		}}
	}
}
