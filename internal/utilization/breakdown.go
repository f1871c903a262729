package utilization

import (
	"sort"
	"time"

	"github.com/gti/resource-planner/internal/models"
)

// FullCapacityPercent is the utilization above which a week is overallocated.
const FullCapacityPercent = 100

// ProjectContribution is the share of a resource's hours coming from one project.
type ProjectContribution struct {
	ProjectID   int     `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Hours       float64 `json:"hours"`
	Allocations int     `json:"allocations"`
}

// Breakdown explains a single resource's utilization over a period.
type Breakdown struct {
	ResourceID       int                   `json:"resourceId"`
	ResourceName     string                `json:"resourceName"`
	Department       string                `json:"department"`
	Window           Window                `json:"period"`
	Utilization      Result                `json:"utilization"`
	Category         *Category             `json:"category"`
	Projects         []ProjectContribution `json:"projects"`
	ProblematicWeeks []WeekUtilization     `json:"problematicWeeks"`
	Recommendations  []Recommendation      `json:"recommendations"`
	Metadata         Metadata              `json:"metadata"`
}

// BreakdownInput is the snapshot for a single resource breakdown.
type BreakdownInput struct {
	Resource     models.Resource
	Allocations  []models.Allocation
	ProjectNames map[int]string
	StartDate    string
	EndDate      string
	Settings     *models.AlertSettings
	Now          time.Time
}

// ComputeBreakdown computes a resource's utilization, splits its hours by
// project and derives recommendations from the peak week.
func ComputeBreakdown(in BreakdownInput) Breakdown {
	settings := models.DefaultAlertSettings()
	if in.Settings != nil {
		settings = *in.Settings
	}

	scope := ResolveScope(in.StartDate, in.EndDate, in.Now)
	result := ComputeForResource(in.Resource, in.Allocations, scope.Window, scope.Weeks)

	b := Breakdown{
		ResourceID:       in.Resource.ID,
		ResourceName:     in.Resource.Name,
		Department:       DepartmentOf(in.Resource),
		Window:           scope.Window,
		Utilization:      result,
		Projects:         projectContributions(in, scope),
		ProblematicWeeks: []WeekUtilization{},
		Metadata: Metadata{
			Department:  DepartmentOf(in.Resource),
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			GeneratedAt: in.Now,
		},
	}

	if c, ok := Classify(in.Resource, result, settings); ok {
		b.Category = &c
	}

	for _, w := range result.Weeks {
		if w.UtilizationPercent > FullCapacityPercent {
			b.ProblematicWeeks = append(b.ProblematicWeeks, w)
		}
	}

	contributing := 0
	for _, p := range b.Projects {
		if p.Hours > 0 {
			contributing++
		}
	}

	var excess float64
	if peak, ok := result.PeakWeek(); ok {
		excess = peak.AllocatedHours - result.EffectiveCapacity
	} else if len(result.Weeks) == 0 {
		excess = result.TotalAllocatedHours - result.EffectiveCapacity
	}
	if excess < 0 {
		excess = 0
	}

	b.Recommendations = Recommend(RecommendationInput{
		UtilizationPercent:   result.PeakUtilizationPercent,
		ProblematicPeriods:   len(b.ProblematicWeeks),
		ContributingProjects: contributing,
		ExcessHours:          excess,
	})

	return b
}

func projectContributions(in BreakdownInput, scope Scope) []ProjectContribution {
	byProject := make(map[int]*ProjectContribution)
	for _, a := range in.Allocations {
		if a.ResourceID != in.Resource.ID || !Qualifies(a, scope.Window) {
			continue
		}

		pc, ok := byProject[a.ProjectID]
		if !ok {
			pc = &ProjectContribution{
				ProjectID:   a.ProjectID,
				ProjectName: in.ProjectNames[a.ProjectID],
			}
			byProject[a.ProjectID] = pc
		}
		pc.Allocations++

		if len(scope.Weeks) == 0 {
			pc.Hours += a.AllocatedHoursTotal
			continue
		}
		for _, h := range Expand(a, scope.Weeks) {
			pc.Hours += h
		}
	}

	contributions := make([]ProjectContribution, 0, len(byProject))
	for _, pc := range byProject {
		contributions = append(contributions, *pc)
	}
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].Hours != contributions[j].Hours {
			return contributions[i].Hours > contributions[j].Hours
		}
		return contributions[i].ProjectID < contributions[j].ProjectID
	})
	return contributions
}
