package utilization

import (
	"strings"
	"time"

	"github.com/gti/resource-planner/internal/models"
)

// DefaultDepartment is used for resources with neither department nor role.
const DefaultDepartment = "General"

// Input is a request-scoped snapshot for an alert computation. StartDate and
// EndDate are YYYY-MM-DD strings as the caller supplied them; empty or
// malformed values mean the bound is absent.
type Input struct {
	Resources   []models.Resource
	Allocations []models.Allocation
	Department  string
	StartDate   string
	EndDate     string
	Settings    *models.AlertSettings
	Now         time.Time
}

// AlertResource is a categorized resource with its utilization detail.
type AlertResource struct {
	ID                     int               `json:"id"`
	Name                   string            `json:"name"`
	Department             string            `json:"department"`
	WeeklyCapacityHours    float64           `json:"weeklyCapacityHours"`
	PeakUtilizationPercent int               `json:"peakUtilizationPercent"`
	TotalAllocatedHours    float64           `json:"totalAllocatedHours"`
	PeakWeekKey            *WeekKey          `json:"peakWeekKey"`
	WeeklyBreakdown        []WeekUtilization `json:"weeklyBreakdown"`
}

// AlertCategory groups the resources classified into one category.
type AlertCategory struct {
	Type        Category        `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Icon        string          `json:"icon"`
	Threshold   *float64        `json:"threshold,omitempty"`
	Count       int             `json:"count"`
	Resources   []AlertResource `json:"resources"`
}

// Summary counts categorized resources.
type Summary struct {
	TotalAlerts     int `json:"totalAlerts"`
	CriticalCount   int `json:"criticalCount"`
	WarningCount    int `json:"warningCount"`
	InfoCount       int `json:"infoCount"`
	UnassignedCount int `json:"unassignedCount"`
}

// Metadata echoes the request. StartDate and EndDate are the dates as
// requested, before normalization.
type Metadata struct {
	Department  string    `json:"department"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// AlertPayload is the dashboard alert response.
type AlertPayload struct {
	Categories []AlertCategory `json:"categories"`
	Summary    Summary         `json:"summary"`
	Metadata   Metadata        `json:"metadata"`
}

// Count returns how many resources landed in category c.
func (p AlertPayload) Count(c Category) int {
	for _, cat := range p.Categories {
		if cat.Type == c {
			return len(cat.Resources)
		}
	}
	return 0
}

// Scope is the resolved period of a computation: the normalized window and
// the weeks inside it that are not yet over.
type Scope struct {
	Window Window
	Weeks  []WeekKey
}

// ResolveScope parses and normalizes a raw period against now.
func ResolveScope(startDate, endDate string, now time.Time) Scope {
	start, okStart := ParseDate(startDate)
	end, okEnd := ParseDate(endDate)
	if !okStart || !okEnd || end.Before(start) {
		return Scope{Window: Window{}}
	}

	w := Normalize(start, end, now)
	return Scope{
		Window: w,
		Weeks:  WeekKeysInRange(w.Start, w.End, now),
	}
}

// DepartmentOf returns the department a resource is filtered by: its
// department, else its role, else DefaultDepartment.
func DepartmentOf(r models.Resource) string {
	switch {
	case strings.TrimSpace(r.Department) != "":
		return r.Department
	case strings.TrimSpace(r.Role) != "":
		return r.Role
	default:
		return DefaultDepartment
	}
}

// FilterResources keeps active resources in department. An empty or "all"
// department, or one no active resource belongs to, keeps every active
// resource.
func FilterResources(resources []models.Resource, department string) []models.Resource {
	active := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.IsActive {
			active = append(active, r)
		}
	}

	if department == "" || strings.EqualFold(department, "all") {
		return active
	}

	matched := make([]models.Resource, 0, len(active))
	for _, r := range active {
		if strings.EqualFold(DepartmentOf(r), department) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return active
	}
	return matched
}

// GroupByResource indexes allocations by resource ID.
func GroupByResource(allocations []models.Allocation) map[int][]models.Allocation {
	grouped := make(map[int][]models.Allocation)
	for _, a := range allocations {
		grouped[a.ResourceID] = append(grouped[a.ResourceID], a)
	}
	return grouped
}

// ComputeAlerts classifies every in-scope resource by its peak weekly
// utilization and assembles the dashboard payload. Only non-empty
// categories are included, in CategoryOrder.
func ComputeAlerts(in Input) AlertPayload {
	settings := models.DefaultAlertSettings()
	if in.Settings != nil {
		settings = *in.Settings
	}

	department := in.Department
	if department == "" {
		department = "all"
	}

	scope := ResolveScope(in.StartDate, in.EndDate, in.Now)
	grouped := make(map[Category][]AlertResource, len(CategoryOrder))
	byResource := GroupByResource(in.Allocations)

	for _, res := range FilterResources(in.Resources, in.Department) {
		result := ComputeForResource(res, byResource[res.ID], scope.Window, scope.Weeks)
		category, ok := Classify(res, result, settings)
		if !ok {
			continue
		}
		grouped[category] = append(grouped[category], AlertResource{
			ID:                     res.ID,
			Name:                   res.Name,
			Department:             DepartmentOf(res),
			WeeklyCapacityHours:    res.WeeklyCapacityHours,
			PeakUtilizationPercent: result.PeakUtilizationPercent,
			TotalAllocatedHours:    result.TotalAllocatedHours,
			PeakWeekKey:            result.PeakWeekKey,
			WeeklyBreakdown:        result.Weeks,
		})
	}

	payload := AlertPayload{
		Categories: []AlertCategory{},
		Metadata: Metadata{
			Department:  department,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			GeneratedAt: in.Now,
		},
	}

	for _, c := range CategoryOrder {
		resources := grouped[c]
		if len(resources) == 0 {
			continue
		}
		style := categoryStyles[c]
		cat := AlertCategory{
			Type:        c,
			Title:       style.Title,
			Description: style.Description,
			Color:       style.Color,
			Icon:        style.Icon,
			Count:       len(resources),
			Resources:   resources,
		}
		if t, ok := c.Threshold(settings); ok {
			cat.Threshold = &t
		}
		payload.Categories = append(payload.Categories, cat)
		payload.Summary.TotalAlerts += len(resources)
	}

	payload.Summary.CriticalCount = len(grouped[CategoryCritical])
	payload.Summary.WarningCount = len(grouped[CategoryWarning])
	payload.Summary.InfoCount = len(grouped[CategoryInfo])
	payload.Summary.UnassignedCount = len(grouped[CategoryUnassigned])

	return payload
}
