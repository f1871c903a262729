package utilization

import (
	"github.com/gti/resource-planner/internal/models"
)

// Category is an alert severity tier.
type Category string

const (
	CategoryCritical   Category = "critical"
	CategoryError      Category = "error"
	CategoryWarning    Category = "warning"
	CategoryInfo       Category = "info"
	CategoryUnassigned Category = "unassigned"
)

// CategoryOrder is the order categories appear in an alert payload.
var CategoryOrder = []Category{
	CategoryCritical,
	CategoryError,
	CategoryWarning,
	CategoryInfo,
	CategoryUnassigned,
}

type categoryStyle struct {
	Title       string
	Description string
	Color       string
	Icon        string
}

var categoryStyles = map[Category]categoryStyle{
	CategoryCritical: {
		Title:       "Critical Overallocation",
		Description: "Resources allocated far beyond their capacity in at least one week",
		Color:       "#8B0000",
		Icon:        "alert-octagon",
	},
	CategoryError: {
		Title:       "Overallocated",
		Description: "Resources allocated at or above their full capacity",
		Color:       "#dc2626",
		Icon:        "alert-triangle",
	},
	CategoryWarning: {
		Title:       "Near Capacity",
		Description: "Resources approaching their capacity limit",
		Color:       "#f97316",
		Icon:        "alert-circle",
	},
	CategoryInfo: {
		Title:       "Under-utilized",
		Description: "Resources with spare capacity for additional work",
		Color:       "#22c55e",
		Icon:        "info",
	},
	CategoryUnassigned: {
		Title:       "Unassigned",
		Description: "Resources with no active allocations in the period",
		Color:       "#e5e7eb",
		Icon:        "user-x",
	},
}

// Threshold returns the settings threshold a category is entered at.
// Unassigned has none.
func (c Category) Threshold(s models.AlertSettings) (float64, bool) {
	switch c {
	case CategoryCritical:
		return s.CriticalThreshold, true
	case CategoryError:
		return s.ErrorThreshold, true
	case CategoryWarning:
		return s.WarningThreshold, true
	case CategoryInfo:
		return s.UnderUtilizationThreshold, true
	default:
		return 0, false
	}
}

// ClassifyPercent maps a peak utilization percentage to a category. The band
// between the under-utilization and warning thresholds belongs to no
// category, and ok is false there.
func ClassifyPercent(peak int, s models.AlertSettings) (Category, bool) {
	p := float64(peak)
	switch {
	case p >= s.CriticalThreshold:
		return CategoryCritical, true
	case p >= s.ErrorThreshold:
		return CategoryError, true
	case p >= s.WarningThreshold:
		return CategoryWarning, true
	case p > 0 && p < s.UnderUtilizationThreshold:
		return CategoryInfo, true
	case p == 0:
		return CategoryUnassigned, true
	default:
		return "", false
	}
}

// Classify categorizes a resource by its peak utilization. Inactive
// resources are never categorized.
func Classify(res models.Resource, r Result, s models.AlertSettings) (Category, bool) {
	if !res.IsActive {
		return "", false
	}
	return ClassifyPercent(r.PeakUtilizationPercent, s)
}
