package models

import (
	"time"
)

// AllocationStatusActive is the only status the capacity engine considers
const AllocationStatusActive = "active"

// DefaultWeeklyCapacityHours is applied when a resource is created without a capacity
const DefaultWeeklyCapacityHours = 40.0

// Resource represents a person whose time is allocated to projects
type Resource struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Department          string    `json:"department"`
	Role                string    `json:"role,omitempty"`
	WeeklyCapacityHours float64   `json:"weekly_capacity_hours"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

// Project is referenced by allocations for labeling only
type Project struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Allocation assigns a resource to a project over an inclusive date span.
// WeeklyHours, keyed by ISO week ("2024-W05"), takes precedence over
// AllocatedHoursTotal when present.
type Allocation struct {
	ID                  int                `json:"id"`
	ResourceID          int                `json:"resource_id"`
	ProjectID           int                `json:"project_id"`
	StartDate           time.Time          `json:"start_date"`
	EndDate             time.Time          `json:"end_date"`
	Status              string             `json:"status"`
	AllocatedHoursTotal float64            `json:"allocated_hours_total"`
	WeeklyHours         map[string]float64 `json:"weekly_hours,omitempty"`
}

// AlertSettings holds the utilization thresholds, in percent
type AlertSettings struct {
	WarningThreshold          float64 `json:"warningThreshold"`
	ErrorThreshold            float64 `json:"errorThreshold"`
	CriticalThreshold         float64 `json:"criticalThreshold"`
	UnderUtilizationThreshold float64 `json:"underUtilizationThreshold"`
}

// DefaultAlertSettings returns the thresholds used when none are stored
func DefaultAlertSettings() AlertSettings {
	return AlertSettings{
		WarningThreshold:          90,
		ErrorThreshold:            100,
		CriticalThreshold:         120,
		UnderUtilizationThreshold: 50,
	}
}

// --- API Request/Response Types ---

// CreateResourceRequest is the request body for creating a resource
type CreateResourceRequest struct {
	Name                string   `json:"name" validate:"required"`
	Department          string   `json:"department,omitempty"`
	Role                string   `json:"role,omitempty"`
	WeeklyCapacityHours *float64 `json:"weekly_capacity_hours,omitempty" validate:"omitempty,min=0,max=168"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// UpdateResourceRequest is the request body for updating a resource
type UpdateResourceRequest struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Department          *string  `json:"department,omitempty"`
	Role                *string  `json:"role,omitempty"`
	WeeklyCapacityHours *float64 `json:"weekly_capacity_hours,omitempty" validate:"omitempty,min=0,max=168"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpsertAllocationRequest is the request body for creating or replacing an allocation
type UpsertAllocationRequest struct {
	ResourceID          int                `json:"resource_id" validate:"required,min=1"`
	ProjectID           int                `json:"project_id" validate:"required,min=1"`
	StartDate           string             `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate             string             `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	Status              string             `json:"status,omitempty" validate:"omitempty,oneof=active planned completed cancelled"`
	AllocatedHoursTotal float64            `json:"allocated_hours_total" validate:"min=0"`
	WeeklyHours         map[string]float64 `json:"weekly_hours,omitempty" validate:"omitempty,dive,keys,len=8,endkeys,min=0"`
}

// UpdateAlertSettingsRequest is the request body for updating alert thresholds
type UpdateAlertSettingsRequest struct {
	WarningThreshold          float64 `json:"warningThreshold" validate:"gt=0"`
	ErrorThreshold            float64 `json:"errorThreshold" validate:"gtefield=WarningThreshold"`
	CriticalThreshold         float64 `json:"criticalThreshold" validate:"gtefield=ErrorThreshold"`
	UnderUtilizationThreshold float64 `json:"underUtilizationThreshold" validate:"gte=0,ltefield=WarningThreshold"`
}

// WebhookAlertPayload is sent to the webhook destination when overallocation is detected
type WebhookAlertPayload struct {
	ID                     string    `json:"id"`
	ResourceID             int       `json:"resourceId"`
	ResourceName           string    `json:"resourceName"`
	Category               string    `json:"category"`
	PeakWeekKey            string    `json:"peakWeekKey,omitempty"`
	PeakUtilizationPercent int       `json:"peakUtilizationPercent"`
	Message                string    `json:"message"`
	DetectedAt             time.Time `json:"detectedAt"`
}
