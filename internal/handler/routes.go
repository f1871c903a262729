package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/middleware"
)

// RegisterRoutes mounts the JSON API on e. Mutations require apiKey.
func RegisterRoutes(e *echo.Echo, apiKey string, dashboard *DashboardHandler, heatmap *HeatmapHandler, api *APIHandler) {
	// Dashboard
	e.GET("/api/dashboard/alerts", dashboard.GetAlerts)
	e.GET("/api/dashboard/resources/:id/breakdown", dashboard.GetBreakdown)
	e.GET("/api/dashboard/heatmap", heatmap.GetHeatmap)

	// Public API routes
	e.GET("/api/resources", api.ListResources)
	e.GET("/api/resources/:id", api.GetResource)
	e.GET("/api/resources/:id/allocations", api.ListResourceAllocations)
	e.GET("/api/projects", api.ListProjects)
	e.GET("/api/settings/alerts", api.GetAlertSettings)

	// Protected API routes (require x-api-key)
	protected := e.Group("/api")
	protected.Use(middleware.APIKeyAuth(apiKey))
	protected.POST("/resources", api.CreateResource)
	protected.PUT("/resources/:id", api.UpdateResource)
	protected.DELETE("/resources/:id", api.DeleteResource)
	protected.POST("/projects", api.CreateProject)
	protected.POST("/allocations", api.CreateAllocation)
	protected.PUT("/allocations/:id", api.UpdateAllocation)
	protected.DELETE("/allocations/:id", api.DeleteAllocation)
	protected.PUT("/settings/alerts", api.UpdateAlertSettings)
}
