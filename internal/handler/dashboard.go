package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/service"
)

type DashboardHandler struct {
	alertService     *service.AlertService
	breakdownService *service.BreakdownService
}

func NewDashboardHandler(alertService *service.AlertService, breakdownService *service.BreakdownService) *DashboardHandler {
	return &DashboardHandler{
		alertService:     alertService,
		breakdownService: breakdownService,
	}
}

// periodQuery reads the dashboard filters. Dates are passed through as
// given; the engine decides what to do with malformed ones.
func periodQuery(c echo.Context) service.PeriodQuery {
	return service.PeriodQuery{
		Department: c.QueryParam("department"),
		StartDate:  c.QueryParam("startDate"),
		EndDate:    c.QueryParam("endDate"),
	}
}

// GetAlerts returns resources grouped by utilization alert category
// @Summary Capacity alerts
// @Description Categorizes active resources into critical, error, warning, info and unassigned by their peak weekly utilization. Weeks already over are skipped.
// @Tags Dashboard
// @Produce json
// @Param department query string false "Department or role filter, unknown values mean all"
// @Param startDate query string false "Period start (YYYY-MM-DD)"
// @Param endDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} utilization.AlertPayload "Alert payload"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/alerts [get]
func (h *DashboardHandler) GetAlerts(c echo.Context) error {
	payload, err := h.alertService.GetAlerts(c.Request().Context(), periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payload)
}

// GetBreakdown explains one resource's utilization
// @Summary Resource utilization breakdown
// @Description Returns the weekly utilization of a resource, its hours per project, the overallocated weeks and recommendations.
// @Tags Dashboard
// @Produce json
// @Param id path int true "Resource ID"
// @Param startDate query string false "Period start (YYYY-MM-DD)"
// @Param endDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} utilization.Breakdown "Breakdown"
// @Failure 400 {object} map[string]string "Invalid resource ID"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/resources/{id}/breakdown [get]
func (h *DashboardHandler) GetBreakdown(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid resource ID",
		})
	}

	b, err := h.breakdownService.GetBreakdown(c.Request().Context(), id, c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, b)
}
