package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/service"
)

type HeatmapHandler struct {
	heatmapService *service.HeatmapService
}

func NewHeatmapHandler(heatmapService *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{heatmapService: heatmapService}
}

// GetHeatmap returns weekly utilization cells per resource
// @Summary Weekly utilization heatmap
// @Description Returns one row per active resource with a cell per remaining ISO week. Without a period the next 12 weeks are shown.
// @Tags Dashboard
// @Produce json
// @Param department query string false "Department or role filter"
// @Param startDate query string false "Period start (YYYY-MM-DD)"
// @Param endDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} utilization.Heatmap "Heatmap"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/heatmap [get]
func (h *HeatmapHandler) GetHeatmap(c echo.Context) error {
	hm, err := h.heatmapService.GetHeatmap(c.Request().Context(), periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, hm)
}
