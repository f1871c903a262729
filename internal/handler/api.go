package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/service"
)

type APIHandler struct {
	resourceService   *service.ResourceService
	allocationService *service.AllocationService
	settingsService   *service.SettingsService
	validate          *validator.Validate
}

func NewAPIHandler(
	resourceService *service.ResourceService,
	allocationService *service.AllocationService,
	settingsService *service.SettingsService,
) *APIHandler {
	return &APIHandler{
		resourceService:   resourceService,
		allocationService: allocationService,
		settingsService:   settingsService,
		validate:          validator.New(),
	}
}

// respondError maps service errors onto status codes
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrResourceNotFound),
		errors.Is(err, repository.ErrProjectNotFound),
		errors.Is(err, repository.ErrAllocationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidAllocation):
		status = http.StatusBadRequest
	}

	return c.JSON(status, map[string]string{
		"error": err.Error(),
	})
}

// bind decodes and validates the request body into req. It returns the
// message to report when the body is rejected.
func (h *APIHandler) bind(c echo.Context, req interface{}) string {
	if err := c.Bind(req); err != nil {
		return "invalid request body"
	}
	if err := h.validate.Struct(req); err != nil {
		return err.Error()
	}
	return ""
}

func pathID(c echo.Context) (int, bool) {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": "invalid ID",
	})
}

// ListResources returns all resources
// @Summary List resources
// @Description Returns every resource, active or not
// @Tags Resources
// @Produce json
// @Success 200 {array} models.Resource "List of resources"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources [get]
func (h *APIHandler) ListResources(c echo.Context) error {
	resources, err := h.resourceService.ListResources(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resources)
}

// GetResource returns a single resource
// @Summary Get a resource
// @Tags Resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} models.Resource "Resource"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources/{id} [get]
func (h *APIHandler) GetResource(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	res, err := h.resourceService.GetResource(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

// CreateResource creates a resource
// @Summary Create a resource
// @Description Weekly capacity defaults to 40 hours and new resources are active
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resource body models.CreateResourceRequest true "Resource to create"
// @Success 201 {object} models.Resource "Created resource"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources [post]
func (h *APIHandler) CreateResource(c echo.Context) error {
	var req models.CreateResourceRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	res, err := h.resourceService.CreateResource(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, res)
}

// UpdateResource updates a resource
// @Summary Update a resource
// @Description Only the fields present in the body are changed
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Resource ID"
// @Param resource body models.UpdateResourceRequest true "Resource fields to update"
// @Success 200 {object} models.Resource "Updated resource"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources/{id} [put]
func (h *APIHandler) UpdateResource(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	var req models.UpdateResourceRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	res, err := h.resourceService.UpdateResource(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

// DeleteResource deletes a resource and its allocations
// @Summary Delete a resource
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} map[string]interface{} "Success"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources/{id} [delete]
func (h *APIHandler) DeleteResource(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.resourceService.DeleteResource(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// ListResourceAllocations returns the allocations of a resource
// @Summary List a resource's allocations
// @Tags Allocations
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {array} models.Allocation "Allocations"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/resources/{id}/allocations [get]
func (h *APIHandler) ListResourceAllocations(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	allocations, err := h.allocationService.ListByResource(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, allocations)
}

// ListProjects returns all projects
// @Summary List projects
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/projects [get]
func (h *APIHandler) ListProjects(c echo.Context) error {
	projects, err := h.resourceService.ListProjects(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, projects)
}

// CreateProject creates a project
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param project body models.CreateProjectRequest true "Project to create"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/projects [post]
func (h *APIHandler) CreateProject(c echo.Context) error {
	var req models.CreateProjectRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	p, err := h.resourceService.CreateProject(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

// CreateAllocation creates an allocation
// @Summary Create an allocation
// @Description Assigns a resource to a project. weekly_hours is keyed by ISO week ("2024-W05") and takes precedence over allocated_hours_total. An overload alert is posted to the webhook when the resource ends up critical or overallocated.
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param allocation body models.UpsertAllocationRequest true "Allocation to create"
// @Success 201 {object} models.Allocation "Created allocation"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource or project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/allocations [post]
func (h *APIHandler) CreateAllocation(c echo.Context) error {
	var req models.UpsertAllocationRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	a, err := h.allocationService.Create(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, a)
}

// UpdateAllocation replaces an allocation
// @Summary Replace an allocation
// @Tags Allocations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Allocation ID"
// @Param allocation body models.UpsertAllocationRequest true "Allocation"
// @Success 200 {object} models.Allocation "Updated allocation"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Allocation, resource or project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/allocations/{id} [put]
func (h *APIHandler) UpdateAllocation(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	var req models.UpsertAllocationRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	a, err := h.allocationService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

// DeleteAllocation deletes an allocation
// @Summary Delete an allocation
// @Tags Allocations
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Allocation ID"
// @Success 200 {object} map[string]interface{} "Success"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Allocation not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/allocations/{id} [delete]
func (h *APIHandler) DeleteAllocation(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.allocationService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// GetAlertSettings returns the alert thresholds in effect
// @Summary Get alert thresholds
// @Tags Settings
// @Produce json
// @Success 200 {object} models.AlertSettings "Alert thresholds"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/settings/alerts [get]
func (h *APIHandler) GetAlertSettings(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateAlertSettings replaces the alert thresholds
// @Summary Update alert thresholds
// @Description Thresholds must be ordered under-utilization <= warning <= error <= critical. Cached alert payloads are dropped.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body models.UpdateAlertSettingsRequest true "Alert thresholds"
// @Success 200 {object} models.AlertSettings "Stored thresholds"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/settings/alerts [put]
func (h *APIHandler) UpdateAlertSettings(c echo.Context) error {
	var req models.UpdateAlertSettingsRequest
	if msg := h.bind(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	settings, err := h.settingsService.Update(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}
