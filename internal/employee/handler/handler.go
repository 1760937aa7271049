// Package handler provides HTTP handlers for employee endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/model"
	"github.com/festy23/employee_api/internal/employee/service"
)

// Handler handles HTTP requests for employee endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new employee handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetAll handles GET /api/v1/employee.
func (h *Handler) GetAll(c *gin.Context) {
	employees, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("GetAll request failed", "error", err)
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// SearchByName handles GET /api/v1/employee/search/:searchString.
func (h *Handler) SearchByName(c *gin.Context) {
	query := c.Param("searchString")

	employees, err := h.service.SearchByName(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("SearchByName request failed", "query", query, "error", err)
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetByID handles GET /api/v1/employee/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	employee, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidID):
			badRequestResponse(c, err.Error())
		case errors.Is(err, model.ErrNotFound):
			notFoundResponse(c, err.Error())
		default:
			h.logger.Errorw("GetByID request failed", "id", id, "error", err)
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

// GetHighestSalary handles GET /api/v1/employee/highestSalary.
func (h *Handler) GetHighestSalary(c *gin.Context) {
	highest, err := h.service.HighestSalary(c.Request.Context())
	if err != nil {
		h.logger.Errorw("GetHighestSalary request failed", "error", err)
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, highest)
}

// GetTopTenEarnerNames handles GET /api/v1/employee/topTenHighestEarningEmployeeNames.
func (h *Handler) GetTopTenEarnerNames(c *gin.Context) {
	names, err := h.service.TopTenEarnerNames(c.Request.Context())
	if err != nil {
		h.logger.Errorw("GetTopTenEarnerNames request failed", "error", err)
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, names)
}

// Create handles POST /api/v1/employee.
func (h *Handler) Create(c *gin.Context) {
	var input model.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid employee input: "+err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			badRequestResponse(c, err.Error())
		default:
			h.logger.Errorw("Create request failed", "name", input.Name, "error", err)
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, created)
}

// DeleteByID handles DELETE /api/v1/employee/:id.
// Deletion is an existence check: the upstream API does not support DELETE,
// so a 200 here confirms the employee existed and reports its name.
func (h *Handler) DeleteByID(c *gin.Context) {
	id := c.Param("id")

	name, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidID):
			badRequestResponse(c, err.Error())
		case errors.Is(err, model.ErrNotFound):
			notFoundResponse(c, err.Error())
		default:
			h.logger.Errorw("DeleteByID request failed", "id", id, "error", err)
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, name)
}
