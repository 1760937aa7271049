package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/model"
)

const statusOK = "Successfully processed request."

// Handler serves the mock upstream employee endpoints.
type Handler struct {
	store  *Store
	logger *zap.SugaredLogger
}

// New creates a new mock API handler backed by the given store.
func New(store *Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the mock upstream surface under /api/v1/employee.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/employee")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	// No DELETE: the real upstream does not support it either.
}

// List handles GET /api/v1/employee.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response[[]model.Employee]{
		Data:   h.store.List(),
		Status: statusOK,
	})
}

// Get handles GET /api/v1/employee/:id. Unknown IDs answer 200 with a null
// data payload, which is how the real upstream signals "not found".
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	employee, ok := h.store.Get(id)
	if !ok {
		h.logger.Debugw("mock get miss", "id", id)
		c.JSON(http.StatusOK, model.Response[*model.Employee]{
			Data:   nil,
			Status: statusOK,
		})
		return
	}

	c.JSON(http.StatusOK, model.Response[*model.Employee]{
		Data:   employee,
		Status: statusOK,
	})
}

// Create handles POST /api/v1/employee.
func (h *Handler) Create(c *gin.Context) {
	var input model.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Debugw("mock create rejected", "error", err)
		c.JSON(http.StatusBadRequest, model.Response[*model.Employee]{
			Data:   nil,
			Status: "Invalid employee input.",
		})
		return
	}

	created := h.store.Add(input)
	h.logger.Infow("mock employee created", "id", created.ID, "name", input.Name)
	c.JSON(http.StatusOK, model.Response[model.Employee]{
		Data:   created,
		Status: statusOK,
	})
}
