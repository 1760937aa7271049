// Package router provides employee module route registration.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/client"
	"github.com/festy23/employee_api/internal/employee/handler"
	"github.com/festy23/employee_api/internal/employee/service"
)

// RegisterRoutes wires the employee module: upstream client -> service ->
// handler, and registers the routes under /api/v1/employee.
func RegisterRoutes(r *gin.Engine, httpClient *http.Client, upstreamBaseURL string, logger *zap.SugaredLogger) {
	c := client.New(httpClient, upstreamBaseURL, logger)
	svc := service.New(c, logger)
	h := handler.New(svc, logger)

	group := r.Group("/api/v1/employee")
	group.GET("", h.GetAll)
	group.GET("/search/:searchString", h.SearchByName)
	group.GET("/highestSalary", h.GetHighestSalary)
	group.GET("/topTenHighestEarningEmployeeNames", h.GetTopTenEarnerNames)
	group.GET("/:id", h.GetByID)
	group.POST("", h.Create)
	group.DELETE("/:id", h.DeleteByID)
}
