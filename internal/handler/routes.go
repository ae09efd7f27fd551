package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the employee API on e.
func RegisterRoutes(e *echo.Echo, h *EmployeeHandler) {
	g := e.Group("/employees")
	g.POST("", h.CreateHandler)
	g.GET("", h.ListHandler)
	g.GET("/stats", h.StatsHandler)
	g.GET("/export", h.ExportHandler)
	g.GET("/:id", h.GetHandler)
	g.DELETE("/:id", h.DeleteHandler)
}
