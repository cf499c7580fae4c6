package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "todo-tracker.com/todo-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, allowedOrigins []string) {
	e.Use(middleware.CORS(allowedOrigins))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/todos", h.ListTodos)
	e.POST("/todos", h.CreateTodo)
	e.GET("/todos/categories", h.ListCategories)
	e.GET("/todos/stats", h.GetStats)
	e.GET("/todos/:id", h.GetTodo)
	e.PATCH("/todos/:id", h.UpdateTodo)
	e.POST("/todos/:id/toggle", h.ToggleTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)
}
