package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todo-tracker.com/todo-tracker/internal/data_models"
	filter "todo-tracker.com/todo-tracker/internal/filters"
	"todo-tracker.com/todo-tracker/internal/services"
	"todo-tracker.com/todo-tracker/internal/validators"
	"todo-tracker.com/todo-tracker/pkg/exceptions"
)

type Handler struct {
	todoService *services.TodoService
}

func NewHandler(todoService *services.TodoService) *Handler {
	return &Handler{
		todoService: todoService,
	}
}

func (h *Handler) ListTodos(c echo.Context) error {
	highOnly := false
	if raw := c.QueryParam("high_priority"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "high_priority must be true or false")
		}
		highOnly = v
	}

	var category *string
	if values, ok := c.QueryParams()["category"]; ok && len(values) > 0 {
		category = &values[0]
	}

	criteria, err := filter.ParseCriteria(c.QueryParam("search"), c.QueryParam("status"), category, highOnly)
	if err != nil {
		return toHTTPError(err)
	}

	todos := filter.Apply(h.todoService.Todos(), criteria)

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(todos),
		"todos": todos,
	})
}

func (h *Handler) GetTodo(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return toHTTPError(exceptions.ErrTodoIDRequired)
	}

	todo, ok := h.todoService.Find(id)
	if !ok {
		return toHTTPError(exceptions.ErrTodoNotFound)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c echo.Context) error {
	var req dto.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(exceptions.ErrInvalidJSON)
	}

	draft, err := validators.ValidateCreateTodoRequest(&req)
	if err != nil {
		return toHTTPError(err)
	}

	todo, err := h.todoService.Add(c.Request().Context(), draft)
	if err != nil {
		return saveError(err)
	}

	return c.JSON(http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	id := c.Param("id")

	var req dto.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(exceptions.ErrInvalidJSON)
	}

	patch, err := validators.ValidateUpdateTodoRequest(&req)
	if err != nil {
		return toHTTPError(err)
	}

	todo, found, err := h.todoService.Update(c.Request().Context(), id, patch)
	if !found {
		return toHTTPError(exceptions.ErrTodoNotFound)
	}
	if err != nil {
		return saveError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) ToggleTodo(c echo.Context) error {
	todo, found, err := h.todoService.Toggle(c.Request().Context(), c.Param("id"))
	if !found {
		return toHTTPError(exceptions.ErrTodoNotFound)
	}
	if err != nil {
		return saveError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	found, err := h.todoService.Delete(c.Request().Context(), c.Param("id"))
	if !found {
		return toHTTPError(exceptions.ErrTodoNotFound)
	}
	if err != nil {
		return saveError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"categories": filter.Categories(h.todoService.Todos()),
	})
}

func (h *Handler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, filter.Summarize(h.todoService.Todos()))
}

// saveError reports a rejected mutation with its own status and a failed
// snapshot write as 500.
func saveError(err error) error {
	var appErr *exceptions.Exception
	if errors.As(err, &appErr) {
		return toHTTPError(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to save todos")
}

func toHTTPError(err error) error {
	var appErr *exceptions.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}

	log.Printf("unexpected error: %v", err)
	return echo.NewHTTPError(exceptions.StatusCode(err), "internal server error")
}
