package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	repository "todo-tracker.com/todo-tracker/internal/repositories"
	"todo-tracker.com/todo-tracker/internal/services"
	"todo-tracker.com/todo-tracker/internal/snapshot"
	"todo-tracker.com/todo-tracker/pkg/constants"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

func setupServer(t *testing.T) (*echo.Echo, *services.TodoService) {
	t.Helper()

	repo := repository.NewTodoRepository(snapshot.NewMemoryStore(), constants.DefaultSnapshotKey)
	service := services.NewTodoService(context.Background(), repo)

	e := echo.New()
	Register(e, NewHandler(service), 1000, []string{"*"})
	return e, service
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) model.Todo {
	t.Helper()
	var todo model.Todo
	if err := json.Unmarshal(rec.Body.Bytes(), &todo); err != nil {
		t.Fatalf("decode todo: %v (body %s)", err, rec.Body.String())
	}
	return todo
}

func TestHandler_CreateAndGet(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(e, http.MethodPost, "/todos", `{"title":"Pay rent","priority":"high","category":"home","dueDate":"2024-02-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeTodo(t, rec)
	if created.ID == "" || created.Priority != constants.PriorityHigh || created.Completed {
		t.Errorf("unexpected todo %+v", created)
	}

	rec = do(e, http.MethodGet, "/todos/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeTodo(t, rec); got.ID != created.ID {
		t.Errorf("expected %s, got %s", created.ID, got.ID)
	}
}

func TestHandler_CreateStartsPending(t *testing.T) {
	e, _ := setupServer(t)

	rec := do(e, http.MethodPost, "/todos", `{"title":"Already done?","completed":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created := decodeTodo(t, rec); created.Completed {
		t.Errorf("expected a new todo to start pending, got %+v", created)
	}
}

func TestHandler_CreateValidation(t *testing.T) {
	e, _ := setupServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"title":`},
		{"missing title", `{"priority":"low"}`},
		{"bad priority", `{"title":"x","priority":"urgent"}`},
		{"bad due date", `{"title":"x","dueDate":"next week"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/todos", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_ListAppliesFiltersAndSort(t *testing.T) {
	e, service := setupServer(t)
	ctx := context.Background()

	for _, d := range []model.TodoDraft{
		{Title: "A", Priority: constants.PriorityLow, Category: "home", DueDate: model.MustParseDate("2024-03-10")},
		{Title: "B", Priority: constants.PriorityHigh, Category: "work", DueDate: model.MustParseDate("2024-05-01")},
		{Title: "C", Priority: constants.PriorityHigh, Category: "work", DueDate: model.MustParseDate("2024-01-01")},
	} {
		if _, err := service.Add(ctx, d); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	tests := []struct {
		target string
		want   []string
	}{
		{"/todos", []string{"C", "B", "A"}},
		{"/todos?category=home", []string{"A"}},
		{"/todos?category=all", []string{"C", "B", "A"}},
		{"/todos?high_priority=true", []string{"C", "B"}},
		{"/todos?search=a&status=active", []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var body struct {
				Count int          `json:"count"`
				Todos []model.Todo `json:"todos"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if body.Count != len(tt.want) {
				t.Fatalf("expected %d todos, got %d", len(tt.want), body.Count)
			}
			for i, title := range tt.want {
				if body.Todos[i].Title != title {
					t.Errorf("position %d: expected %s, got %s", i, title, body.Todos[i].Title)
				}
			}
		})
	}

	if rec := do(e, http.MethodGet, "/todos?status=done", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/todos?high_priority=maybe", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad high_priority, got %d", rec.Code)
	}
}

func TestHandler_ToggleUpdateDelete(t *testing.T) {
	e, service := setupServer(t)
	todo, _ := service.Add(context.Background(), model.TodoDraft{Title: "old", Priority: constants.PriorityLow})

	rec := do(e, http.MethodPost, "/todos/"+todo.ID+"/toggle", "")
	if rec.Code != http.StatusOK || !decodeTodo(t, rec).Completed {
		t.Fatalf("toggle failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPatch, "/todos/"+todo.ID, `{"title":"new","id":"hijack","createdAt":"2000-01-01T00:00:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := decodeTodo(t, rec)
	if updated.Title != "new" || updated.ID != todo.ID || !updated.CreatedAt.Equal(todo.CreatedAt) || !updated.Completed {
		t.Errorf("unexpected update result %+v", updated)
	}

	rec = do(e, http.MethodDelete, "/todos/"+todo.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	for _, req := range []struct{ method, target, body string }{
		{http.MethodGet, "/todos/" + todo.ID, ""},
		{http.MethodPost, "/todos/" + todo.ID + "/toggle", ""},
		{http.MethodPatch, "/todos/" + todo.ID, `{"title":"again"}`},
		{http.MethodDelete, "/todos/" + todo.ID, ""},
	} {
		if rec := do(e, req.method, req.target, req.body); rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", req.method, req.target, rec.Code)
		}
	}
}

func TestHandler_CategoriesAndStats(t *testing.T) {
	e, service := setupServer(t)
	ctx := context.Background()
	first, _ := service.Add(ctx, model.TodoDraft{Title: "a", Priority: constants.PriorityHigh, Category: "work"})
	_, _ = service.Add(ctx, model.TodoDraft{Title: "b", Priority: constants.PriorityLow, Category: "home"})
	_, _, _ = service.Toggle(ctx, first.ID)

	rec := do(e, http.MethodGet, "/todos/categories", "")
	var cats struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(cats.Categories, ",") != "all,work,home" {
		t.Errorf("unexpected categories %v", cats.Categories)
	}

	rec = do(e, http.MethodGet, "/todos/stats", "")
	var stats struct {
		Total        int `json:"total"`
		Completed    int `json:"completed"`
		Pending      int `json:"pending"`
		HighPriority int `json:"highPriority"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != 2 || stats.Completed != 1 || stats.Pending != 1 || stats.HighPriority != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
