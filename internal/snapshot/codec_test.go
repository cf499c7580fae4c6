package snapshot

import (
	"errors"
	"testing"
	"time"

	"todo-tracker.com/todo-tracker/pkg/constants"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

func sampleTodos() []model.Todo {
	return []model.Todo{
		{
			ID:          "5f2b8a52-1111-4c3e-9a0e-000000000001",
			Title:       "Write report",
			Description: "Quarterly numbers",
			Priority:    constants.PriorityHigh,
			Category:    "work",
			DueDate:     model.NewDate(2024, time.May, 1),
			CreatedAt:   time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        "5f2b8a52-1111-4c3e-9a0e-000000000002",
			Title:     "Buy milk",
			Completed: true,
			Priority:  constants.PriorityLow,
			DueDate:   model.NewDate(2024, time.March, 10),
			CreatedAt: time.Date(2024, time.April, 3, 18, 0, 0, 0, time.UTC),
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	todos := sampleTodos()

	data, err := Encode(todos)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(decoded) != len(todos) {
		t.Fatalf("expected %d todos, got %d", len(todos), len(decoded))
	}
	for i := range todos {
		if decoded[i].ID != todos[i].ID ||
			decoded[i].Title != todos[i].Title ||
			decoded[i].Description != todos[i].Description ||
			decoded[i].Completed != todos[i].Completed ||
			decoded[i].Priority != todos[i].Priority ||
			decoded[i].Category != todos[i].Category ||
			!decoded[i].DueDate.Equal(todos[i].DueDate) ||
			!decoded[i].CreatedAt.Equal(todos[i].CreatedAt) {
			t.Errorf("todo %d differs: got %+v, want %+v", i, decoded[i], todos[i])
		}
	}
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestDecode_AcceptsISODueDates(t *testing.T) {
	data := []byte(`[{"id":"a","title":"A","description":"","completed":false,"priority":"medium",
		"category":"","dueDate":"2024-03-10T00:00:00.000Z","createdAt":"2024-01-01T10:00:00.000Z"}]`)

	todos, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := todos[0].DueDate.String(); got != "2024-03-10" {
		t.Errorf("expected due date 2024-03-10, got %s", got)
	}
}

func TestDecode_RejectsInvalidSnapshots(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `[{"id":`},
		{"null", `null`},
		{"object instead of array", `{"id":"a"}`},
		{"missing field", `[{"id":"a","title":"A","description":"","completed":false,"priority":"low","category":"","dueDate":"2024-01-01"}]`},
		{"bad priority", `[{"id":"a","title":"A","description":"","completed":false,"priority":"urgent","category":"","dueDate":"2024-01-01","createdAt":"2024-01-01T00:00:00Z"}]`},
		{"completed as string", `[{"id":"a","title":"A","description":"","completed":"false","priority":"low","category":"","dueDate":"2024-01-01","createdAt":"2024-01-01T00:00:00Z"}]`},
		{"bad created at", `[{"id":"a","title":"A","description":"","completed":false,"priority":"low","category":"","dueDate":"2024-01-01","createdAt":"yesterday"}]`},
		{"bad due date", `[{"id":"a","title":"A","description":"","completed":false,"priority":"low","category":"","dueDate":"soon","createdAt":"2024-01-01T00:00:00Z"}]`},
		{"empty title", `[{"id":"a","title":"","description":"","completed":false,"priority":"low","category":"","dueDate":"2024-01-01","createdAt":"2024-01-01T00:00:00Z"}]`},
		{"duplicate id", `[
			{"id":"a","title":"A","description":"","completed":false,"priority":"low","category":"","dueDate":"2024-01-01","createdAt":"2024-01-01T00:00:00Z"},
			{"id":"a","title":"B","description":"","completed":false,"priority":"low","category":"","dueDate":"2024-01-01","createdAt":"2024-01-01T00:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("expected ErrInvalidSnapshot, got %v", err)
			}
		})
	}
}
