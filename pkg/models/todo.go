package model

import (
	"time"

	"todo-tracker.com/todo-tracker/pkg/constants"
)

type Todo struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Completed   bool               `json:"completed"`
	Priority    constants.Priority `json:"priority"`
	Category    string             `json:"category"`
	DueDate     Date               `json:"dueDate"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// TodoDraft is everything a caller supplies when adding a todo. The store
// assigns ID and CreatedAt, and new todos start pending.
type TodoDraft struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    constants.Priority `json:"priority"`
	Category    string             `json:"category"`
	DueDate     Date               `json:"dueDate"`
}

// TodoPatch carries the fields of a partial update. Nil fields are left
// untouched. ID and CreatedAt are not patchable.
type TodoPatch struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Completed   *bool               `json:"completed,omitempty"`
	Priority    *constants.Priority `json:"priority,omitempty"`
	Category    *string             `json:"category,omitempty"`
	DueDate     *Date               `json:"dueDate,omitempty"`
}

func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && p.Category == nil && p.DueDate == nil
}

// ApplyTo returns a copy of t with the patch merged in.
func (p TodoPatch) ApplyTo(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	return t
}

func (t Todo) IsHighPriority() bool {
	return t.Priority == constants.PriorityHigh
}
