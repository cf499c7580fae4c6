package validators

import (
	"strings"

	dto "todo-tracker.com/todo-tracker/internal/data_models"
	"todo-tracker.com/todo-tracker/pkg/constants"
	"todo-tracker.com/todo-tracker/pkg/exceptions"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

func ValidateCreateTodoRequest(r *dto.CreateTodoRequest) (model.TodoDraft, error) {
	if strings.TrimSpace(r.Title) == "" {
		return model.TodoDraft{}, exceptions.ErrTitleRequired
	}

	priority := constants.DefaultPriority
	if r.Priority != "" {
		p, ok := constants.ParsePriority(r.Priority)
		if !ok {
			return model.TodoDraft{}, exceptions.ErrInvalidPriority
		}
		priority = p
	}

	due, err := model.ParseDate(strings.TrimSpace(r.DueDate))
	if err != nil {
		return model.TodoDraft{}, exceptions.ErrInvalidDueDate
	}

	return model.TodoDraft{
		Title:       r.Title,
		Description: r.Description,
		Priority:    priority,
		Category:    r.Category,
		DueDate:     due,
	}, nil
}

func ValidateUpdateTodoRequest(r *dto.UpdateTodoRequest) (model.TodoPatch, error) {
	patch := model.TodoPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Category:    r.Category,
	}

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return model.TodoPatch{}, exceptions.ErrTitleRequired
	}

	if r.Priority != nil {
		p, ok := constants.ParsePriority(*r.Priority)
		if !ok {
			return model.TodoPatch{}, exceptions.ErrInvalidPriority
		}
		patch.Priority = &p
	}

	if r.DueDate != nil {
		due, err := model.ParseDate(strings.TrimSpace(*r.DueDate))
		if err != nil {
			return model.TodoPatch{}, exceptions.ErrInvalidDueDate
		}
		patch.DueDate = &due
	}

	return patch, nil
}
