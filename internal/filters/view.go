package filter

import (
	"sort"
	"strings"

	"todo-tracker.com/todo-tracker/pkg/constants"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

// Apply returns the todos matching c, high priority first and then by due
// date. Medium and low priority are not ranked against each other. Todos
// without a due date come after dated ones in the same tier; remaining ties
// keep list order.
func Apply(todos []model.Todo, c Criteria) []model.Todo {
	search := strings.ToLower(c.Search)

	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if matches(t, c, search) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out
}

func matches(t model.Todo, c Criteria, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(t.Title), search) &&
		!strings.Contains(strings.ToLower(t.Description), search) {
		return false
	}

	switch c.Status {
	case constants.StatusActive:
		if t.Completed {
			return false
		}
	case constants.StatusCompleted:
		if !t.Completed {
			return false
		}
	}

	if c.Category != nil && t.Category != *c.Category {
		return false
	}

	if c.HighPriorityOnly && !t.IsHighPriority() {
		return false
	}

	return true
}

func less(a, b model.Todo) bool {
	if a.IsHighPriority() != b.IsHighPriority() {
		return a.IsHighPriority()
	}

	switch {
	case a.DueDate.IsZero():
		return false
	case b.DueDate.IsZero():
		return true
	}
	return a.DueDate.Before(b.DueDate)
}

// Categories lists the category filter options: "all" followed by every
// distinct category in first-seen order.
func Categories(todos []model.Todo) []string {
	out := []string{constants.CategoryAll}
	seen := make(map[string]struct{})

	for _, t := range todos {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}

	return out
}

type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	HighPriority int `json:"highPriority"`
}

// Summarize counts over the full, unfiltered list.
func Summarize(todos []model.Todo) Stats {
	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
		if t.IsHighPriority() {
			s.HighPriority++
		}
	}
	return s
}
