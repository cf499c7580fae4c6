// Package filter derives the read-only, filtered and sorted view of a todo
// list. Nothing here mutates its input.
package filter

import (
	"strings"

	"todo-tracker.com/todo-tracker/pkg/constants"
	"todo-tracker.com/todo-tracker/pkg/exceptions"
)

// Criteria are ANDed together. The zero value matches every todo.
type Criteria struct {
	Search string
	Status constants.StatusFilter
	// Category keeps only todos with exactly this category when non-nil.
	// An empty string selects uncategorized todos.
	Category         *string
	HighPriorityOnly bool
}

func InCategory(category string) *string {
	return &category
}

// ParseCriteria normalizes raw adapter input. An empty status means "all";
// a nil category or "all" disables category filtering.
func ParseCriteria(search, status string, category *string, highPriorityOnly bool) (Criteria, error) {
	c := Criteria{
		Search:           search,
		Status:           constants.StatusFilter(strings.ToLower(strings.TrimSpace(status))),
		HighPriorityOnly: highPriorityOnly,
	}

	if c.Status == "" {
		c.Status = constants.StatusAll
	}
	if !c.Status.Valid() {
		return Criteria{}, exceptions.ErrInvalidStatusFilter
	}
	if category != nil && *category != constants.CategoryAll {
		c.Category = InCategory(*category)
	}

	return c, nil
}
