package state

import (
	"fmt"

	model "todo-tracker.com/todo-tracker/pkg/models"
)

// Apply returns the list that results from running cmd against todos, and
// whether anything changed. The input slice is never modified; when nothing
// changes the input is returned as is. Ids stay unique: adding an id that is
// already present is a no-op, and Set keeps the first todo for each id.
func Apply(todos []model.Todo, cmd Command) ([]model.Todo, bool) {
	switch c := cmd.(type) {
	case Add:
		if indexOf(todos, c.Todo.ID) >= 0 {
			return todos, false
		}
		next := make([]model.Todo, len(todos), len(todos)+1)
		copy(next, todos)
		return append(next, c.Todo), true

	case Toggle:
		return replace(todos, c.ID, func(t model.Todo) model.Todo {
			t.Completed = !t.Completed
			return t
		})

	case Update:
		return replace(todos, c.ID, c.Patch.ApplyTo)

	case Delete:
		i := indexOf(todos, c.ID)
		if i < 0 {
			return todos, false
		}
		next := make([]model.Todo, 0, len(todos)-1)
		next = append(next, todos[:i]...)
		return append(next, todos[i+1:]...), true

	case Set:
		next := make([]model.Todo, 0, len(c.Todos))
		seen := make(map[string]struct{}, len(c.Todos))
		for _, t := range c.Todos {
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			next = append(next, t)
		}
		return next, true

	default:
		panic(fmt.Sprintf("state: unknown command %T", cmd))
	}
}

func replace(todos []model.Todo, id string, fn func(model.Todo) model.Todo) ([]model.Todo, bool) {
	i := indexOf(todos, id)
	if i < 0 {
		return todos, false
	}

	next := make([]model.Todo, len(todos))
	copy(next, todos)

	updated := fn(next[i])
	updated.ID = next[i].ID
	updated.CreatedAt = next[i].CreatedAt
	next[i] = updated

	return next, true
}

func indexOf(todos []model.Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}
