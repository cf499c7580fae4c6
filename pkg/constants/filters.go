package constants

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

func (s StatusFilter) Valid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// CategoryAll is the synthetic category option that disables category filtering.
const CategoryAll = "all"

// DefaultSnapshotKey is the fixed name the todo list is persisted under.
const DefaultSnapshotKey = "todos"
