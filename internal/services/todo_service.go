package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "todo-tracker.com/todo-tracker/internal/repositories"
	"todo-tracker.com/todo-tracker/internal/state"
	"todo-tracker.com/todo-tracker/pkg/constants"
	"todo-tracker.com/todo-tracker/pkg/exceptions"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

var ErrStoreNotInitialized = errors.New("todo store used before NewTodoService")

// TodoService owns the authoritative todo list. All mutations go through
// state.Apply and are written to the snapshot repository afterwards.
type TodoService struct {
	mu    sync.Mutex
	repo  *repository.TodoRepository
	todos []model.Todo
	ready bool

	now   func() time.Time
	newID func() string
}

// NewTodoService restores the list from repo exactly once. A missing,
// unreadable or invalid snapshot starts the list empty.
func NewTodoService(ctx context.Context, repo *repository.TodoRepository) *TodoService {
	s := &TodoService{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		ready: true,
	}

	restored, err := repo.Load(ctx)
	if err != nil {
		log.Printf("restore failed, starting with an empty list: %v", err)
		restored = nil
	}
	s.todos, _ = state.Apply(nil, state.Set{Todos: restored})

	return s
}

func (s *TodoService) mustBeReady() {
	if s == nil || !s.ready {
		panic(ErrStoreNotInitialized)
	}
}

// Todos returns the current list in insertion order. The slice belongs to
// the caller.
func (s *TodoService) Todos() []model.Todo {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *TodoService) Find(id string) (model.Todo, bool) {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	return find(s.todos, id)
}

// Dispatch applies cmd and persists the result if the list changed. The
// in-memory list keeps the change even when the write fails. Commands that
// would store an invalid todo are rejected and leave the list untouched.
func (s *TodoService) Dispatch(ctx context.Context, cmd state.Command) ([]model.Todo, error) {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.dispatchLocked(ctx, cmd)
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out, err
}

func (s *TodoService) dispatchLocked(ctx context.Context, cmd state.Command) (bool, error) {
	if err := checkCommand(cmd); err != nil {
		return false, err
	}

	next, changed := state.Apply(s.todos, cmd)
	if !changed {
		return false, nil
	}
	s.todos = next

	if err := s.repo.Save(ctx, s.todos); err != nil {
		log.Printf("persist todos after %T: %v", cmd, err)
		return true, err
	}

	return true, nil
}

func (s *TodoService) Add(ctx context.Context, draft model.TodoDraft) (model.Todo, error) {
	s.mustBeReady()

	if draft.Priority == "" {
		draft.Priority = constants.DefaultPriority
	}
	if !draft.Priority.Valid() {
		return model.Todo{}, exceptions.ErrInvalidPriority
	}

	todo := model.Todo{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Category:    draft.Category,
		DueDate:     draft.DueDate,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := s.dispatchLocked(ctx, state.Add{Todo: todo})
	if !changed {
		return model.Todo{}, err
	}
	return todo, err
}

// Toggle flips the completed flag. found is false when no todo has id.
func (s *TodoService) Toggle(ctx context.Context, id string) (todo model.Todo, found bool, err error) {
	return s.mutate(ctx, id, state.Toggle{ID: id})
}

// Update merges patch into the todo with id. found is false when no todo
// has id. A patch with an empty title or unknown priority is rejected.
func (s *TodoService) Update(ctx context.Context, id string, patch model.TodoPatch) (todo model.Todo, found bool, err error) {
	return s.mutate(ctx, id, state.Update{ID: id, Patch: patch})
}

// Delete removes the todo with id. found is false when no todo has id.
func (s *TodoService) Delete(ctx context.Context, id string) (found bool, err error) {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatchLocked(ctx, state.Delete{ID: id})
}

// checkCommand rejects commands that would store a todo the snapshot codec
// refuses to load back.
func checkCommand(cmd state.Command) error {
	switch c := cmd.(type) {
	case state.Add:
		return checkTodo(c.Todo)
	case state.Set:
		for _, t := range c.Todos {
			if err := checkTodo(t); err != nil {
				return err
			}
		}
	case state.Update:
		p := c.Patch
		if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
			return exceptions.ErrTitleRequired
		}
		if p.Priority != nil && !p.Priority.Valid() {
			return exceptions.ErrInvalidPriority
		}
	}
	return nil
}

func checkTodo(t model.Todo) error {
	switch {
	case t.ID == "":
		return exceptions.ErrTodoIDRequired
	case strings.TrimSpace(t.Title) == "":
		return exceptions.ErrTitleRequired
	case !t.Priority.Valid():
		return exceptions.ErrInvalidPriority
	}
	return nil
}

func (s *TodoService) mutate(ctx context.Context, id string, cmd state.Command) (model.Todo, bool, error) {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := find(s.todos, id); !ok {
		return model.Todo{}, false, nil
	}

	changed, err := s.dispatchLocked(ctx, cmd)
	if !changed {
		return model.Todo{}, true, err
	}

	todo, _ := find(s.todos, id)
	return todo, true, err
}

func find(todos []model.Todo, id string) (model.Todo, bool) {
	for _, t := range todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}
