package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"todo-tracker.com/todo-tracker/internal/snapshot"
	model "todo-tracker.com/todo-tracker/pkg/models"
)

// TodoRepository reads and writes the whole todo list as one snapshot.
type TodoRepository struct {
	store snapshot.Store
	key   string
}

func NewTodoRepository(store snapshot.Store, key string) *TodoRepository {
	return &TodoRepository{
		store: store,
		key:   key,
	}
}

// Load returns the persisted list. A missing or unparseable snapshot yields
// nil with no error; only backend failures are returned.
func (r *TodoRepository) Load(ctx context.Context) ([]model.Todo, error) {
	data, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", r.key, err)
	}
	if !ok {
		return nil, nil
	}

	todos, err := snapshot.Decode(data)
	if err != nil {
		if errors.Is(err, snapshot.ErrInvalidSnapshot) {
			log.Printf("discarding snapshot %q: %v", r.key, err)
			return nil, nil
		}
		return nil, err
	}

	return todos, nil
}

// Save overwrites the snapshot with the full list.
func (r *TodoRepository) Save(ctx context.Context, todos []model.Todo) error {
	data, err := snapshot.Encode(todos)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("write snapshot %q: %w", r.key, err)
	}

	return nil
}
