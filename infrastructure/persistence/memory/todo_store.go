package memory

import (
	"context"
	"sync"

	"todo-backend/application/ports"
	"todo-backend/domain/core/entities"
)

// TodoStore provides an in-memory, insertion-ordered implementation of
// ports.TodoRepository. Contents live for the lifetime of the process.
type TodoStore struct {
	mu    sync.RWMutex
	todos []entities.Todo
}

var _ ports.TodoRepository = (*TodoStore)(nil)

// NewTodoStore creates an empty store
func NewTodoStore() *TodoStore {
	return &TodoStore{
		todos: make([]entities.Todo, 0),
	}
}

// Append adds a record to the end of the list
func (s *TodoStore) Append(ctx context.Context, todo entities.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = append(s.todos, todo.Clone())
	return nil
}

// List returns a deep copy of every record in insertion order
func (s *TodoStore) List(ctx context.Context) ([]entities.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Todo, len(s.todos))
	for i, todo := range s.todos {
		out[i] = todo.Clone()
	}
	return out, nil
}

// FindByID scans in insertion order and returns the first match
func (s *TodoStore) FindByID(ctx context.Context, id int) (entities.Todo, error) {
	if err := ctx.Err(); err != nil {
		return entities.Todo{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, todo := range s.todos {
		if todo.HasID(id) {
			return todo.Clone(), nil
		}
	}

	return entities.Todo{}, ports.ErrTodoNotFound
}

// Count returns the number of stored records
func (s *TodoStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.todos), nil
}
