package handlers

import (
	"context"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/application/queries"

	"go.uber.org/zap"
)

// ListTodosHandler handles list queries
type ListTodosHandler struct {
	todoRepo ports.TodoRepository
	logger   *zap.Logger
}

// NewListTodosHandler creates a new list todos handler
func NewListTodosHandler(todoRepo ports.TodoRepository, logger *zap.Logger) *ListTodosHandler {
	return &ListTodosHandler{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// Handle returns the current list in insertion order
func (h *ListTodosHandler) Handle(ctx context.Context, query queries.ListTodosQuery) (*queries.ListTodosResult, error) {
	todos, err := h.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	h.logger.Debug("Listed todos", zap.Int("count", len(todos)))

	return &queries.ListTodosResult{Todos: todos}, nil
}
