package handlers

import (
	"context"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/application/queries"

	"go.uber.org/zap"
)

// CountTodosHandler handles count queries
type CountTodosHandler struct {
	todoRepo ports.TodoRepository
	logger   *zap.Logger
}

// NewCountTodosHandler creates a new count todos handler
func NewCountTodosHandler(todoRepo ports.TodoRepository, logger *zap.Logger) *CountTodosHandler {
	return &CountTodosHandler{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// Handle returns the number of stored records without copying them
func (h *CountTodosHandler) Handle(ctx context.Context, query queries.CountTodosQuery) (*queries.CountTodosResult, error) {
	count, err := h.todoRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count todos: %w", err)
	}

	h.logger.Debug("Counted todos", zap.Int("count", count))

	return &queries.CountTodosResult{Count: count}, nil
}
