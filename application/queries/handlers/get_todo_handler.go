package handlers

import (
	"context"
	"errors"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/application/queries"
	pkgerrors "todo-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetTodoHandler handles single record queries
type GetTodoHandler struct {
	todoRepo ports.TodoRepository
	logger   *zap.Logger
}

// NewGetTodoHandler creates a new get todo handler
func NewGetTodoHandler(todoRepo ports.TodoRepository, logger *zap.Logger) *GetTodoHandler {
	return &GetTodoHandler{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// Handle returns the first record with the query id, or a NOT_FOUND AppError
func (h *GetTodoHandler) Handle(ctx context.Context, query queries.GetTodoQuery) (*queries.GetTodoResult, error) {
	todo, err := h.todoRepo.FindByID(ctx, query.ID)
	if err != nil {
		if errors.Is(err, ports.ErrTodoNotFound) {
			return nil, pkgerrors.NewNotFoundError("todo").
				WithDetails(map[string]interface{}{"id": query.ID}).
				WithCause(err)
		}
		return nil, fmt.Errorf("failed to get todo %d: %w", query.ID, err)
	}

	return &queries.GetTodoResult{Todo: todo}, nil
}
