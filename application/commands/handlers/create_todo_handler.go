package handlers

import (
	"context"
	"fmt"
	"time"

	"todo-backend/application/commands"
	"todo-backend/application/ports"
	"todo-backend/domain/events"

	"go.uber.org/zap"
)

// CreateTodoHandler handles todo creation commands
type CreateTodoHandler struct {
	todoRepo  ports.TodoRepository
	publisher ports.EventPublisher
	metrics   ports.MetricsRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewCreateTodoHandler creates a new create todo handler
func NewCreateTodoHandler(
	todoRepo ports.TodoRepository,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *CreateTodoHandler {
	return &CreateTodoHandler{
		todoRepo:  todoRepo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle appends the record and announces it. The record is stored before
// the event is published; a publish failure is logged and does not undo or
// fail the creation.
func (h *CreateTodoHandler) Handle(ctx context.Context, cmd commands.CreateTodoCommand) error {
	if err := h.todoRepo.Append(ctx, cmd.Todo); err != nil {
		return fmt.Errorf("failed to append todo: %w", err)
	}

	h.metrics.TodoCreated()
	if count, err := h.todoRepo.Count(ctx); err == nil {
		h.metrics.TodosStored(count)
	}

	event := events.NewTodoCreated(cmd.Todo, h.now())
	err := h.publisher.Publish(ctx, event)
	h.metrics.EventPublished(event.GetEventType(), err)
	if err != nil {
		h.logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.String("eventID", event.GetEventID()),
			zap.Int("todoID", cmd.Todo.ID),
			zap.Error(err),
		)
	}

	return nil
}
