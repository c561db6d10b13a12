package ports

import (
	"context"
	"errors"

	"todo-backend/domain/core/entities"
	"todo-backend/domain/events"
)

// ErrTodoNotFound is returned by repositories when no record carries the requested id
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the interface for todo storage
// This is a port in hexagonal architecture - the application doesn't know about the implementation
type TodoRepository interface {
	// Append adds a record to the end of the list, unmodified
	Append(ctx context.Context, todo entities.Todo) error

	// List returns every record in insertion order
	List(ctx context.Context) ([]entities.Todo, error)

	// FindByID returns the first record, in insertion order, with the given id
	FindByID(ctx context.Context, id int) (entities.Todo, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int, error)
}

// EventPublisher publishes domain events to interested parties
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// MetricsRecorder records business metrics
type MetricsRecorder interface {
	TodoCreated()
	TodosStored(count int)
	EventPublished(eventType string, err error)
}
