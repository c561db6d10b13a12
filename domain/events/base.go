package events

import (
	"time"

	"todo-backend/domain/core/entities"

	"github.com/google/uuid"
)

// Source identifies this service as the origin of published events
const Source = "todo-backend"

// Event types
const (
	TypeTodoCreated = "todo.created"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// TodoCreated is raised after a record has been appended to the list
type TodoCreated struct {
	BaseEvent
	Todo entities.Todo `json:"todo"`
}

// NewTodoCreated creates a TodoCreated event
func NewTodoCreated(todo entities.Todo, timestamp time.Time) TodoCreated {
	return TodoCreated{
		BaseEvent: BaseEvent{
			EventID:     uuid.New().String(),
			AggregateID: todo.Key(),
			EventType:   TypeTodoCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		Todo: todo,
	}
}
