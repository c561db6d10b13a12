// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"todo-backend/domain/core/entities"
	"todo-backend/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockTodoRepository mocks ports.TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Append(ctx context.Context, todo entities.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) List(ctx context.Context) ([]entities.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByID(ctx context.Context, id int) (entities.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Todo), args.Error(1)
}

func (m *MockTodoRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockEventPublisher mocks ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockMetricsRecorder mocks ports.MetricsRecorder
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) TodoCreated() {
	m.Called()
}

func (m *MockMetricsRecorder) TodosStored(count int) {
	m.Called(count)
}

func (m *MockMetricsRecorder) EventPublished(eventType string, err error) {
	m.Called(eventType, err)
}
