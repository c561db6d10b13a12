package local

import (
	"context"
	"testing"
	"time"

	"todo-backend/domain/core/entities"
	"todo-backend/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublisher_LogsEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewPublisher(zap.New(core))

	event := events.NewTodoCreated(entities.Todo{ID: 9}, time.Now())
	require.NoError(t, p.Publish(context.Background(), event))

	entries := logs.FilterMessage("Domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, events.TypeTodoCreated, fields["eventType"])
	assert.Equal(t, "9", fields["aggregateID"])
	assert.Equal(t, event.EventID, fields["eventID"])
}

func TestPublisher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPublisher(zap.NewNop()).Publish(ctx, events.NewTodoCreated(entities.Todo{}, time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
}
