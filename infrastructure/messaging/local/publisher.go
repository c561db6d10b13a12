// Package local provides an in-process event publisher used when no event
// bus is configured.
package local

import (
	"context"

	"todo-backend/application/ports"
	"todo-backend/domain/events"

	"go.uber.org/zap"
)

// Publisher logs events instead of sending them anywhere
type Publisher struct {
	logger *zap.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a log-only publisher
func NewPublisher(logger *zap.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish logs the event at info level
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.logger.Info("Domain event",
		zap.String("eventType", event.GetEventType()),
		zap.String("eventID", event.GetEventID()),
		zap.String("aggregateID", event.GetAggregateID()),
		zap.Time("timestamp", event.GetTimestamp()),
	)
	return nil
}
