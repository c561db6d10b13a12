package di

import (
	"todo-backend/application/commands/bus"
	"todo-backend/application/ports"
	querybus "todo-backend/application/queries/bus"
	"todo-backend/infrastructure/config"
	"todo-backend/interfaces/http/rest"
	"todo-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	LogLevel       zap.AtomicLevel
	Metrics        *observability.Collector
	TodoRepo       ports.TodoRepository
	EventPublisher ports.EventPublisher
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	Router         *rest.Router
}
