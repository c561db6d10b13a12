//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"todo-backend/application/ports"
	"todo-backend/infrastructure/config"
	"todo-backend/infrastructure/persistence/memory"
	"todo-backend/interfaces/http/rest"
	"todo-backend/pkg/observability"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideMetrics,
	wire.Bind(new(ports.MetricsRecorder), new(*observability.Collector)),
	ProvideTracer,
	ProvideTodoStore,
	wire.Bind(new(ports.TodoRepository), new(*memory.TodoStore)),
	ProvideEventPublisher,
	ProvideErrorHandler,
	ProvideTodoSchema,
	ProvideCommandBus,
	ProvideQueryBus,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
