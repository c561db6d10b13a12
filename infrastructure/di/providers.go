package di

import (
	"context"
	"fmt"
	"time"

	"todo-backend/application/commands"
	"todo-backend/application/commands/bus"
	commands_handlers "todo-backend/application/commands/handlers"
	"todo-backend/application/ports"
	"todo-backend/application/queries"
	querybus "todo-backend/application/queries/bus"
	queries_handlers "todo-backend/application/queries/handlers"
	"todo-backend/domain/core/validators"
	"todo-backend/infrastructure/config"
	"todo-backend/infrastructure/messaging/eventbridge"
	"todo-backend/infrastructure/messaging/local"
	"todo-backend/infrastructure/persistence/memory"
	pkgerrors "todo-backend/pkg/errors"
	"todo-backend/pkg/observability"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

const slowQueryThreshold = 100 * time.Millisecond

// ProvideLogLevel parses the configured level into an adjustable level
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	return zap.ParseAtomicLevel(cfg.LogLevel)
}

// ProvideLogger creates a new logger instance bound to level
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("environment", cfg.Environment)), nil
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector()
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(cfg.EventSource)
}

// ProvideTodoStore creates the process-wide todo list
func ProvideTodoStore() *memory.TodoStore {
	return memory.NewTodoStore()
}

// ProvideEventPublisher publishes to EventBridge when a bus is configured and
// only logs events otherwise.
func ProvideEventPublisher(
	ctx context.Context,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) (ports.EventPublisher, error) {
	if cfg.EventBusName == "" {
		logger.Info("No event bus configured, domain events will only be logged")
		return local.NewPublisher(logger), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.EnableTracing {
		tracer.InstrumentAWS(&awsCfg)
	}

	return eventbridge.NewPublisher(
		awseventbridge.NewFromConfig(awsCfg),
		cfg.EventBusName,
		cfg.EventSource,
		eventbridge.DefaultBreakerSettings(),
		logger,
	), nil
}

// ProvideErrorHandler creates the HTTP error renderer
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.DebugErrors)
}

// ProvideTodoSchema compiles the request body schema
func ProvideTodoSchema() (*validators.TodoSchema, error) {
	return validators.NewTodoSchema()
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	todoRepo ports.TodoRepository,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger))

	createTodoHandler := commands_handlers.NewCreateTodoHandler(todoRepo, publisher, metrics, logger)
	err := commandBus.Register(commands.CreateTodoCommand{}, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateTodoCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return createTodoHandler.Handle(ctx, createCmd)
		},
	))
	if err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(todoRepo ports.TodoRepository, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(querybus.NewLoggingMiddleware(logger, slowQueryThreshold))

	listTodosHandler := queries_handlers.NewListTodosHandler(todoRepo, logger)
	err := queryBus.Register(queries.ListTodosQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListTodosQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return listTodosHandler.Handle(ctx, listQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	getTodoHandler := queries_handlers.NewGetTodoHandler(todoRepo, logger)
	err = queryBus.Register(queries.GetTodoQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetTodoQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return getTodoHandler.Handle(ctx, getQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	countTodosHandler := queries_handlers.NewCountTodosHandler(todoRepo, logger)
	err = queryBus.Register(queries.CountTodosQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			countQuery, ok := query.(queries.CountTodosQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return countTodosHandler.Handle(ctx, countQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	return queryBus, nil
}
