package rest

import (
	"net/http"

	"todo-backend/application/commands/bus"
	"todo-backend/application/queries"
	querybus "todo-backend/application/queries/bus"
	"todo-backend/domain/core/validators"
	"todo-backend/infrastructure/config"
	"todo-backend/interfaces/http/rest/handlers"
	"todo-backend/interfaces/http/rest/middleware"
	"todo-backend/pkg/common"
	pkgerrors "todo-backend/pkg/errors"
	"todo-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	schema       *validators.TodoSchema
	metrics      *observability.Collector
	tracer       *observability.Tracer
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	schema *validators.TodoSchema,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		commandBus:   commandBus,
		queryBus:     queryBus,
		schema:       schema,
		metrics:      metrics,
		tracer:       tracer,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableTracing {
		router.Use(rt.tracer.Middleware)
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Use(chimiddleware.RequestSize(rt.cfg.MaxBodyBytes))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	todoHandler := handlers.NewTodoHandler(
		rt.commandBus,
		rt.queryBus,
		rt.schema,
		rt.errorHandler,
		handlers.TodoHandlerOptions{LegacyNotFoundStatus: rt.cfg.LegacyNotFoundStatus},
		rt.logger,
	)

	router.Get("/", todoHandler.Root)
	router.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/{todo_id}", todoHandler.GetTodo)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	if err := common.RespondJSON(w, http.StatusOK, common.StatusResponse{Status: "healthy"}); err != nil {
		rt.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// readinessCheck reports ready once the store answers, with its current size
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	result, err := rt.queryBus.Ask(req.Context(), queries.CountTodosQuery{})
	if err != nil {
		rt.errorHandler.HandleStatus(w, req, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	count := result.(*queries.CountTodosResult).Count
	if err := common.RespondJSON(w, http.StatusOK, common.StatusResponse{Status: "ready", Todos: &count}); err != nil {
		rt.logger.Error("Failed to encode readiness response", zap.Error(err))
	}
}
