package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"todo-backend/application/commands"
	"todo-backend/application/commands/bus"
	"todo-backend/application/queries"
	querybus "todo-backend/application/queries/bus"
	"todo-backend/domain/core/validators"
	"todo-backend/pkg/common"
	pkgerrors "todo-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	todoAddedMessage    = "Todo has been added"
	todoNotFoundMessage = "No todos found"
)

// TodoHandlerOptions tune transport-level behaviour of the todo endpoints
type TodoHandlerOptions struct {
	// LegacyNotFoundStatus answers a missing id with 200 instead of 404.
	LegacyNotFoundStatus bool
}

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	schema       *validators.TodoSchema
	errorHandler *pkgerrors.ErrorHandler
	options      TodoHandlerOptions
	logger       *zap.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	schema *validators.TodoSchema,
	errorHandler *pkgerrors.ErrorHandler,
	options TodoHandlerOptions,
	logger *zap.Logger,
) *TodoHandler {
	return &TodoHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		schema:       schema,
		errorHandler: errorHandler,
		options:      options,
		logger:       logger,
	}
}

// Root handles GET /
func (h *TodoHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"Hello": "World"})
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListTodosQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}

// GetTodo handles GET /todos/{todo_id}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "todo_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("todo_id must be an integer").
			WithCode("INVALID_PATH_PARAM").
			WithDetails(map[string]interface{}{"todo_id": raw}).
			WithCause(err))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetTodoQuery{ID: id})
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			status := http.StatusNotFound
			if h.options.LegacyNotFoundStatus {
				status = http.StatusOK
			}
			h.message(w, status, todoNotFoundMessage)
			return
		}
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.Handle(w, r, pkgerrors.NewTooLargeError(maxErr.Limit))
			return
		}
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("failed to read request body").WithCause(err))
		return
	}

	todo, err := h.schema.Decode(body)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.CreateTodoCommand{Todo: todo}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Debug("Todo added", zap.Int("id", todo.ID))
	h.message(w, http.StatusOK, todoAddedMessage)
}

func (h *TodoHandler) respond(w http.ResponseWriter, status int, data interface{}) {
	if err := common.RespondJSON(w, status, data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *TodoHandler) message(w http.ResponseWriter, status int, message string) {
	if err := common.RespondMessage(w, status, message); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
