package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"todo-backend/domain/core/entities"
	"todo-backend/pkg/errors"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// todoSchemaJSON describes the wire shape of a todo record. Only field types
// are constrained; unknown fields pass through and are dropped on decode.
const todoSchemaJSON = `{
  "title": "Todo",
  "type": "object",
  "properties": {
    "id":          { "type": "integer" },
    "title":       { "type": "string" },
    "description": { "type": "string" },
    "completed":   { "type": "boolean" }
  }
}`

const todoSchemaURL = "todo.schema.json"

// TodoSchema checks request bodies against the todo record schema and decodes
// them into entities.Todo.
type TodoSchema struct {
	schema *jsonschema.Schema
}

// NewTodoSchema compiles the embedded record schema
func NewTodoSchema() (*TodoSchema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(todoSchemaURL, strings.NewReader(todoSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add todo schema: %w", err)
	}

	schema, err := compiler.Compile(todoSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile todo schema: %w", err)
	}

	return &TodoSchema{schema: schema}, nil
}

// MustNewTodoSchema is like NewTodoSchema but panics on error
func MustNewTodoSchema() *TodoSchema {
	s, err := NewTodoSchema()
	if err != nil {
		panic(err)
	}
	return s
}

// todoBody mirrors entities.Todo but keeps the id as its JSON literal, so
// integral values written as 1.0 or 1e2 can still be converted.
type todoBody struct {
	ID          *json.Number `json:"id"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Completed   *bool        `json:"completed"`
}

// Decode validates raw JSON against the schema and decodes it.
// Any failure is returned as a validation AppError whose details map JSON
// field paths to messages.
func (s *TodoSchema) Decode(data []byte) (entities.Todo, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return entities.Todo{}, errors.NewValidationError("request body is not valid JSON").WithCause(err)
	}
	if dec.More() {
		return entities.Todo{}, errors.NewValidationError("request body must contain a single JSON value")
	}

	if err := s.schema.Validate(doc); err != nil {
		return entities.Todo{}, schemaError(err)
	}

	var body todoBody
	if err := json.Unmarshal(data, &body); err != nil {
		return entities.Todo{}, errors.NewValidationError("request body does not match the todo schema").WithCause(err)
	}

	todo := entities.Todo{
		Title:       body.Title,
		Description: body.Description,
		Completed:   body.Completed,
	}
	if body.ID != nil {
		id, err := parseID(*body.ID)
		if err != nil {
			return entities.Todo{}, errors.NewValidationError("request body does not match the todo schema").
				WithCode("SCHEMA_MISMATCH").
				WithDetails(map[string]interface{}{"id": "must be an integer within range"}).
				WithCause(err)
		}
		todo.ID = id
	}

	return todo, nil
}

// parseID accepts any integral JSON number that fits in an int
func parseID(n json.Number) (int, error) {
	if id, err := strconv.Atoi(n.String()); err == nil {
		return id, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, fmt.Errorf("id %s is not representable as an int", n)
	}
	return int(f), nil
}

// schemaError flattens a jsonschema validation tree into a single AppError
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.NewValidationError(err.Error())
	}

	details := make(map[string]interface{})
	collectSchemaErrors(details, ve)

	return errors.NewValidationError("request body does not match the todo schema").
		WithCode("SCHEMA_MISMATCH").
		WithDetails(details)
}

func collectSchemaErrors(details map[string]interface{}, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		details[fieldPath(err.InstanceLocation)] = err.Message
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(details, cause)
	}
}

// fieldPath turns a JSON pointer like "/id" into "id"; the document root is "body"
func fieldPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "body"
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
