package queries

import "todo-backend/domain/core/entities"

// GetTodoQuery represents a query to get a single record by id
type GetTodoQuery struct {
	ID int
}

// Validate validates the GetTodoQuery
func (q GetTodoQuery) Validate() error {
	return nil
}

// GetTodoResult holds the first record matching the query id
type GetTodoResult struct {
	Todo entities.Todo `json:"todo"`
}
