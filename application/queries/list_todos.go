package queries

import "todo-backend/domain/core/entities"

// ListTodosQuery represents a query for every stored record
type ListTodosQuery struct{}

// Validate validates the ListTodosQuery
func (q ListTodosQuery) Validate() error {
	return nil
}

// ListTodosResult holds the records in insertion order
type ListTodosResult struct {
	Todos []entities.Todo `json:"todos"`
}
