package commands

import "todo-backend/domain/core/entities"

// CreateTodoCommand appends a record to the todo list
type CreateTodoCommand struct {
	Todo entities.Todo
}

// Validate validates the CreateTodoCommand.
// Records are stored as received, so there is nothing to reject here.
func (c CreateTodoCommand) Validate() error {
	return nil
}
