package fixtures

import "todo-backend/domain/core/entities"

// String returns a pointer to s, for optional record fields
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional record fields
func Bool(b bool) *bool { return &b }

// TodoBuilder helps create test records with default values
type TodoBuilder struct {
	todo entities.Todo
}

func NewTodoBuilder() *TodoBuilder {
	return &TodoBuilder{
		todo: entities.Todo{
			ID:    1,
			Title: String("Test todo"),
		},
	}
}

func (b *TodoBuilder) WithID(id int) *TodoBuilder {
	b.todo.ID = id
	return b
}

func (b *TodoBuilder) WithTitle(title string) *TodoBuilder {
	b.todo.Title = String(title)
	return b
}

func (b *TodoBuilder) WithDescription(description string) *TodoBuilder {
	b.todo.Description = String(description)
	return b
}

func (b *TodoBuilder) Completed() *TodoBuilder {
	b.todo.Completed = Bool(true)
	return b
}

func (b *TodoBuilder) Build() entities.Todo {
	return b.todo.Clone()
}
