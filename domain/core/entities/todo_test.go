package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTodo_JSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Todo{ID: 1, Title: ptr("a")})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"title":"a"}`, string(data))

	data, err = json.Marshal(Todo{})
	require.NoError(t, err)
	assert.Equal(t, `{"id":0}`, string(data))
}

func TestTodo_JSONKeepsExplicitZeroValues(t *testing.T) {
	todo := Todo{ID: 1, Title: ptr(""), Description: ptr(""), Completed: ptr(false)}

	data, err := json.Marshal(todo)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"title":"","description":"","completed":false}`, string(data))
}

func TestTodo_KeyAndHasID(t *testing.T) {
	todo := Todo{ID: -4}

	assert.Equal(t, "-4", todo.Key())
	assert.True(t, todo.HasID(-4))
	assert.False(t, todo.HasID(4))
}

func TestTodo_Clone(t *testing.T) {
	original := Todo{ID: 2, Title: ptr("a"), Description: ptr("d"), Completed: ptr(true)}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	*clone.Title = "b"
	*clone.Completed = false
	assert.Equal(t, "a", *original.Title)
	assert.True(t, *original.Completed)

	assert.Equal(t, Todo{ID: 3}, Todo{ID: 3}.Clone())
}
