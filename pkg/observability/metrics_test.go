package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_BusinessMetrics(t *testing.T) {
	c := NewCollector()

	c.TodoCreated()
	c.TodoCreated()
	c.TodosStored(2)
	c.EventPublished("todo.created", nil)
	c.EventPublished("todo.created", errors.New("bus down"))
	c.EventPublished("todo.created", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.todosCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.todosStored))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.eventsPublished.WithLabelValues("todo.created", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.eventsPublished.WithLabelValues("todo.created", "failure")))
}

func TestCollector_ObserveRequest(t *testing.T) {
	c := NewCollector()

	c.ObserveRequest(http.MethodGet, "/todos/{todo_id}", http.StatusOK, 10*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/todos/{todo_id}", http.StatusNotFound, 5*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/todos/{todo_id}", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/todos/{todo_id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/todos/{todo_id}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpDuration))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.TodoCreated()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "todo_todos_created_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
