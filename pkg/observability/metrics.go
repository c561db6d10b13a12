package observability

import (
	"net/http"
	"strconv"
	"time"

	"todo-backend/application/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "todo"

// Collector owns the service's Prometheus registry and records both HTTP
// and business metrics.
type Collector struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	todosCreated    prometheus.Counter
	todosStored     prometheus.Gauge
	eventsPublished *prometheus.CounterVec
}

var _ ports.MetricsRecorder = (*Collector)(nil)

// NewCollector creates a collector backed by a fresh registry.
// Go runtime and process collectors are registered alongside the service metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		todosCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "todos_created_total",
			Help:      "Records appended to the list.",
		}),
		todosStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "todos_stored",
			Help:      "Records currently held in memory.",
		}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events handed to the publisher, by outcome.",
		}, []string{"event_type", "status"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.todosCreated,
		c.todosStored,
		c.eventsPublished,
	)

	return c
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// TodoCreated implements ports.MetricsRecorder
func (c *Collector) TodoCreated() {
	c.todosCreated.Inc()
}

// TodosStored implements ports.MetricsRecorder
func (c *Collector) TodosStored(count int) {
	c.todosStored.Set(float64(count))
}

// EventPublished implements ports.MetricsRecorder
func (c *Collector) EventPublished(eventType string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	c.eventsPublished.WithLabelValues(eventType, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		Registry: c.registry,
	})
}
