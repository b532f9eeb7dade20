// Package metrics collects Prometheus metrics for the employees API and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the recording surface used by the HTTP middleware and
// the service layer.
type MetricsCollector interface {
	RecordRequest(method, route string, statusCode int, duration time.Duration)
	RecordEmployeeCreated()
	RecordEmployeeDeleted()
}

// Collector is the Prometheus implementation of [MetricsCollector].
type Collector struct {
	requests         *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	employeesCreated prometheus.Counter
	employeesDeleted prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "employees_http_requests_total",
			Help: "Number of HTTP requests by route, method and status code.",
		}, []string{"method", "route", "status_code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		employeesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "employees_created_total",
			Help: "Number of employees created.",
		}),
		employeesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "employees_deleted_total",
			Help: "Number of employees deleted.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.requestLatency,
		c.employeesCreated,
		c.employeesDeleted,
	)

	return c
}

// RecordRequest counts one served request and observes its latency.
// route is the matched route pattern, not the raw path.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordEmployeeCreated() {
	c.employeesCreated.Inc()
}

func (c *Collector) RecordEmployeeDeleted() {
	c.employeesDeleted.Inc()
}

// Handler returns the Prometheus scrape handler for gatherer. Compression is
// left to the HTTP middleware.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{DisableCompression: true})
}

// Nop returns a [MetricsCollector] that records nothing.
func Nop() MetricsCollector {
	return nopCollector{}
}

type nopCollector struct{}

func (nopCollector) RecordRequest(string, string, int, time.Duration) {}
func (nopCollector) RecordEmployeeCreated()                           {}
func (nopCollector) RecordEmployeeDeleted()                           {}
