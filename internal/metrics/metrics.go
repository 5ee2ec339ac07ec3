package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder defines the interface for recording metrics
type Recorder interface {
	RecordToolCall(tool string, success bool, duration time.Duration)
	RecordHTTPRequest(startTime time.Time, path, method string, statusCode int)
}

// NoOpRecorder is a no-operation implementation for when metrics are disabled
type NoOpRecorder struct{}

// RecordToolCall implements Recorder.RecordToolCall without collecting any data.
func (NoOpRecorder) RecordToolCall(tool string, success bool, duration time.Duration) {}

// RecordHTTPRequest implements Recorder.RecordHTTPRequest without collecting any data.
func (NoOpRecorder) RecordHTTPRequest(startTime time.Time, path, method string, statusCode int) {}

// PrometheusRecorder records metrics on a private registry
type PrometheusRecorder struct {
	registry     *prometheus.Registry
	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with Go runtime and process collectors registered
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mcp_apps_tool_calls_total",
			Help: "Total number of MCP tool calls",
		}, []string{"tool", "outcome"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mcp_apps_tool_call_duration_seconds",
			Help:    "Duration of MCP tool calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mcp_apps_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"path", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mcp_apps_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.toolCalls,
		r.toolDuration,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

// RecordToolCall implements Recorder.RecordToolCall
func (r *PrometheusRecorder) RecordToolCall(tool string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	r.toolCalls.WithLabelValues(tool, outcome).Inc()
	r.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordHTTPRequest implements Recorder.RecordHTTPRequest
func (r *PrometheusRecorder) RecordHTTPRequest(startTime time.Time, path, method string, statusCode int) {
	r.httpRequests.WithLabelValues(path, method, strconv.Itoa(statusCode)).Inc()
	r.httpDuration.WithLabelValues(path, method).Observe(time.Since(startTime).Seconds())
}

// Registry returns the registry the recorder collects into
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
