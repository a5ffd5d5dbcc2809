package prometheus

import (
	"strconv"
	"time"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	requests        *prometheus.CounterVec
	upstreamCalls   *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector registered with
// the default registry
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a collector registered with reg
func NewCollectorWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsproxy_requests_total",
				Help: "Total number of HTTP requests handled, by method and response status",
			},
			[]string{"method", "status"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsproxy_upstream_requests_total",
				Help: "Total number of NewsAPI calls, by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsproxy_upstream_errors_total",
				Help: "Total number of failed NewsAPI calls, by failure kind",
			},
			[]string{"kind"},
		),
		upstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsproxy_upstream_latency_seconds",
				Help:    "NewsAPI call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
	}
}

// RecordRequest counts one handled HTTP request
func (c *Collector) RecordRequest(method string, status int) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// RecordUpstream counts one NewsAPI call and observes its latency
func (c *Collector) RecordUpstream(endpoint domain.Endpoint, outcome string, duration time.Duration) {
	c.upstreamCalls.WithLabelValues(string(endpoint), outcome).Inc()
	c.upstreamLatency.WithLabelValues(string(endpoint)).Observe(duration.Seconds())
}

// RecordUpstreamError counts one failed NewsAPI call
func (c *Collector) RecordUpstreamError(kind string) {
	c.upstreamErrors.WithLabelValues(kind).Inc()
}
