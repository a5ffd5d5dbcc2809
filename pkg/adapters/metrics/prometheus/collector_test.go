package prometheus

import (
	"testing"
	"time"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	c := NewCollectorWithRegistry(prometheus.NewRegistry())

	c.RecordRequest("GET", 200)
	c.RecordRequest("GET", 200)
	c.RecordRequest("POST", 405)
	c.RecordUpstream(domain.EndpointEverything, "success", 120*time.Millisecond)
	c.RecordUpstream(domain.EndpointTopHeadlines, "error", time.Second)
	c.RecordUpstreamError("status")

	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", "200")); got != 2 {
		t.Errorf("expected 2 GET/200 requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.requests.WithLabelValues("POST", "405")); got != 1 {
		t.Errorf("expected 1 POST/405 request, got %v", got)
	}
	if got := testutil.ToFloat64(c.upstreamCalls.WithLabelValues("everything", "success")); got != 1 {
		t.Errorf("expected 1 successful everything call, got %v", got)
	}
	if got := testutil.ToFloat64(c.upstreamErrors.WithLabelValues("status")); got != 1 {
		t.Errorf("expected 1 status error, got %v", got)
	}
	if got := testutil.CollectAndCount(c.upstreamLatency); got != 2 {
		t.Errorf("expected 2 latency series, got %d", got)
	}
}

func TestCollector_SeparateRegistries(t *testing.T) {
	// Registering twice against fresh registries must not panic
	NewCollectorWithRegistry(prometheus.NewRegistry())
	NewCollectorWithRegistry(prometheus.NewRegistry())
}
