package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeFetcher struct {
	body json.RawMessage
	err  error

	mu      sync.Mutex
	queries []domain.Query
}

func (f *fakeFetcher) Fetch(ctx context.Context, q domain.Query) (json.RawMessage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.body, f.err
}

type upstreamCall struct {
	Endpoint domain.Endpoint
	Outcome  string
}

type fakeMetrics struct {
	mu       sync.Mutex
	requests []int
	upstream []upstreamCall
	errors   []string
}

func (m *fakeMetrics) RecordRequest(method string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, status)
}

func (m *fakeMetrics) RecordUpstream(endpoint domain.Endpoint, outcome string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstream = append(m.upstream, upstreamCall{Endpoint: endpoint, Outcome: outcome})
}

func (m *fakeMetrics) RecordUpstreamError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, kind)
}

func TestManager_FetchSuccess(t *testing.T) {
	fetcher := &fakeFetcher{body: json.RawMessage(`{"articles":[]}`)}
	metrics := &fakeMetrics{}
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewManager(fetcher, metrics, zap.New(core))

	body, err := m.Fetch(context.Background(), domain.Query{Category: "sports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"articles":[]}` {
		t.Errorf("unexpected body %s", body)
	}

	wantQueries := []domain.Query{{Category: "sports", Country: "us", PageSize: "50"}}
	if diff := cmp.Diff(wantQueries, fetcher.queries); diff != "" {
		t.Errorf("fetcher queries mismatch (-want +got):\n%s", diff)
	}

	wantCalls := []upstreamCall{{Endpoint: domain.EndpointTopHeadlinesCategory, Outcome: OutcomeSuccess}}
	if diff := cmp.Diff(wantCalls, metrics.upstream); diff != "" {
		t.Errorf("upstream metrics mismatch (-want +got):\n%s", diff)
	}
	if len(metrics.errors) != 0 {
		t.Errorf("expected no error metrics, got %v", metrics.errors)
	}

	if logs.FilterMessage("fetching from NewsAPI").Len() != 1 {
		t.Errorf("expected one fetch log line, got %v", logs.All())
	}
}

func TestManager_FetchStatusError(t *testing.T) {
	fetcher := &fakeFetcher{err: &domain.UpstreamError{Kind: domain.ErrorKindStatus, StatusCode: 500}}
	metrics := &fakeMetrics{}
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewManager(fetcher, metrics, zap.New(core))

	_, err := m.Fetch(context.Background(), domain.Query{Query: "election"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "NewsAPI error: 500" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wantCalls := []upstreamCall{{Endpoint: domain.EndpointEverything, Outcome: OutcomeError}}
	if diff := cmp.Diff(wantCalls, metrics.upstream); diff != "" {
		t.Errorf("upstream metrics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"status"}, metrics.errors); diff != "" {
		t.Errorf("error metrics mismatch (-want +got):\n%s", diff)
	}

	errLogs := logs.FilterMessage("proxy error").All()
	if len(errLogs) != 1 {
		t.Fatalf("expected one error log line, got %d", len(errLogs))
	}
	if errLogs[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %v", errLogs[0].Level)
	}
}

func TestManager_FetchForeignErrorIsTagged(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	metrics := &fakeMetrics{}
	m := NewManager(fetcher, metrics, zap.NewNop())

	_, err := m.Fetch(context.Background(), domain.Query{})

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *domain.UpstreamError, got %T", err)
	}
	if upErr.Kind != domain.ErrorKindUnknown {
		t.Errorf("expected unknown kind, got %q", upErr.Kind)
	}
	if err.Error() != "boom" {
		t.Errorf("expected cause message, got %q", err.Error())
	}
	if diff := cmp.Diff([]string{"unknown"}, metrics.errors); diff != "" {
		t.Errorf("error metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_LogsCarryRequestID(t *testing.T) {
	fetcher := &fakeFetcher{err: &domain.UpstreamError{Kind: domain.ErrorKindStatus, StatusCode: 401}}
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewManager(fetcher, &fakeMetrics{}, zap.New(core))

	ctx := domain.WithRequestID(context.Background(), "req-7")
	if _, err := m.Fetch(ctx, domain.Query{}); err == nil {
		t.Fatal("expected error")
	}

	for _, msg := range []string{"fetching from NewsAPI", "proxy error"} {
		entries := logs.FilterMessage(msg).All()
		if len(entries) != 1 {
			t.Fatalf("expected one %q log line, got %d", msg, len(entries))
		}
		if got := entries[0].ContextMap()["request_id"]; got != "req-7" {
			t.Errorf("expected request_id req-7 on %q, got %v", msg, got)
		}
	}
}
