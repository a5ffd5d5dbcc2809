// Package ports defines the capabilities the proxy depends on.
//
// Adapters under pkg/adapters implement these interfaces; tests substitute
// fakes so no real network or metrics backend is needed.
package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aescanero/newsproxy/pkg/domain"
)

// HTTPDoer performs a single outbound HTTP request.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewsFetcher retrieves one upstream payload for a query
type NewsFetcher interface {
	Fetch(ctx context.Context, q domain.Query) (json.RawMessage, error)
}

// MetricsCollector records proxy activity
type MetricsCollector interface {
	RecordRequest(method string, status int)
	RecordUpstream(endpoint domain.Endpoint, outcome string, duration time.Duration)
	RecordUpstreamError(kind string)
}
