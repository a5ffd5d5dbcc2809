package proxy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/aescanero/newsproxy/pkg/ports"
	"go.uber.org/zap"
)

// Upstream call outcomes recorded in metrics
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Manager coordinates a single upstream fetch per request
type Manager struct {
	fetcher ports.NewsFetcher
	metrics ports.MetricsCollector
	logger  *zap.Logger
}

// NewManager creates a new proxy manager
func NewManager(
	fetcher ports.NewsFetcher,
	metrics ports.MetricsCollector,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		fetcher: fetcher,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the upstream payload for q.
// On failure the returned error is a *domain.UpstreamError; its message is
// safe to show to callers.
func (m *Manager) Fetch(ctx context.Context, q domain.Query) (json.RawMessage, error) {
	q = q.WithDefaults()
	endpoint := q.Endpoint()
	logger := m.logger.With(zap.String("request_id", domain.RequestIDFromContext(ctx)))

	logger.Info("fetching from NewsAPI",
		zap.String("endpoint", string(endpoint)),
		zap.String("country", q.Country),
		zap.String("category", q.Category),
		zap.String("page_size", q.PageSize))

	start := time.Now()
	body, err := m.fetcher.Fetch(ctx, q)
	duration := time.Since(start)

	if err != nil {
		if domain.KindOf(err) == domain.ErrorKindUnknown {
			err = &domain.UpstreamError{Kind: domain.ErrorKindUnknown, Err: err}
		}
		kind := domain.KindOf(err)

		logger.Error("proxy error",
			zap.String("endpoint", string(endpoint)),
			zap.String("kind", string(kind)),
			zap.Duration("duration", duration),
			zap.Error(err))
		m.metrics.RecordUpstream(endpoint, OutcomeError, duration)
		m.metrics.RecordUpstreamError(string(kind))
		return nil, err
	}

	logger.Debug("NewsAPI fetch complete",
		zap.String("endpoint", string(endpoint)),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", duration))
	m.metrics.RecordUpstream(endpoint, OutcomeSuccess, duration)

	return body, nil
}
