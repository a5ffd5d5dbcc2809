package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aescanero/newsproxy/pkg/domain"
	"github.com/aescanero/newsproxy/pkg/ports"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public NewsAPI origin
const DefaultBaseURL = "https://newsapi.org"

// Fixed parameters of the everything search
const (
	searchLanguage = "en"
	searchSortBy   = "publishedAt"
)

// Config holds NewsAPI client configuration
type Config struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient ports.HTTPDoer
	Logger     *zap.Logger
}

// Client fetches news payloads from NewsAPI
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	doer      ports.HTTPDoer
	logger    *zap.Logger
}

// NewClient creates a new NewsAPI client
func NewClient(cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("NewsAPI key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid NewsAPI base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid NewsAPI base URL: %q", baseURL)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		doer:      doer,
		logger:    logger,
	}, nil
}

// URL builds the upstream URL for q. Defaults are applied to q first.
func (c *Client) URL(q domain.Query) string {
	q = q.WithDefaults()

	var b strings.Builder
	b.WriteString(c.baseURL)

	switch q.Endpoint() {
	case domain.EndpointEverything:
		b.WriteString("/v2/everything?q=")
		b.WriteString(url.QueryEscape(q.Query))
		b.WriteString("&language=" + searchLanguage)
		b.WriteString("&sortBy=" + searchSortBy)
	case domain.EndpointTopHeadlinesCategory:
		b.WriteString("/v2/top-headlines?country=")
		b.WriteString(url.QueryEscape(q.Country))
		b.WriteString("&category=")
		b.WriteString(url.QueryEscape(q.Category))
	default:
		b.WriteString("/v2/top-headlines?country=")
		b.WriteString(url.QueryEscape(q.Country))
	}

	b.WriteString("&pageSize=")
	b.WriteString(url.QueryEscape(q.PageSize))
	b.WriteString("&apiKey=")
	b.WriteString(c.apiKey)

	return b.String()
}

// Fetch performs one GET against NewsAPI and returns the JSON body.
// Non-2xx answers are reported as domain.ErrorKindStatus and their body is discarded.
func (c *Client) Fetch(ctx context.Context, q domain.Query) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), nil)
	if err != nil {
		return nil, &domain.UpstreamError{Kind: domain.ErrorKindRequest, Err: redact(err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Kind: domain.ErrorKindTransport, Err: redact(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("NewsAPI returned non-success status",
			zap.String("endpoint", string(q.Endpoint())),
			zap.Int("status", resp.StatusCode))
		return nil, &domain.UpstreamError{Kind: domain.ErrorKindStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Kind: domain.ErrorKindDecode, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read NewsAPI response: %w", err)}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return nil, &domain.UpstreamError{Kind: domain.ErrorKindDecode, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse NewsAPI response: %w", err)}
	}

	return json.RawMessage(compact.Bytes()), nil
}
