package newsapi

import (
	"errors"
	"fmt"
	"net/url"
)

// redact drops the request URL from a transport error. The URL carries the
// API key and must not reach logs or callers.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("request to NewsAPI failed: %w", urlErr.Err)
	}
	return fmt.Errorf("request to NewsAPI failed: %w", err)
}
