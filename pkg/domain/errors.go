package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies where an upstream fetch failed
type ErrorKind string

const (
	// ErrorKindRequest means the outbound request could not be built
	ErrorKindRequest ErrorKind = "request"
	// ErrorKindTransport means the request was not answered (network, cancellation)
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindStatus means the upstream answered with a non-2xx status
	ErrorKindStatus ErrorKind = "status"
	// ErrorKindDecode means the response body could not be read or was not JSON
	ErrorKindDecode ErrorKind = "decode"
	// ErrorKindUnknown is reported for errors that carry no kind
	ErrorKindUnknown ErrorKind = "unknown"
)

// UpstreamError is the failure half of a fetch result
type UpstreamError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Kind == ErrorKindStatus {
		return fmt.Sprintf("NewsAPI error: %d", e.StatusCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("NewsAPI %s failure", e.Kind)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a fetch error
func KindOf(err error) ErrorKind {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Kind
	}
	return ErrorKindUnknown
}
