// Package proxy implements the fetch step of the news proxy.
//
// The manager resolves a query to its upstream shape, calls the injected
// fetcher once and returns either the JSON payload or a *domain.UpstreamError.
// It logs the attempt and every failure, and records upstream metrics. Nothing
// is retried or cached.
package proxy
