// Package http provides the HTTP API of the news proxy.
//
// The HTTP server exposes endpoints for:
//   - News proxying (/news, and / for hosted function compatibility)
//   - Health checks
//   - Prometheus metrics
//
// Every response carries permissive CORS headers. OPTIONS requests are
// answered with 204 before routing; any method other than GET on the news
// endpoint is rejected with 405.
package http
