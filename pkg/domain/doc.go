// Package domain holds the transient value types that flow through the proxy.
//
// Nothing in this package is persisted. A Query lives for one inbound request
// and an Endpoint only names the upstream shape it resolved to.
package domain
