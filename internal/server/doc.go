// Package server holds the runtime state shared across MCP requests and the
// sidecar HTTP endpoints that are not part of the protocol itself.
//
// ServerContext owns the lifecycle context and the Drive client. The client
// is created lazily so the server can come up before OAuth authorization has
// happened; requests made in that window fail with a hint to run the auth
// command.
//
// MetricsServer serves Prometheus metrics and health probes on a dedicated
// port, kept separate from protocol traffic.
package server
