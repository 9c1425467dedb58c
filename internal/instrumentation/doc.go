// Package instrumentation provides OpenTelemetry metrics for the server,
// exported through the Prometheus registry and scraped from the dedicated
// metrics port.
//
// Recorded metrics cover MCP tool invocations, Drive API operations and
// OAuth authentication attempts. When instrumentation is disabled the
// provider returns no-op recorders, so call sites never need to branch on
// whether metrics are on.
package instrumentation
