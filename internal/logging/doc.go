// Package logging provides slog helpers for consistent structured logging.
//
// All log output goes to stderr, keeping stdout free for the JSON-RPC
// stream when the server runs on the stdio transport. The helpers pin down
// attribute key names so operation, tool, status and error fields stay
// queryable across the codebase.
package logging
