// Package mcp implements the Model Context Protocol handler that exposes
// Google Drive to MCP clients.
//
// Drive files surface in two ways:
//   - as resources under the gdrive:/// URI scheme, listed page by page with
//     the Drive cursor passed through unchanged
//   - as tools: search over names and content, and read_file by ID
//
// The handler serves exactly resources/list, resources/read, tools/list and
// tools/call; every other MCP method reports method-not-found. Tool argument
// problems are protocol-level invalid-params errors, while read_file
// execution failures are returned in-band as tool errors so the calling
// model can see and react to them.
package mcp
