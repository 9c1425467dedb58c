// Package cmd implements the command-line interface for gdrive-mcp.
//
// Available commands:
//   - serve: start the MCP server (stdio or streamable HTTP transport)
//   - auth: authorize access to Google Drive and store the token file
//   - version: print version information
package cmd
