package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/teemow/gdrive-mcp/internal/drive"
	"github.com/teemow/gdrive-mcp/internal/google"
	"github.com/teemow/gdrive-mcp/internal/logging"
)

// Tool names exposed by the server.
const (
	ToolSearch       = "search"
	ToolReadFile     = "read_file"
	ToolAuthenticate = "authenticate"
)

// SearchInput is the argument shape of the search tool.
type SearchInput struct {
	Query string `json:"query" description:"Search query"`
}

// ReadFileInput is the argument shape of the read_file tool.
type ReadFileInput struct {
	FileID string `json:"file_id" description:"ID of the file to read"`
}

// ListTools returns the static tool catalog. The set never changes at
// runtime; the authenticate tool is included only when enabled at startup.
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.TypedRequest[*schema.ListToolsRequest]) (*schema.ListToolsResult, *jsonrpc.Error) {
	var searchSchema schema.ToolInputSchema
	if err := searchSchema.Load(&SearchInput{}); err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to create schema: %v", err), nil)
	}
	var readFileSchema schema.ToolInputSchema
	if err := readFileSchema.Load(&ReadFileInput{}); err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to create schema: %v", err), nil)
	}

	tools := []schema.Tool{
		{
			Name:        ToolSearch,
			Description: strPtr("Search for files in Google Drive"),
			InputSchema: searchSchema,
		},
		{
			Name:        ToolReadFile,
			Description: strPtr("Read contents of a file from Google Drive"),
			InputSchema: readFileSchema,
		},
	}

	if h.withAuthTool {
		tools = append(tools, schema.Tool{
			Name:        ToolAuthenticate,
			Description: strPtr("Get the Google OAuth consent URL to authorize Drive access"),
			InputSchema: schema.ToolInputSchema{Type: "object"},
		})
	}

	return &schema.ListToolsResult{Tools: tools}, nil
}

// CallTool dispatches a tool invocation by name. Unknown tools are a
// protocol-level method-not-found; tool execution failures for read_file are
// reported in-band so the client model can react to them.
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.TypedRequest[*schema.CallToolRequest]) (*schema.CallToolResult, *jsonrpc.Error) {
	started := time.Now()
	name := request.Request.Params.Name
	logger := logging.WithTool(h.logger, name)

	var result *schema.CallToolResult
	var rpcErr *jsonrpc.Error

	switch name {
	case ToolSearch:
		result, rpcErr = h.callSearch(ctx, logger, request)
	case ToolReadFile:
		result, rpcErr = h.callReadFile(ctx, logger, request)
	case ToolAuthenticate:
		if !h.withAuthTool {
			return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("tool %v not found", name), nil)
		}
		result, rpcErr = h.callAuthenticate(ctx, logger)
	default:
		return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("tool %v not found", name), nil)
	}

	h.recordToolCall(ctx, name, result, rpcErr, started)
	return result, rpcErr
}

func (h *Handler) callSearch(ctx context.Context, logger *slog.Logger, request *jsonrpc.TypedRequest[*schema.CallToolRequest]) (*schema.CallToolResult, *jsonrpc.Error) {
	var input SearchInput
	if rpcErr := decodeArguments(request, &input); rpcErr != nil {
		return nil, rpcErr
	}
	if input.Query == "" {
		return nil, jsonrpc.NewInvalidParamsError("query is required", nil)
	}

	svc, err := h.drive(ctx)
	if err != nil {
		logger.Error("drive client unavailable", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	files, err := svc.Search(ctx, input.Query)
	if err != nil {
		logger.Error("search failed", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	logger.Debug("search completed", logging.Status(logging.StatusSuccess), "count", len(files))
	return textResult(formatSearchResults(files)), nil
}

func (h *Handler) callReadFile(ctx context.Context, logger *slog.Logger, request *jsonrpc.TypedRequest[*schema.CallToolRequest]) (*schema.CallToolResult, *jsonrpc.Error) {
	var input ReadFileInput
	if rpcErr := decodeArguments(request, &input); rpcErr != nil {
		return nil, rpcErr
	}
	if input.FileID == "" {
		return nil, jsonrpc.NewInvalidParamsError("file_id is required", nil)
	}

	svc, err := h.drive(ctx)
	if err != nil {
		logger.Error("drive client unavailable", logging.Err(err))
		return toolError(fmt.Sprintf("Error reading file: %v", err)), nil
	}

	content, err := svc.ReadContent(ctx, input.FileID)
	if err != nil {
		logger.Error("read failed", logging.Err(err))
		return toolError(fmt.Sprintf("Error reading file: %v", err)), nil
	}

	logger.Debug("read completed", logging.Status(logging.StatusSuccess), "mime_type", content.MimeType)
	return textResult(content.Body()), nil
}

func (h *Handler) callAuthenticate(ctx context.Context, logger *slog.Logger) (*schema.CallToolResult, *jsonrpc.Error) {
	authURL, err := google.GetAuthURL()
	if err != nil {
		logger.Error("failed to build consent URL", logging.Err(err))
		return toolError(fmt.Sprintf("Error starting authentication: %v", err)), nil
	}

	text := fmt.Sprintf("Open the following URL in a browser to authorize Google Drive access:\n\n%s\n\n"+
		"Then run 'gdrive-mcp auth' in a terminal and paste the authorization code to complete the flow.", authURL)
	return textResult(text), nil
}

// decodeArguments unmarshals the tool arguments into the given input struct.
func decodeArguments(request *jsonrpc.TypedRequest[*schema.CallToolRequest], input any) *jsonrpc.Error {
	data, err := json.Marshal(request.Request.Params.Arguments)
	if err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse arguments: %v", err), nil)
	}
	if err := json.Unmarshal(data, input); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid arguments: %v", err), nil)
	}
	return nil
}

// formatSearchResults renders search matches as a text listing, one file per
// line with its MIME type and ID.
func formatSearchResults(files []*drive.FileHandle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d files:\n", len(files))
	for _, f := range files {
		fmt.Fprintf(&sb, "%s (%s) - ID: %s\n", f.Name, f.MimeType, f.ID)
	}
	return sb.String()
}

func textResult(text string) *schema.CallToolResult {
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			{Type: "text", Text: text},
		},
	}
}

func toolError(text string) *schema.CallToolResult {
	isError := true
	result := textResult(text)
	result.IsError = &isError
	return result
}

func (h *Handler) recordToolCall(ctx context.Context, tool string, result *schema.CallToolResult, rpcErr *jsonrpc.Error, started time.Time) {
	if h.metrics == nil {
		return
	}
	status := logging.StatusSuccess
	if rpcErr != nil || (result != nil && result.IsError != nil && *result.IsError) {
		status = logging.StatusError
	}
	h.metrics.RecordToolInvocation(ctx, tool, status, time.Since(started))
}

func strPtr(s string) *string {
	return &s
}
