package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protoclient "github.com/viant/mcp-protocol/client"
	protologger "github.com/viant/mcp-protocol/logger"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/teemow/gdrive-mcp/internal/drive"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
)

// DriveService is the subset of the Drive client the handler depends on.
// Tests substitute a fake; production wires *drive.Client.
type DriveService interface {
	Search(ctx context.Context, query string) ([]*drive.FileHandle, error)
	ListFiles(ctx context.Context, pageSize int64, pageToken string) ([]*drive.FileHandle, string, error)
	ReadContent(ctx context.Context, fileID string) (*drive.ContentResult, error)
}

// DriveProvider yields the Drive service for a request. Resolution is
// per-call so that a server started before authorization completes can pick
// up credentials without a restart.
type DriveProvider func(ctx context.Context) (DriveService, error)

// Config carries the handler's dependencies.
type Config struct {
	Drive   DriveProvider
	Logger  *slog.Logger
	Metrics *instrumentation.Metrics

	// WithAuthTool exposes the authenticate tool in the tool list
	WithAuthTool bool
}

// Handler routes MCP requests to the Drive gateway. One instance is created
// per client connection; all state is read-only after construction.
type Handler struct {
	drive        DriveProvider
	logger       *slog.Logger
	metrics      *instrumentation.Metrics
	withAuthTool bool
}

// NewHandlerFactory returns the connection-handler constructor the MCP server
// invokes for each new client.
func NewHandlerFactory(cfg Config) protoserver.NewHandler {
	return func(ctx context.Context, notifier transport.Notifier, logger protologger.Logger, clientOps protoclient.Operations) (protoserver.Handler, error) {
		if cfg.Drive == nil {
			return nil, fmt.Errorf("drive provider is required")
		}
		log := cfg.Logger
		if log == nil {
			log = slog.Default()
		}
		return &Handler{
			drive:        cfg.Drive,
			logger:       log,
			metrics:      cfg.Metrics,
			withAuthTool: cfg.WithAuthTool,
		}, nil
	}
}

// Initialize is invoked during the protocol handshake. Capabilities and
// implementation info are filled in by the server; nothing to adjust here.
func (h *Handler) Initialize(ctx context.Context, init *schema.InitializeRequestParams, result *schema.InitializeResult) {
}

// ListResourceTemplates is not supported; no templated resources exist.
func (h *Handler) ListResourceTemplates(ctx context.Context, request *jsonrpc.TypedRequest[*schema.ListResourceTemplatesRequest]) (*schema.ListResourceTemplatesResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodResourcesTemplatesList), nil)
}

// Subscribe is not supported; Drive resources are not watched.
func (h *Handler) Subscribe(ctx context.Context, request *jsonrpc.TypedRequest[*schema.SubscribeRequest]) (*schema.SubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodSubscribe), nil)
}

// Unsubscribe is not supported.
func (h *Handler) Unsubscribe(ctx context.Context, request *jsonrpc.TypedRequest[*schema.UnsubscribeRequest]) (*schema.UnsubscribeResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodUnsubscribe), nil)
}

// ListPrompts is not supported; this server exposes no prompts.
func (h *Handler) ListPrompts(ctx context.Context, request *jsonrpc.TypedRequest[*schema.ListPromptsRequest]) (*schema.ListPromptsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodPromptsList), nil)
}

// GetPrompt is not supported.
func (h *Handler) GetPrompt(ctx context.Context, request *jsonrpc.TypedRequest[*schema.GetPromptRequest]) (*schema.GetPromptResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodPromptsGet), nil)
}

// Complete is not supported.
func (h *Handler) Complete(ctx context.Context, request *jsonrpc.TypedRequest[*schema.CompleteRequest]) (*schema.CompleteResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodComplete), nil)
}

// SetLevel is not supported; log level is fixed at startup.
func (h *Handler) SetLevel(ctx context.Context, request *jsonrpc.TypedRequest[*schema.SetLevelRequest]) (*schema.SetLevelResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", schema.MethodLoggingSetLevel), nil)
}

// OnNotification handles incoming JSON-RPC notifications (no-op).
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
}

// Implements reports which MCP methods this handler serves.
func (h *Handler) Implements(method string) bool {
	switch method {
	case schema.MethodInitialize,
		schema.MethodPing,
		schema.MethodResourcesList,
		schema.MethodResourcesRead,
		schema.MethodToolsList,
		schema.MethodToolsCall:
		return true
	}
	return false
}
