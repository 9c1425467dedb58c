package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/teemow/gdrive-mcp/internal/logging"
)

const (
	// ResourceURIPrefix is the URI scheme under which Drive files are exposed
	ResourceURIPrefix = "gdrive:///"

	// resourcePageSize is the fixed page size for resource listing
	resourcePageSize = 10
)

// ResourceURI returns the resource URI for a Drive file ID.
func ResourceURI(fileID string) string {
	return ResourceURIPrefix + fileID
}

// ParseResourceURI extracts the file ID from a resource URI. It returns an
// error when the URI does not use the gdrive scheme or names no file.
func ParseResourceURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, ResourceURIPrefix) {
		return "", fmt.Errorf("invalid resource URI %q: expected prefix %s", uri, ResourceURIPrefix)
	}
	fileID := strings.TrimPrefix(uri, ResourceURIPrefix)
	if fileID == "" {
		return "", fmt.Errorf("invalid resource URI %q: missing file id", uri)
	}
	return fileID, nil
}

// ListResources returns one page of Drive files as MCP resources. The cursor
// is passed through to Drive unmodified and the next cursor comes back the
// same way, so pagination state lives entirely on the Drive side.
func (h *Handler) ListResources(ctx context.Context, request *jsonrpc.TypedRequest[*schema.ListResourcesRequest]) (*schema.ListResourcesResult, *jsonrpc.Error) {
	started := time.Now()
	logger := logging.WithOperation(h.logger, "resources/list")

	var pageToken string
	if cursor := request.Request.Params.Cursor; cursor != nil {
		pageToken = *cursor
	}

	svc, err := h.drive(ctx)
	if err != nil {
		logger.Error("drive client unavailable", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	files, nextToken, err := svc.ListFiles(ctx, resourcePageSize, pageToken)
	h.recordDriveOp(ctx, "files.list", err, started)
	if err != nil {
		logger.Error("failed to list files", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	result := &schema.ListResourcesResult{
		Resources: make([]schema.Resource, 0, len(files)),
	}
	for _, f := range files {
		resource := schema.Resource{
			Name: f.Name,
			Uri:  ResourceURI(f.ID),
		}
		if f.MimeType != "" {
			mimeType := f.MimeType
			resource.MimeType = &mimeType
		}
		result.Resources = append(result.Resources, resource)
	}
	if nextToken != "" {
		result.NextCursor = &nextToken
	}

	logger.Debug("listed resources",
		logging.Status(logging.StatusSuccess),
		"count", len(result.Resources),
		logging.KeyDuration, time.Since(started))
	return result, nil
}

// ReadResource fetches the content of a single Drive file addressed by its
// gdrive URI. Workspace-native files come back as their exported text form,
// everything else as text or base64 depending on MIME type.
func (h *Handler) ReadResource(ctx context.Context, request *jsonrpc.TypedRequest[*schema.ReadResourceRequest]) (*schema.ReadResourceResult, *jsonrpc.Error) {
	started := time.Now()
	uri := request.Request.Params.Uri
	logger := logging.WithOperation(h.logger, "resources/read")

	fileID, err := ParseResourceURI(uri)
	if err != nil {
		logger.Warn("rejected resource URI", logging.Err(err))
		return nil, jsonrpc.NewInvalidParamsError(err.Error(), nil)
	}

	svc, err := h.drive(ctx)
	if err != nil {
		logger.Error("drive client unavailable", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	content, err := svc.ReadContent(ctx, fileID)
	h.recordDriveOp(ctx, "files.get", err, started)
	if err != nil {
		logger.Error("failed to read resource", logging.Err(err))
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}

	mimeType := content.MimeType
	elem := schema.ReadResourceResultContentsElem{
		Uri:      uri,
		MimeType: &mimeType,
	}
	if content.IsText() {
		elem.Text = content.Text
	} else {
		elem.Blob = content.Blob
	}

	logger.Debug("read resource",
		logging.Status(logging.StatusSuccess),
		"mime_type", mimeType,
		logging.KeyDuration, time.Since(started))
	return &schema.ReadResourceResult{
		Contents: []schema.ReadResourceResultContentsElem{elem},
	}, nil
}

func (h *Handler) recordDriveOp(ctx context.Context, operation string, err error, started time.Time) {
	if h.metrics == nil {
		return
	}
	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
	}
	h.metrics.RecordDriveOperation(ctx, operation, status, time.Since(started))
}
