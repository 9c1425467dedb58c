package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/teemow/gdrive-mcp/internal/google"
)

const (
	// SearchPageSize bounds the number of results a search returns
	SearchPageSize = 10

	searchFields = "files(id, name, mimeType, modifiedTime, size)"
	listFields   = "nextPageToken, files(id, name, mimeType)"
)

// Client wraps the Google Drive API service. It is configured once at
// startup and safe for concurrent use; no request mutates it.
type Client struct {
	service *drive.Service
}

// HasToken checks if a valid OAuth token exists
func HasToken() bool {
	return google.HasToken()
}

// NewClient creates a new Google Drive client with OAuth2 authentication.
// Returns an error if no valid token exists - use HasToken() to check first.
func NewClient(ctx context.Context) (*Client, error) {
	httpClient, err := google.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found. Please authorize access first: %w", err)
	}
	return NewClientWithHTTPClient(ctx, httpClient)
}

// NewClientWithHTTPClient creates a Drive client on top of an explicit HTTP
// client. The client handle is an injected dependency so tests can substitute
// a fake transport without touching global state.
func NewClientWithHTTPClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{service: service}, nil
}

// Search queries Drive for files whose name or full text matches the given
// free-text query. Results are returned in API order, at most SearchPageSize
// of them. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]*FileHandle, error) {
	fileList, err := c.service.Files.List().
		Context(ctx).
		Q(BuildSearchQuery(query)).
		PageSize(SearchPageSize).
		Fields(searchFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search files: %w", err)
	}

	files := make([]*FileHandle, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileHandle(f)
	}
	return files, nil
}

// ListFiles lists a single page of files. The page token is forwarded opaquely
// to Drive; the returned token is empty when the listing is exhausted.
func (c *Client) ListFiles(ctx context.Context, pageSize int64, pageToken string) ([]*FileHandle, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		PageSize(pageSize).
		Fields(listFields)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileHandle, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileHandle(f)
	}
	return files, fileList.NextPageToken, nil
}

// ReadContent fetches a file's content, exporting Workspace-native documents
// to their mapped target type and normalizing everything else by MIME type.
// Each read is a single atomic attempt; remote errors propagate unmodified
// beyond wrapping.
func (c *Client) ReadContent(ctx context.Context, fileID string) (*ContentResult, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	meta, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("mimeType").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	if IsWorkspaceNative(meta.MimeType) {
		return c.exportContent(ctx, fileID, ExportMimeType(meta.MimeType))
	}
	return c.downloadContent(ctx, fileID, meta.MimeType)
}

// exportContent requests an export of a Workspace-native document. Export
// targets are text-oriented, so the payload is returned as UTF-8 text tagged
// with the export MIME type.
func (c *Client) exportContent(ctx context.Context, fileID, targetMimeType string) (*ContentResult, error) {
	resp, err := c.service.Files.Export(fileID, targetMimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file %s as %s: %w", fileID, targetMimeType, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export of file %s: %w", fileID, err)
	}
	return NormalizeContent(targetMimeType, data), nil
}

// downloadContent downloads raw bytes and normalizes them by the file's
// declared MIME type.
func (c *Client) downloadContent(ctx context.Context, fileID, mimeType string) (*ContentResult, error) {
	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read content of file %s: %w", fileID, err)
	}
	return NormalizeContent(mimeType, data), nil
}

// convertToFileHandle converts a Drive API File to our FileHandle type
func convertToFileHandle(f *drive.File) *FileHandle {
	handle := &FileHandle{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}

	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			handle.ModifiedTime = t
		}
	}

	return handle
}
