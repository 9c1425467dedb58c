package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

func listResourcesRequest(cursor *string) *jsonrpc.TypedRequest[*schema.ListResourcesRequest] {
	req := &schema.ListResourcesRequest{Method: schema.MethodResourcesList}
	req.Params = &schema.ListResourcesRequestParams{Cursor: cursor}
	return &jsonrpc.TypedRequest[*schema.ListResourcesRequest]{Method: schema.MethodResourcesList, Request: req}
}

func readResourceRequest(uri string) *jsonrpc.TypedRequest[*schema.ReadResourceRequest] {
	req := &schema.ReadResourceRequest{Method: schema.MethodResourcesRead}
	req.Params.Uri = uri
	return &jsonrpc.TypedRequest[*schema.ReadResourceRequest]{Method: schema.MethodResourcesRead, Request: req}
}

func TestParseResourceURI(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		expected  string
		expectErr bool
	}{
		{
			name:     "valid URI",
			uri:      "gdrive:///abc123",
			expected: "abc123",
		},
		{
			name:      "wrong scheme",
			uri:       "file:///abc123",
			expectErr: true,
		},
		{
			name:      "missing file id",
			uri:       "gdrive:///",
			expectErr: true,
		},
		{
			name:      "empty",
			uri:       "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID, err := ParseResourceURI(tt.uri)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fileID)
		})
	}
}

func TestListResources(t *testing.T) {
	fake := &fakeDrive{
		listResults: []*drive.FileHandle{
			{ID: "id1", Name: "report.txt", MimeType: "text/plain"},
			{ID: "id2", Name: "Planning Doc", MimeType: drive.DocumentMimeType},
		},
		listNextToken: "next-page-token",
	}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ListResources(context.Background(), listResourcesRequest(nil))
	require.Nil(t, rpcErr)
	require.Len(t, result.Resources, 2)

	assert.Equal(t, "gdrive:///id1", result.Resources[0].Uri)
	assert.Equal(t, "report.txt", result.Resources[0].Name)
	require.NotNil(t, result.Resources[0].MimeType)
	assert.Equal(t, "text/plain", *result.Resources[0].MimeType)

	assert.Equal(t, "gdrive:///id2", result.Resources[1].Uri)

	require.NotNil(t, result.NextCursor)
	assert.Equal(t, "next-page-token", *result.NextCursor)
	assert.Equal(t, int64(10), fake.listPageSize)
	assert.Empty(t, fake.listPageToken)
}

func TestListResourcesForwardsCursor(t *testing.T) {
	fake := &fakeDrive{}
	h := newTestHandler(t, fake)

	cursor := "opaque-token"
	result, rpcErr := h.ListResources(context.Background(), listResourcesRequest(&cursor))
	require.Nil(t, rpcErr)

	assert.Equal(t, "opaque-token", fake.listPageToken)
	assert.Empty(t, result.Resources)
	assert.Nil(t, result.NextCursor)
}

func TestListResourcesDriveError(t *testing.T) {
	fake := &fakeDrive{listErr: fmt.Errorf("backend unavailable")}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ListResources(context.Background(), listResourcesRequest(nil))
	assert.Nil(t, result)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InternalError, rpcErr.Code)
}

func TestReadResourceText(t *testing.T) {
	fake := &fakeDrive{
		content: &drive.ContentResult{MimeType: "text/markdown", Text: "# Title"},
	}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ReadResource(context.Background(), readResourceRequest("gdrive:///doc42"))
	require.Nil(t, rpcErr)
	require.Len(t, result.Contents, 1)

	elem := result.Contents[0]
	assert.Equal(t, "gdrive:///doc42", elem.Uri)
	require.NotNil(t, elem.MimeType)
	assert.Equal(t, "text/markdown", *elem.MimeType)
	assert.Equal(t, "# Title", elem.Text)
	assert.Empty(t, elem.Blob)
	assert.Equal(t, "doc42", fake.readFileID)
}

func TestReadResourceBinary(t *testing.T) {
	fake := &fakeDrive{
		content: &drive.ContentResult{MimeType: "image/png", Blob: "aGVsbG8="},
	}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ReadResource(context.Background(), readResourceRequest("gdrive:///img1"))
	require.Nil(t, rpcErr)
	require.Len(t, result.Contents, 1)

	elem := result.Contents[0]
	assert.Equal(t, "aGVsbG8=", elem.Blob)
	assert.Empty(t, elem.Text)
}

func TestReadResourceInvalidURI(t *testing.T) {
	fake := &fakeDrive{}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ReadResource(context.Background(), readResourceRequest("http://example.com/file"))
	assert.Nil(t, result)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code)
	assert.False(t, fake.readInvoked)
}

func TestReadResourceDriveError(t *testing.T) {
	fake := &fakeDrive{contentErr: fmt.Errorf("file not found")}
	h := newTestHandler(t, fake)

	result, rpcErr := h.ReadResource(context.Background(), readResourceRequest("gdrive:///missing"))
	assert.Nil(t, result)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InternalError, rpcErr.Code)
}
