package drive

import "time"

// FileHandle is a lightweight descriptor of a remote Drive file returned by
// listing and search calls. Handles are immutable and never persisted locally.
type FileHandle struct {
	// ID is the opaque, remote-assigned identifier of the file
	ID string `json:"id"`

	// Name is the display name of the file
	Name string `json:"name"`

	// MimeType is the MIME type declared by Drive
	MimeType string `json:"mimeType"`

	// ModifiedTime is when the file was last modified (zero when not requested)
	ModifiedTime time.Time `json:"modifiedTime,omitempty"`

	// Size is the size in bytes (zero for Workspace-native documents)
	Size int64 `json:"size,omitempty"`
}

// ContentResult is the normalized output of a read: a MIME type plus a
// payload that is either UTF-8 text or base64-encoded bytes. Which of the
// two is populated is fully determined by the MIME type.
type ContentResult struct {
	// MimeType tags the payload. For Workspace-native documents this is the
	// export target type, never the native application/vnd.google-apps type.
	MimeType string `json:"mimeType"`

	// Text holds the payload for text/* and application/json content
	Text string `json:"text,omitempty"`

	// Blob holds the base64-encoded payload for all other content
	Blob string `json:"blob,omitempty"`
}

// IsText reports whether the payload is carried in Text rather than Blob
func (c *ContentResult) IsText() bool {
	return isTextMimeType(c.MimeType)
}

// Body returns the payload as a string: the UTF-8 text for text content,
// the base64 encoding otherwise
func (c *ContentResult) Body() string {
	if c.IsText() {
		return c.Text
	}
	return c.Blob
}
