package drive

import (
	"encoding/base64"
	"strings"
)

// OctetStreamMimeType is assumed for downloads with no declared MIME type
const OctetStreamMimeType = "application/octet-stream"

// isTextMimeType reports whether content of the given type is returned as
// UTF-8 text. Everything else is treated as binary and base64-encoded.
func isTextMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/") || mimeType == "application/json"
}

// NormalizeContent converts raw downloaded bytes into a ContentResult
// according to the declared MIME type. An empty MIME type defaults to
// application/octet-stream.
func NormalizeContent(mimeType string, data []byte) *ContentResult {
	if mimeType == "" {
		mimeType = OctetStreamMimeType
	}

	result := &ContentResult{MimeType: mimeType}
	if isTextMimeType(mimeType) {
		result.Text = string(data)
	} else {
		result.Blob = base64.StdEncoding.EncodeToString(data)
	}
	return result
}
