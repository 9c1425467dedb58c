package drive

import "strings"

// Workspace-native MIME types and their export targets. Native documents have
// no fixed byte representation server-side; they must be exported to a
// concrete type, chosen here to be maximally useful to a text-oriented
// consumer.
const (
	DocumentMimeType     = "application/vnd.google-apps.document"
	SpreadsheetMimeType  = "application/vnd.google-apps.spreadsheet"
	PresentationMimeType = "application/vnd.google-apps.presentation"
	DrawingMimeType      = "application/vnd.google-apps.drawing"

	workspaceNativePrefix = "application/vnd.google-apps"

	// DefaultExportMimeType is the export target for native types without a
	// dedicated mapping
	DefaultExportMimeType = "text/plain"
)

// exportTargets maps each Workspace-native type to exactly one export type
var exportTargets = map[string]string{
	DocumentMimeType:     "text/markdown",
	SpreadsheetMimeType:  "text/csv",
	PresentationMimeType: "text/plain",
	DrawingMimeType:      "image/png",
}

// IsWorkspaceNative reports whether a MIME type denotes a Workspace-native
// document that must be exported before reading
func IsWorkspaceNative(mimeType string) bool {
	return strings.HasPrefix(mimeType, workspaceNativePrefix)
}

// ExportMimeType returns the export target for a Workspace-native MIME type.
// Unknown native types fall back to plain text.
func ExportMimeType(nativeMimeType string) string {
	if target, ok := exportTargets[nativeMimeType]; ok {
		return target
	}
	return DefaultExportMimeType
}
