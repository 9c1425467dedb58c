// Package drive provides read-only access to files in Google Drive.
//
// The client supports three operations:
//   - Search: free-text search over file names and content
//   - ListFiles: single-page listing with opaque cursor pass-through
//   - ReadContent: fetch a file's content in a normalized form
//
// Workspace-native documents (Docs, Sheets, Slides, Drawings) have no byte
// representation of their own and are exported to a text-oriented target
// type. Regular files are downloaded as-is and returned as UTF-8 text or
// base64, decided solely by their MIME type.
//
// OAuth authentication uses the token managed by the google package. There
// are no retries and no caching; every operation is a single request-scoped
// call against the Drive API.
package drive
