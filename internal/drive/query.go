package drive

import (
	"fmt"
	"strings"
)

// EscapeQuery escapes backslashes and single quotes so that user input cannot
// terminate the quoted clause it is embedded in. Backslashes first, so the
// escapes introduced for quotes are not escaped again.
func EscapeQuery(query string) string {
	escaped := strings.ReplaceAll(query, `\`, `\\`)
	return strings.ReplaceAll(escaped, `'`, `\'`)
}

// BuildSearchQuery builds the Drive query-language filter for a free-text
// search: a name or full-text match, excluding trashed files.
func BuildSearchQuery(query string) string {
	escaped := EscapeQuery(query)
	return fmt.Sprintf("(name contains '%s' or fullText contains '%s') and trashed = false", escaped, escaped)
}
