// Package google manages the OAuth credentials used to talk to Google Drive.
//
// Two files are involved:
//   - an OAuth client key file (client ID/secret) consumed by the auth flow,
//     located via GDRIVE_OAUTH_PATH
//   - a token file holding the access/refresh token pair as a single JSON
//     object, located via GDRIVE_CREDENTIALS_PATH
//
// Both default to locations under the user's config directory. The token is
// created by the `gdrive-mcp auth` flow, loaded at server startup, and never
// refreshed by this package on its own schedule; refresh is delegated to the
// oauth2 token source.
package google
