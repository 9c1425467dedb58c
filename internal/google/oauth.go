package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// EnvOAuthPath overrides the location of the OAuth client key file
	EnvOAuthPath = "GDRIVE_OAUTH_PATH"

	// EnvCredentialsPath overrides the location of the stored token file
	EnvCredentialsPath = "GDRIVE_CREDENTIALS_PATH"

	// DriveReadonlyScope is the only scope this server ever requests
	DriveReadonlyScope = "https://www.googleapis.com/auth/drive.readonly"

	oobRedirectURL = "urn:ietf:wg:oauth:2.0:oob"
)

// configDir returns the directory holding the key and token files
func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gdrive-mcp")
	}
	return filepath.Join(os.Getenv("HOME"), ".gdrive-mcp")
}

// KeyFilePath returns the path of the OAuth client key file (client ID/secret)
func KeyFilePath() string {
	if p := os.Getenv(EnvOAuthPath); p != "" {
		return p
	}
	return filepath.Join(configDir(), "gcp-oauth.keys.json")
}

// CredentialsPath returns the path of the stored token file
func CredentialsPath() string {
	if p := os.Getenv(EnvCredentialsPath); p != "" {
		return p
	}
	return filepath.Join(configDir(), "credentials.json")
}

// LoadOAuthConfig reads the OAuth client key file and builds the OAuth2
// configuration used for the out-of-band authorization flow
func LoadOAuthConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(KeyFilePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth key file %s: %w", KeyFilePath(), err)
	}

	conf, err := google.ConfigFromJSON(data, DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth key file: %w", err)
	}
	conf.RedirectURL = oobRedirectURL
	return conf, nil
}

// HasToken checks if a usable OAuth token exists on disk
func HasToken() bool {
	_, err := LoadToken()
	return err == nil
}

// LoadToken reads the token file. The file content is treated as opaque
// beyond requiring a refresh token, which the OAuth2 client library needs
// to keep the access token fresh.
func LoadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(CredentialsPath())
	if err != nil {
		return nil, fmt.Errorf("no Google OAuth token found: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", CredentialsPath(), err)
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s has no refresh token", CredentialsPath())
	}
	return &token, nil
}

// GetAuthURL returns the OAuth URL for user authorization
func GetAuthURL() (string, error) {
	conf, err := LoadOAuthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline), nil
}

// SaveToken exchanges an authorization code for tokens and saves them
func SaveToken(ctx context.Context, authCode string) error {
	conf, err := LoadOAuthConfig()
	if err != nil {
		return err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	return WriteToken(token)
}

// WriteToken persists a token to the credentials file
func WriteToken(token *oauth2.Token) error {
	path := CredentialsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// GetTokenSource returns an OAuth2 token source for the stored token.
// Refreshing an expired access token is left entirely to the token source.
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf, err := LoadOAuthConfig()
	if err != nil {
		return nil, err
	}
	token, err := LoadToken()
	if err != nil {
		return nil, err
	}
	return conf.TokenSource(ctx, token), nil
}

// GetHTTPClient returns an HTTP client configured with OAuth2 authentication
func GetHTTPClient(ctx context.Context) (*http.Client, error) {
	ts, err := GetTokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}
