package google

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestCredentialsPathEnvOverride(t *testing.T) {
	t.Setenv(EnvCredentialsPath, "/tmp/custom-credentials.json")
	if got := CredentialsPath(); got != "/tmp/custom-credentials.json" {
		t.Errorf("CredentialsPath() = %v, expected env override", got)
	}
}

func TestKeyFilePathEnvOverride(t *testing.T) {
	t.Setenv(EnvOAuthPath, "/tmp/keys.json")
	if got := KeyFilePath(); got != "/tmp/keys.json" {
		t.Errorf("KeyFilePath() = %v, expected env override", got)
	}
}

func TestLoadTokenMissingFile(t *testing.T) {
	t.Setenv(EnvCredentialsPath, filepath.Join(t.TempDir(), "does-not-exist.json"))

	if HasToken() {
		t.Error("HasToken() should be false when no token file exists")
	}
	if _, err := LoadToken(); err == nil {
		t.Error("LoadToken() should fail when no token file exists")
	}
}

func TestLoadTokenRequiresRefreshToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	t.Setenv(EnvCredentialsPath, path)

	data, _ := json.Marshal(&oauth2.Token{AccessToken: "access-only"})
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}

	if _, err := LoadToken(); err == nil {
		t.Error("LoadToken() should reject a token without a refresh token")
	}
	if HasToken() {
		t.Error("HasToken() should be false for a token without a refresh token")
	}
}

func TestWriteAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	t.Setenv(EnvCredentialsPath, path)

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
	}
	if err := WriteToken(token); err != nil {
		t.Fatalf("WriteToken() failed: %v", err)
	}

	loaded, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() failed: %v", err)
	}
	if loaded.AccessToken != "access" || loaded.RefreshToken != "refresh" {
		t.Errorf("LoadToken() = %+v, expected persisted token pair", loaded)
	}
	if !HasToken() {
		t.Error("HasToken() should be true after WriteToken")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat token file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("token file mode = %v, expected 0600", info.Mode().Perm())
	}
}

func TestLoadTokenInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	t.Setenv(EnvCredentialsPath, path)

	if err := os.WriteFile(path, []byte("not-json"), 0600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}
	if _, err := LoadToken(); err == nil {
		t.Error("LoadToken() should fail on malformed JSON")
	}
}
