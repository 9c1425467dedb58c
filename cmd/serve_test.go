package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/teemow/gdrive-mcp/internal/google"
)

func TestServeCmdFlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	tests := []struct {
		flag     string
		expected string
	}{
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"debug", "false"},
		{"with-auth-tool", "false"},
		{"metrics-enabled", "false"},
		{"metrics-addr", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.flag)
			}
			if f.DefValue != tt.expected {
				t.Errorf("flag %q default = %q, expected %q", tt.flag, f.DefValue, tt.expected)
			}
		})
	}
}

func TestRunServeUnsupportedTransport(t *testing.T) {
	// Point credential lookups at an empty directory so no real token is read.
	dir := t.TempDir()
	t.Setenv(google.EnvOAuthPath, filepath.Join(dir, "keys.json"))
	t.Setenv(google.EnvCredentialsPath, filepath.Join(dir, "credentials.json"))

	err := runServe("carrier-pigeon", false, ":8080", false, MetricsConfig{})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "unsupported transport type: carrier-pigeon") {
		t.Errorf("unexpected error: %v", err)
	}
}
