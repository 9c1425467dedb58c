package instrumentation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())

	// No-op recorder must be safe to use
	provider.Metrics().RecordOAuthAuth(context.Background(), StatusSuccess)

	// Shutdown on a disabled provider is a no-op
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvMetricsEnabled, "")
	cfg := DefaultConfig("gdrive-mcp", "1.2.3")
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "gdrive-mcp", cfg.ServiceName)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)

	t.Setenv(EnvMetricsEnabled, "true")
	assert.True(t, DefaultConfig("gdrive-mcp", "dev").Enabled)
}
