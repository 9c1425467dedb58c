package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/gdrive-mcp/internal/instrumentation"
)

func TestNewMetricsServerRequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instrumentation provider is required")
}

func TestNewMetricsServerRequiresEnabledProvider(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{Enabled: false})
	require.NoError(t, err)

	_, err = NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		InstrumentationProvider: provider,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestMetricsServerDefaultAddr(t *testing.T) {
	// A zero-value provider marked enabled is enough for construction
	server := &MetricsServer{addr: DefaultMetricsAddr}
	assert.Equal(t, ":9090", server.Addr())
}

func TestMetricsServerShutdownBeforeStart(t *testing.T) {
	server := &MetricsServer{addr: DefaultMetricsAddr}
	assert.NoError(t, server.Shutdown(context.Background()))
}
