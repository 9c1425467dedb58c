package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	provider := sdkmetric.NewMeterProvider()
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m
}

func TestNewMetrics(t *testing.T) {
	m := newTestMetrics(t)
	assert.NotNil(t, m.toolInvocationsTotal)
	assert.NotNil(t, m.toolDuration)
	assert.NotNil(t, m.driveOperationsTotal)
	assert.NotNil(t, m.driveOperationDuration)
	assert.NotNil(t, m.oauthAuthTotal)
}

func TestMetricsRecording(t *testing.T) {
	m := newTestMetrics(t)
	ctx := context.Background()

	// Must not panic with fully initialized instruments
	m.RecordToolInvocation(ctx, "search", StatusSuccess, 20*time.Millisecond)
	m.RecordToolInvocation(ctx, "read_file", StatusError, time.Second)
	m.RecordDriveOperation(ctx, "files.list", StatusSuccess, 100*time.Millisecond)
	m.RecordOAuthAuth(ctx, StatusSuccess)
}

func TestZeroValueMetricsAreNoOp(t *testing.T) {
	var m Metrics
	ctx := context.Background()

	// Must not panic when instrumentation was never initialized
	m.RecordToolInvocation(ctx, "search", StatusSuccess, time.Millisecond)
	m.RecordDriveOperation(ctx, "files.get", StatusError, time.Millisecond)
	m.RecordOAuthAuth(ctx, StatusError)
}
