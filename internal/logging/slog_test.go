package logging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "resources/list").Info("done")

	assert.Contains(t, buf.String(), "operation=resources/list")
}

func TestWithTool(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithTool(logger, "search").Info("done")

	assert.Contains(t, buf.String(), "tool=search")
}

func TestStatusAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("done", Status(StatusSuccess))

	assert.Contains(t, buf.String(), "status=success")
}

func TestErrAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("failed", Err(fmt.Errorf("boom")))

	assert.Contains(t, buf.String(), "error=boom")
}

func TestErrAttrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("ok", Err(nil))

	assert.NotContains(t, buf.String(), "error=")
}

func TestSetupDebugLevel(t *testing.T) {
	ctx := context.Background()

	logger := Setup(true)
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger = Setup(false)
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
}
