package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/gdrive-mcp/internal/drive"
)

// ServerContext holds the shared state of the MCP server: the lifecycle
// context and the lazily created Drive client.
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	driveClient *drive.Client
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context. The Drive client is created
// eagerly when a token is already present; otherwise creation is deferred to
// the first request so the server can start before authorization completes.
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
	}

	if drive.HasToken() {
		client, err := drive.NewClient(shutdownCtx)
		if err != nil {
			// Will be re-attempted on first use
			fmt.Printf("Warning: failed to create Drive client: %v\n", err)
		} else {
			sc.driveClient = client
		}
	}

	return sc, nil
}

// Context returns the server lifecycle context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// DriveClient returns the Drive client, creating and caching it on first use.
// It fails when no OAuth token has been stored yet.
func (sc *ServerContext) DriveClient() (*drive.Client, error) {
	sc.mu.RLock()
	client := sc.driveClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.driveClient != nil {
		return sc.driveClient, nil
	}
	if !drive.HasToken() {
		return nil, fmt.Errorf("not authenticated with Google Drive: run 'gdrive-mcp auth' first")
	}

	client, err := drive.NewClient(sc.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}
	sc.driveClient = client
	return client, nil
}

// SetDriveClient sets the Drive client, replacing any cached instance.
func (sc *ServerContext) SetDriveClient(client *drive.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.driveClient = client
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
