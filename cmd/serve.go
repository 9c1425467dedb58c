package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/mcp-protocol/schema"
	mcpserver "github.com/viant/mcp/server"

	"github.com/teemow/gdrive-mcp/internal/drive"
	"github.com/teemow/gdrive-mcp/internal/instrumentation"
	"github.com/teemow/gdrive-mcp/internal/logging"
	"github.com/teemow/gdrive-mcp/internal/mcp"
	"github.com/teemow/gdrive-mcp/internal/server"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		transport      string
		httpAddr       string
		withAuthTool   bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing Google Drive
search and file reading to AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Authorization:
  The server starts even without stored Google credentials, but Drive
  operations fail until 'gdrive-mcp auth' has been run. Use
  --with-auth-tool to additionally expose an authenticate tool that
  hands the OAuth consent URL to the connected client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, debugMode, httpAddr, withAuthTool, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&withAuthTool, "with-auth-tool", false, "Expose an authenticate tool that returns the OAuth consent URL")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", false, "Start the Prometheus metrics server (streamable-http transport only). Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, withAuthTool bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.Setup(debugMode)

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled && os.Getenv(instrumentation.EnvMetricsEnabled) == "true" {
		metricsConfig.Enabled = true
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv(instrumentation.EnvMetricsAddr); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	instrConfig := instrumentation.DefaultConfig("gdrive-mcp", version)
	instrConfig.Enabled = instrConfig.Enabled || metricsConfig.Enabled

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	serverContext, err := server.NewServerContext(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		_ = serverContext.Shutdown()
	}()

	if !drive.HasToken() {
		logger.Warn("no Google OAuth token found; Drive operations will fail until 'gdrive-mcp auth' is run")
	}

	handlerConfig := mcp.Config{
		Drive: func(ctx context.Context) (mcp.DriveService, error) {
			client, err := serverContext.DriveClient()
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		Logger:       logger,
		Metrics:      provider.Metrics(),
		WithAuthTool: withAuthTool,
	}

	srv, err := mcpserver.New(
		mcpserver.WithNewHandler(mcp.NewHandlerFactory(handlerConfig)),
		mcpserver.WithImplementation(schema.Implementation{Name: "gdrive-mcp", Version: version}),
	)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	switch transport {
	case "stdio":
		// No metrics server on stdio: stdout belongs to the protocol and
		// the process lifetime is bound to the client anyway.
		return srv.Stdio(shutdownCtx).ListenAndServe()
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, logger, srv, serverContext, provider, httpAddr, metricsConfig)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStreamableHTTPServer(ctx context.Context, logger *slog.Logger, srv *mcpserver.Server, serverContext *server.ServerContext, provider *instrumentation.Provider, httpAddr string, metricsConfig MetricsConfig) error {
	healthChecker := server.NewHealthChecker(serverContext)

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
			HealthChecker:           healthChecker,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm the metrics server started
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	srv.UseStreamableHTTP(true)
	httpServer := srv.HTTP(ctx, httpAddr)

	go func() {
		<-ctx.Done()
		healthChecker.SetReady(false)

		shutdownTimeout, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownTimeout); err != nil {
				logger.Error("metrics server shutdown failed", logging.Err(err))
			}
		}
		if err := httpServer.Shutdown(shutdownTimeout); err != nil {
			logger.Error("HTTP server shutdown failed", logging.Err(err))
		}
	}()

	logger.Info("starting MCP server", "transport", "streamable-http", "addr", httpAddr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
