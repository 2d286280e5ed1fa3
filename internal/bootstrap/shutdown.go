package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	HTTPServer interface{ Stop() }
	Pool       *worker.Pool
	Manager    *game.Manager
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop serving health and metrics)
// 2. Worker pool (cancel and wait for queued game actions)
//
// It returns once both are stopped or ctx is done, whichever comes first.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		defer close(done)

		if components.HTTPServer != nil {
			slog.Info(LogMsgStoppingHTTPServer)
			components.HTTPServer.Stop()
		}

		if components.Pool != nil {
			slog.Info(LogMsgDrainingWorkerPool, "pending", components.Pool.Pending())
			components.Pool.Stop()
		}
	}()

	select {
	case <-done:
		if components.Manager != nil {
			slog.Info(LogMsgActiveSessionsAtExit, "sessions", components.Manager.Len())
		}
		slog.Info(LogMsgShutdownComplete)
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout, "error", ctx.Err())
	}
}
