package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MixCalc_Go/internal/mixing"
)

// stoppable is anything that can be stopped within a deadline
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stoppable
	Mixing mixing.Service
}

// GracefulShutdown stops the HTTP server first so no new mixes arrive, then
// drops the mix cache. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Mixing != nil {
		components.Mixing.ClearCache()
		slog.Debug(LogMsgMixCacheCleared)
	}

	slog.Info(LogMsgServerStopped)
}
