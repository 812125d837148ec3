package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/MixCalc_Go/internal/config"
	"github.com/osse101/MixCalc_Go/internal/logger"
)

// SetupLogger initializes the default logger from the application config and
// logs the startup banner
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	loggerConfig := logger.FromAppConfig(cfg)

	log := logger.InitLoggerWithWriter(loggerConfig, w)

	log.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	log.Info(LogMsgStartingMixCalc,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", loggerConfig.Format,
		"version", cfg.Version)

	log.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"auth_enabled", cfg.AuthEnabled(),
		"mix_cache_size", cfg.MixCacheSize,
		"mix_cache_ttl", cfg.MixCacheTTL,
		"aliases_path", cfg.AliasesPath)

	return log
}

// LogConfigWarnings reports non-fatal configuration issues
func LogConfigWarnings(warnings []string) {
	for _, w := range warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
