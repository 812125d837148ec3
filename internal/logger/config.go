package logger

import (
	"log/slog"
	"strings"

	"github.com/osse101/MixCalc_Go/internal/config"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod", "lambda"
	AddSource   bool   // Include source file/line in logs
}

// Environments that get source locations in log records
var sourceEnvironments = map[string]bool{
	EnvironmentDev:         true,
	EnvironmentDevelopment: true,
}

// FromAppConfig derives the logger settings from the application config.
// Lambda output always goes out as JSON so CloudWatch can index it.
func FromAppConfig(cfg *config.Config) Config {
	c := Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   sourceEnvironments[strings.ToLower(cfg.Environment)],
	}
	if strings.EqualFold(cfg.Environment, EnvironmentLambda) {
		c.Format = LogFormatJSON
	}
	return c
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}

// DefaultConfig is the fallback used before the app config is loaded
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: config.DefaultServiceName,
		Version:     config.DefaultVersion,
		Environment: EnvironmentDev,
	}
}
