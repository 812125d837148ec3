package config

import "time"

const (
	// Configuration file paths
	ConfigPathAliases = "configs/aliases.json"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "mixcalc"
	DefaultVersion         = "dev"
	DefaultMixCacheSize    = 512
	DefaultMixCacheTTL     = 10 * time.Minute
	DefaultMaxRequestBytes = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvAPIKey           = "API_KEY"
	EnvMixCacheSize     = "MIX_CACHE_SIZE"
	EnvMixCacheTTL      = "MIX_CACHE_TTL"
	EnvAliasesPath      = "ALIASES_PATH"
	EnvMaxRequestBytes  = "MAX_REQUEST_BYTES"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvEnvSchemaVersion = "ENV_SCHEMA_VERSION"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
