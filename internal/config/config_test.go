package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "mixcalc", cfg.ServiceName)
		assert.Equal(t, 512, cfg.MixCacheSize)
		assert.Equal(t, 10*time.Minute, cfg.MixCacheTTL)
		assert.Equal(t, "configs/aliases.json", cfg.AliasesPath)
		assert.Equal(t, int64(1<<20), cfg.MaxRequestBytes)
		assert.Empty(t, cfg.TrustedProxies)
		assert.False(t, cfg.AuthEnabled(), "API key is optional")
		assert.Equal(t, ":8080", cfg.Addr())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("MIX_CACHE_SIZE", "64")
		t.Setenv("MIX_CACHE_TTL", "90s")
		t.Setenv("ALIASES_PATH", "/etc/mixcalc/aliases.json")
		t.Setenv("MAX_REQUEST_BYTES", "4096")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 192.168.0.0/16,")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.True(t, cfg.AuthEnabled())
		assert.Equal(t, "debug", cfg.LogLevel, "level is normalized to lower case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 64, cfg.MixCacheSize)
		assert.Equal(t, 90*time.Second, cfg.MixCacheTTL)
		assert.Equal(t, "/etc/mixcalc/aliases.json", cfg.AliasesPath)
		assert.Equal(t, int64(4096), cfg.MaxRequestBytes)
		assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", true},
			{"negative port", "-1", true},
			{"max valid port", "65535", false},
			{"above max port", "65536", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("rejects malformed trusted proxy", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("TRUSTED_PROXIES", "not-an-ip")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("falls back to defaults for unparsable numbers", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MIX_CACHE_SIZE", "lots")
		t.Setenv("MIX_CACHE_TTL", "forever")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultMixCacheSize, cfg.MixCacheSize)
		assert.Equal(t, DefaultMixCacheTTL, cfg.MixCacheTTL)
	})

	t.Run("rejects zero cache size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MIX_CACHE_SIZE", "0")

		_, err := Load()

		assert.Error(t, err)
	})
}

// clearEnvVars unsets every config variable for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvAPIKey, EnvMixCacheSize, EnvMixCacheTTL, EnvAliasesPath, EnvMaxRequestBytes,
		EnvTrustedProxies, EnvShutdownTimeout, EnvEnvSchemaVersion,
	}

	for _, key := range envVars {
		// Setenv registers the restore; Unsetenv then clears it for this test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
