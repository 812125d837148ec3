package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that a declared .env schema version matches expectations.
// An undeclared version is accepted since every variable has a default.
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvEnvSchemaVersion)
	if !ok || schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if !cfg.AuthEnabled() && cfg.Environment == "prod" {
		warnings = append(warnings, "API_KEY is not set - recipe endpoints are writable without authentication")
	}

	return warnings, nil
}
