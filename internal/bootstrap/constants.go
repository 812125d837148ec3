package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMixCalc     = "Starting MixCalc"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Service Initialization Messages
// =============================================================================

const (
	LogMsgServicesInitialized = "Services initialized"

	ErrMsgFailedInitResolver = "failed to initialize name resolver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgMixCacheCleared      = "Mix cache cleared"
)
