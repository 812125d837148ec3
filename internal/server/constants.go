package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Path prefixes that never need an API key, whatever the method
var PublicPaths = []string{
	"/healthz",
	"/version",
	"/metrics",
}

// Path prefixes whose every request needs an API key when one is configured
var AdminPaths = []string{
	"/api/v1/admin",
}

// Path prefixes whose state-changing requests need an API key when one is configured
var WritePaths = []string{
	"/api/v1/recipes",
}

// Paths skipped by the request logger
var QuietPaths = []string{
	"/healthz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Suspicious activity thresholds
const (
	DetectorWindow          = 5 * time.Minute
	FailedAuthAlertCount    = 5
	MaxRequestsPerWindow    = 1000
	HighRateLogEveryRequest = 100
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
)
