package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Mix operation error messages
	ErrMsgMixFailed      = "Failed to build mix"
	ErrMsgGetRulesFailed = "Failed to retrieve rules"

	// Recipe operation error messages
	ErrMsgSaveRecipeFailed   = "Failed to save recipe"
	ErrMsgToggleRecipeFailed = "Failed to toggle recipe"
	ErrMsgRemoveRecipeFailed = "Failed to remove recipe"
	ErrMsgGetRecipeFailed    = "Failed to get recipe"

	// Admin error messages
	ErrMsgReloadConfigFailed = "Failed to reload configuration"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgRecipeNotFoundError  = "Recipe not found"
	ErrMsgNothingToSaveError   = "Add at least one ingredient before saving"
	ErrMsgUnauthorizedError    = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
)

// Success messages for API responses
const (
	MsgRecipeSaved           = "Recipe saved"
	MsgRecipeRemoved         = "Recipe removed"
	MsgConfigReloadedSuccess = "Alias configuration reloaded successfully"
	MsgCacheClearedSuccess   = "Mix cache cleared"
)

// Health status values
const (
	StatusOK = "ok"
)

// Response plumbing
const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
	encodeBufferSize  = 512
)

// Query parameters
const (
	QueryParamIncoming = "incoming"
)

// URL parameters
const (
	URLParamKey = "key"
)
