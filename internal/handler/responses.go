package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool holds encode buffers reused across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encode failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err against the operation and answers with the
// status and message it maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	statusCode, userMsg := MapServiceError(err)

	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(operation, "error", err)
	} else {
		log.Warn(operation, "error", err, "status", statusCode)
	}

	respondError(w, statusCode, userMsg)
}

// MapServiceError maps domain errors to user-friendly HTTP responses.
// Unknown-name errors are built from the caller's input and catalog names only,
// so their text (including any suggestion) is passed through.
func MapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrUnknownIngredient),
		errors.Is(err, domain.ErrUnknownEffect),
		errors.Is(err, domain.ErrUnknownQuality),
		errors.Is(err, domain.ErrUnknownAdditive):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrNothingToSave):
		return http.StatusUnprocessableEntity, ErrMsgNothingToSaveError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
