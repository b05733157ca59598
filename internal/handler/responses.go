package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pfortier/BistroCore_Go/internal/domain"
	"github.com/pfortier/BistroCore_Go/internal/logger"
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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	log.Error(opName+" failed", "error", err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr = "Too many requests. Please try again later."

	// Catalog messages
	ErrMsgRecipeNotFoundError     = "Recipe not found"
	ErrMsgIngredientNotFoundError = "Ingredient not found"
	ErrMsgMappingNotFoundError    = "Supplier mapping not found"

	// Conversion messages
	ErrMsgUnknownUnitError      = "Unknown unit. Valid units: kg, g, l, ml, unite"
	ErrMsgIncompatibleUnitError = "Units are not compatible for conversion"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusBadRequest, ErrMsgIngredientNotFoundError
	case errors.Is(err, domain.ErrMappingNotFound):
		return http.StatusBadRequest, ErrMsgMappingNotFoundError
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, ErrMsgUnknownUnitError
	case errors.Is(err, domain.ErrIncompatibleUnit):
		return http.StatusBadRequest, ErrMsgIncompatibleUnitError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (mostly from tests and mocks) pass through;
	// anything long or system-level collapses to the generic message.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
