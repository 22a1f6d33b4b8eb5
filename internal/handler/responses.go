package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brinepool/gatherbot/internal/domain"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgInvalidRequest   = "Invalid request. Please check your inputs."
	ErrMsgUnknownError     = "Unknown error"
	ErrMsgServerError      = "Server error occurred. Please try again."
	ErrMsgNotEnoughMoney   = "Not enough money"
	ErrMsgMaxTier          = "Already at the top tier"
	ErrMsgMaxLevel         = "Already at max level"
	ErrMsgUnknownUpgrade   = "That upgrade does not exist"
	ErrMsgNothingToSell    = "Nothing to sell"
	ErrMsgNotEnoughItems   = "Not enough items"
	ErrMsgUnknownItem      = "That item does not exist"
	ErrMsgUnknownActivity  = "Unknown activity"
	ErrMsgUserNotFound     = "User not found"
	ErrMsgStorageUnhealthy = "Could not save your progress. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Business-rule rejections become 400s the caller can render;
// storage failures become 503s.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoney
	case errors.Is(err, domain.ErrMaxTierReached):
		return http.StatusBadRequest, ErrMsgMaxTier
	case errors.Is(err, domain.ErrMaxLevelReached):
		return http.StatusBadRequest, ErrMsgMaxLevel
	case errors.Is(err, domain.ErrUnknownUpgradeKey):
		return http.StatusBadRequest, ErrMsgUnknownUpgrade
	case errors.Is(err, domain.ErrNothingToSell):
		return http.StatusBadRequest, ErrMsgNothingToSell
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, ErrMsgNotEnoughItems
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItem
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusBadRequest, ErrMsgUnknownActivity
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	case errors.Is(err, domain.ErrStorageWrite):
		return http.StatusServiceUnavailable, ErrMsgStorageUnhealthy
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}
