package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brinepool/gatherbot/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoney},
		{"max tier", domain.ErrMaxTierReached, http.StatusBadRequest, ErrMsgMaxTier},
		{"max level", domain.ErrMaxLevelReached, http.StatusBadRequest, ErrMsgMaxLevel},
		{"unknown upgrade", domain.ErrUnknownUpgradeKey, http.StatusBadRequest, ErrMsgUnknownUpgrade},
		{"nothing to sell", domain.ErrNothingToSell, http.StatusBadRequest, ErrMsgNothingToSell},
		{"unknown item", domain.ErrUnknownItem, http.StatusBadRequest, ErrMsgUnknownItem},
		{"unknown activity", domain.ErrUnknownActivity, http.StatusBadRequest, ErrMsgUnknownActivity},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFound},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequest},
		{"storage write", domain.ErrStorageWrite, http.StatusServiceUnavailable, ErrMsgStorageUnhealthy},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ErrMsgServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapServiceErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to commit attempt for u1: %w",
		fmt.Errorf("%w: disk full", domain.ErrStorageWrite))

	status, msg := mapServiceErrorToUserMessage(wrapped)

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, ErrMsgStorageUnhealthy, msg)
}
