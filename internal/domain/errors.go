package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUserNotFound          = "user not found"
	ErrMsgInsufficientFunds     = "insufficient funds"
	ErrMsgMaxTierReached        = "already at max tier"
	ErrMsgMaxLevelReached       = "already at max level"
	ErrMsgUnknownUpgradeKey     = "unknown upgrade key"
	ErrMsgNothingToSell         = "nothing to sell"
	ErrMsgInsufficientInventory = "insufficient inventory"
	ErrMsgUnknownItem           = "unknown item"
	ErrMsgUnknownActivity       = "unknown activity"
	ErrMsgStorageWrite          = "storage write failed"
	ErrMsgCorruptRecord         = "corrupt persisted record"
	ErrMsgInvalidInput          = "invalid input"
)

// Business-rule rejections are expected and recoverable. They never mutate
// state and are reported to the caller as typed outcomes, not generic faults.
// Wrap with fmt.Errorf("%w: detail", domain.ErrXxx) for context.
var (
	ErrUserNotFound          = errors.New(ErrMsgUserNotFound)
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrMaxTierReached        = errors.New(ErrMsgMaxTierReached)
	ErrMaxLevelReached       = errors.New(ErrMsgMaxLevelReached)
	ErrUnknownUpgradeKey     = errors.New(ErrMsgUnknownUpgradeKey)
	ErrNothingToSell         = errors.New(ErrMsgNothingToSell)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)
	ErrUnknownItem           = errors.New(ErrMsgUnknownItem)
	ErrUnknownActivity       = errors.New(ErrMsgUnknownActivity)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)

	// Storage errors
	ErrStorageWrite  = errors.New(ErrMsgStorageWrite)
	ErrCorruptRecord = errors.New(ErrMsgCorruptRecord)
)
