// Package store persists one durable UserRecord per user key.
//
// Both implementations share the same contract: Load creates a default
// record on first sight and self-heals corrupt data by quarantining it,
// Save is durable-atomic so a crash mid-write never leaves a half-written
// record visible, and LoadAll is a read-only scan that never mutates the
// records it returns.
package store

import (
	"context"

	"github.com/brinepool/gatherbot/internal/domain"
)

// Store is the per-user persistence contract consumed by the services.
type Store interface {
	// Load returns the user's record, creating a default one on first
	// interaction. The display name is refreshed on every load.
	Load(ctx context.Context, userKey, username string) (*domain.UserRecord, error)

	// Save durably replaces the user's record.
	Save(ctx context.Context, userKey string, rec *domain.UserRecord) error

	// LoadAll returns every persisted record. Unreadable entries are
	// skipped, not repaired; the scan takes no per-user locks.
	LoadAll(ctx context.Context) ([]*domain.UserRecord, error)
}
