package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/logger"
)

const recordExt = ".json"

// FileStore keeps one JSON file per user under a data directory.
// Writes go to a temp file in the same directory followed by an atomic
// rename; corrupt files are quarantined aside and replaced with a fresh
// default record.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(userKey string) string {
	return filepath.Join(fs.dir, userKey+recordExt)
}

// validKey rejects keys that could escape the data directory.
func validKey(userKey string) bool {
	return userKey != "" && !strings.ContainsAny(userKey, `/\`) && userKey != "." && userKey != ".."
}

// Load reads the user's record, creating a default on first interaction
// and quarantining unreadable files.
func (fs *FileStore) Load(ctx context.Context, userKey, username string) (*domain.UserRecord, error) {
	if !validKey(userKey) {
		return nil, fmt.Errorf("%w: bad user key %q", domain.ErrInvalidInput, userKey)
	}

	data, err := os.ReadFile(fs.path(userKey))
	if os.IsNotExist(err) {
		return fs.createDefault(ctx, userKey, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record for %s: %w", userKey, err)
	}

	rec := &domain.UserRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		fs.quarantine(ctx, userKey, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err))
		return fs.createDefault(ctx, userKey, username)
	}

	rec.UserID = userKey
	rec.Normalize()

	if username != "" && rec.Username != username {
		rec.Username = username
		if err := fs.Save(ctx, userKey, rec); err != nil {
			// The stale name is cosmetic; keep serving the record.
			logger.FromContext(ctx).Warn("Failed to persist refreshed username", "userKey", userKey, "error", err)
		}
	}
	return rec, nil
}

func (fs *FileStore) createDefault(ctx context.Context, userKey, username string) (*domain.UserRecord, error) {
	rec := domain.NewUserRecord(userKey, username)
	if err := fs.Save(ctx, userKey, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// quarantine moves an unreadable record aside so the data survives for
// inspection while the user gets a fresh default.
func (fs *FileStore) quarantine(ctx context.Context, userKey string, cause error) {
	log := logger.FromContext(ctx)
	dest := filepath.Join(fs.dir, fmt.Sprintf("%s.corrupt.%s%s", userKey, uuid.NewString(), recordExt))
	if err := os.Rename(fs.path(userKey), dest); err != nil {
		log.Error("Failed to quarantine corrupt record", "userKey", userKey, "error", err)
		return
	}
	log.Warn("Quarantined corrupt user record", "userKey", userKey, "quarantinedAs", dest, "cause", cause)
}

// Save writes the record to a temp file and atomically renames it over the
// canonical location.
func (fs *FileStore) Save(ctx context.Context, userKey string, rec *domain.UserRecord) error {
	if !validKey(userKey) {
		return fmt.Errorf("%w: bad user key %q", domain.ErrInvalidInput, userKey)
	}

	rec.Inventory.Prune()
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal record for %s: %v", domain.ErrStorageWrite, userKey, err)
	}

	tmp := filepath.Join(fs.dir, fmt.Sprintf(".%s.tmp.%s", userKey, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: write temp for %s: %v", domain.ErrStorageWrite, userKey, err)
	}
	if err := os.Rename(tmp, fs.path(userKey)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace record for %s: %v", domain.ErrStorageWrite, userKey, err)
	}
	return nil
}

// LoadAll scans the data directory. Corrupt or in-flight temp files are
// skipped; this path never mutates anything.
func (fs *FileStore) LoadAll(ctx context.Context) ([]*domain.UserRecord, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan data dir %s: %w", fs.dir, err)
	}

	records := make([]*domain.UserRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.Contains(name, ".corrupt.") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(fs.dir, name))
		if err != nil {
			log.Warn("Skipping unreadable record during scan", "file", name, "error", err)
			continue
		}
		rec := &domain.UserRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			log.Warn("Skipping corrupt record during scan", "file", name, "error", err)
			continue
		}
		rec.UserID = strings.TrimSuffix(name, recordExt)
		rec.Normalize()
		records = append(records, rec)
	}
	return records, nil
}
