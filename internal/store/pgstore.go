package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PGStore keeps one JSONB record per user in Postgres. Row-level upserts
// give the same replace-wholesale durability the file store gets from
// rename; corrupt rows are moved to a quarantine table.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects, runs pending migrations and returns the store.
func NewPGStore(ctx context.Context, connString string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := migrate(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PGStore{pool: pool}, nil
}

func migrate(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (pg *PGStore) Close() {
	pg.pool.Close()
}

// Ping reports database liveness for readiness probes.
func (pg *PGStore) Ping(ctx context.Context) error {
	return pg.pool.Ping(ctx)
}

// Load returns the user's record, creating a default row on first sight
// and quarantining rows whose JSON no longer parses.
func (pg *PGStore) Load(ctx context.Context, userKey, username string) (*domain.UserRecord, error) {
	var raw []byte
	err := pg.pool.QueryRow(ctx, `SELECT record FROM users WHERE user_key = $1`, userKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return pg.createDefault(ctx, userKey, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record for %s: %w", userKey, err)
	}

	rec := &domain.UserRecord{}
	if err := json.Unmarshal(raw, rec); err != nil {
		pg.quarantine(ctx, userKey, raw, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err))
		return pg.createDefault(ctx, userKey, username)
	}

	rec.UserID = userKey
	rec.Normalize()

	if username != "" && rec.Username != username {
		rec.Username = username
		if err := pg.Save(ctx, userKey, rec); err != nil {
			logger.FromContext(ctx).Warn("Failed to persist refreshed username", "userKey", userKey, "error", err)
		}
	}
	return rec, nil
}

func (pg *PGStore) createDefault(ctx context.Context, userKey, username string) (*domain.UserRecord, error) {
	rec := domain.NewUserRecord(userKey, username)
	if err := pg.Save(ctx, userKey, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (pg *PGStore) quarantine(ctx context.Context, userKey string, raw []byte, cause error) {
	log := logger.FromContext(ctx)
	_, err := pg.pool.Exec(ctx, `
		WITH moved AS (DELETE FROM users WHERE user_key = $1 RETURNING user_key)
		INSERT INTO quarantined_users (user_key, record)
		SELECT user_key, $2 FROM moved`,
		userKey, string(raw))
	if err != nil {
		log.Error("Failed to quarantine corrupt record", "userKey", userKey, "error", err)
		return
	}
	log.Warn("Quarantined corrupt user record", "userKey", userKey, "cause", cause)
}

// Save upserts the record; the row flips to the new value atomically.
func (pg *PGStore) Save(ctx context.Context, userKey string, rec *domain.UserRecord) error {
	rec.Inventory.Prune()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal record for %s: %v", domain.ErrStorageWrite, userKey, err)
	}

	_, err = pg.pool.Exec(ctx, `
		INSERT INTO users (user_key, username, record, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_key)
		DO UPDATE SET username = EXCLUDED.username, record = EXCLUDED.record, updated_at = now()`,
		userKey, rec.Username, raw)
	if err != nil {
		return fmt.Errorf("%w: upsert record for %s: %v", domain.ErrStorageWrite, userKey, err)
	}
	return nil
}

// LoadAll returns every stored record, skipping rows that fail to parse.
func (pg *PGStore) LoadAll(ctx context.Context) ([]*domain.UserRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := pg.pool.Query(ctx, `SELECT user_key, record FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	defer rows.Close()

	var records []*domain.UserRecord
	for rows.Next() {
		var userKey string
		var raw []byte
		if err := rows.Scan(&userKey, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		rec := &domain.UserRecord{}
		if err := json.Unmarshal(raw, rec); err != nil {
			log.Warn("Skipping corrupt record during scan", "userKey", userKey, "error", err)
			continue
		}
		rec.UserID = userKey
		rec.Normalize()
		records = append(records, rec)
	}
	return records, rows.Err()
}
