package store

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinepool/gatherbot/internal/domain"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	return fs, dir
}

func TestLoadCreatesDefaultOnFirstInteraction(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	rec, err := fs.Load(ctx, "user1", "alice")

	require.NoError(t, err)
	assert.Equal(t, "user1", rec.UserID)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, domain.StarterRodTier, rec.Rod.Tier)

	// The default must already be durable.
	_, err = os.Stat(filepath.Join(dir, "user1.json"))
	assert.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)
	rec.Currency = 4200
	rec.Rod.Tier = "Speedster Rod"
	rec.Upgrades[domain.UpgradeHookSharpness] = 2
	rec.Inventory.Add(domain.ActivityFishing, domain.RarityRare, "shrimp", 3)
	rec.Stats.TotalCatches = 17
	require.NoError(t, fs.Save(ctx, "user1", rec))

	got, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)

	assert.Equal(t, 4200, got.Currency)
	assert.Equal(t, "Speedster Rod", got.Rod.Tier)
	assert.Equal(t, 2, got.UpgradeLevel(domain.UpgradeHookSharpness))
	assert.Equal(t, 3, got.Inventory.Count(domain.ActivityFishing, domain.RarityRare, "shrimp"))
	assert.Equal(t, 17, got.Stats.TotalCatches)
}

func TestSavePrunesZeroCounts(t *testing.T) {
	fs, _ := newTestStore(t)
	ctx := context.Background()

	rec, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)
	rec.Inventory.Add(domain.ActivityFishing, domain.RarityCommon, "cod", 0)
	require.NoError(t, fs.Save(ctx, "user1", rec))

	got, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)
	_, present := got.Inventory[domain.ActivityFishing][domain.RarityCommon]
	assert.False(t, present)
}

func TestLoadQuarantinesCorruptRecord(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(prev)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user1.json"), []byte("{not json"), 0644))

	rec, err := fs.Load(ctx, "user1", "alice")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), domain.ErrMsgCorruptRecord)
	assert.Equal(t, 0, rec.Currency, "corrupt record yields a fresh default")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	quarantined := 0
	for _, e := range entries {
		if strings.Contains(e.Name(), ".corrupt.") {
			quarantined++
		}
	}
	assert.Equal(t, 1, quarantined, "original bytes must survive for inspection")
}

func TestLoadRefreshesUsername(t *testing.T) {
	fs, _ := newTestStore(t)
	ctx := context.Background()

	_, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)

	rec, err := fs.Load(ctx, "user1", "alice_renamed")
	require.NoError(t, err)
	assert.Equal(t, "alice_renamed", rec.Username)

	// Refresh must persist, not just mutate in memory.
	again, err := fs.Load(ctx, "user1", "")
	require.NoError(t, err)
	assert.Equal(t, "alice_renamed", again.Username)
}

func TestLoadNormalizesPartialRecord(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	// A record from an older version missing most fields.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user1.json"),
		[]byte(`{"username":"alice","currency":77}`), 0644))

	rec, err := fs.Load(ctx, "user1", "")
	require.NoError(t, err)

	assert.Equal(t, 77, rec.Currency)
	assert.Equal(t, domain.StarterRodTier, rec.Rod.Tier)
	assert.NotNil(t, rec.Upgrades)
	assert.NotNil(t, rec.Inventory[domain.ActivityWoodcutting])
}

func TestBadUserKeys(t *testing.T) {
	fs, _ := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "..", "a/b", `a\b`, "."} {
		_, err := fs.Load(ctx, key, "alice")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "key %q", key)

		err = fs.Save(ctx, key, domain.NewUserRecord(key, "alice"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "key %q", key)
	}
}

func TestLoadAll(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	_, err := fs.Load(ctx, "user1", "alice")
	require.NoError(t, err)
	_, err = fs.Load(ctx, "user2", "bob")
	require.NoError(t, err)

	// Noise that the scan must skip.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user3.corrupt.x.json"), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".user4.tmp.y"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	records, err := fs.LoadAll(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.UserID)
	}
	assert.ElementsMatch(t, []string{"user1", "user2"}, names)
}

func TestLoadAllSkipsCorruptWithoutMutating(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	corruptPath := filepath.Join(dir, "user1.json")
	require.NoError(t, os.WriteFile(corruptPath, []byte("{broken"), 0644))

	records, err := fs.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The broken file stays in place; only Load quarantines.
	data, err := os.ReadFile(corruptPath)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	fs, dir := newTestStore(t)
	ctx := context.Background()

	rec := domain.NewUserRecord("user1", "alice")
	for i := 0; i < 5; i++ {
		rec.Currency = i
		require.NoError(t, fs.Save(ctx, "user1", rec))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "leftover temp file %s", e.Name())
	}
}
