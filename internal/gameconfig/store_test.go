package gameconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/utils"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir)
	require.NoError(t, err)

	tables := s.Snapshot()
	assert.Equal(t, 60, tables.Settings.FishCooldownSeconds)
	assert.Equal(t, 1.0, tables.Settings.GoldenBiteChance)

	for _, name := range []string{"settings.json", "rates.json", "prices.json", "emoji.json"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "defaults land via rename, no temp files remain")
}

func TestLoadReadsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, utils.SaveJSON(filepath.Join(dir, "settings.json"), Settings{
		FishCooldownSeconds: 120,
		ChopCooldownSeconds: 90,
		GoldenBiteChance:    5,
		TimberBiteChance:    2.5,
	}))

	s, err := Load(dir)
	require.NoError(t, err)

	tables := s.Snapshot()
	assert.Equal(t, 120, tables.Settings.FishCooldownSeconds)
	assert.Equal(t, int64(90), tables.CooldownSeconds(domain.ActivityWoodcutting))
	assert.Equal(t, 2.5, tables.BonusChance(domain.ActivityWoodcutting))
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, utils.SaveJSON(filepath.Join(dir, "settings.json"), Settings{
		FishCooldownSeconds: 0, // below minimum
		ChopCooldownSeconds: 60,
	}))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestReplaceSettingsValidatesAndPersists(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)

	next := s.Snapshot().Settings
	next.FishCooldownSeconds = 300
	require.NoError(t, s.ReplaceSettings(next))

	assert.Equal(t, int64(300), s.Snapshot().CooldownSeconds(domain.ActivityFishing))

	// A fresh Store must observe the persisted change.
	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(300), reloaded.Snapshot().CooldownSeconds(domain.ActivityFishing))
}

func TestReplaceSettingsRejectsOutOfRange(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	bad := s.Snapshot().Settings
	bad.GoldenBiteChance = 250

	assert.Error(t, s.ReplaceSettings(bad))
	assert.Equal(t, 1.0, s.Snapshot().Settings.GoldenBiteChance, "rejected write must not apply")
}

func TestReplaceRatesRejectsBadWeights(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		weights Weights
	}{
		{"unknown rarity", Weights{"shiny": 10}},
		{"zero weight", Weights{domain.RarityCommon: 0}},
		{"negative weight", Weights{domain.RarityCommon: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ReplaceRates(Rates{
				RodTiers: map[string]Weights{"Starter Rod": tt.weights},
				AxeTiers: map[string]Weights{},
			})
			assert.Error(t, err)
		})
	}
}

func TestWeightsForMergesDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.ReplaceRates(Rates{
		RodTiers: map[string]Weights{
			"Speedster Rod": {domain.RarityMythic: 5},
		},
		AxeTiers: map[string]Weights{},
	}))

	w := s.Snapshot().WeightsFor(domain.ActivityFishing, "Speedster Rod")
	assert.Equal(t, 5.0, w[domain.RarityMythic])
	assert.Equal(t, 50.0, w[domain.RarityCommon], "missing rarities inherit defaults")

	// Unknown tiers fall back entirely.
	w = s.Snapshot().WeightsFor(domain.ActivityFishing, "Chocolate Rod")
	assert.Equal(t, DefaultWeights(), w)
}

func TestWeightsForReturnsCopy(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	w := s.Snapshot().WeightsFor(domain.ActivityFishing, "Starter Rod")
	w[domain.RarityCommon] = 1

	again := s.Snapshot().WeightsFor(domain.ActivityFishing, "Starter Rod")
	assert.Equal(t, 50.0, again[domain.RarityCommon], "callers may scribble on their copy")
}

func TestItemMultiplierOverride(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.ReplacePrices(Prices{Multipliers: map[string]float64{"cod": 3.5}}))

	tables := s.Snapshot()
	assert.Equal(t, 3.5, tables.ItemMultiplier(domain.ActivityFishing, "cod"))
	assert.Equal(t, 0.8, tables.ItemMultiplier(domain.ActivityFishing, "herring"), "untouched items use built-ins")
}

func TestReplacePricesRejectsNonPositive(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.ReplacePrices(Prices{Multipliers: map[string]float64{"cod": 0}}))
}

func TestEmojiTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, s.ReplaceEmoji(Emoji{"coin": "🥇"}))
	assert.Equal(t, "🥇", s.EmojiTable()["coin"])

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "🥇", reloaded.EmojiTable()["coin"])
}

func TestEmojiTableReturnsCopy(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.ReplaceEmoji(Emoji{"coin": "🥇"}))

	table := s.EmojiTable()
	table["coin"] = "💣"

	assert.Equal(t, "🥇", s.EmojiTable()["coin"])
}
