package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
)

func testConfig(t *testing.T) *gameconfig.Store {
	t.Helper()
	cfg, err := gameconfig.Load(t.TempDir())
	require.NoError(t, err)
	return cfg
}

// testResolver returns a resolver with a fixed clock and scripted RNG.
// rolls feeds r.rnd in order; rollItem always picks index 0.
func testResolver(t *testing.T, def Definition, now int64, rolls ...float64) *Resolver {
	t.Helper()
	r := NewResolver(def, testConfig(t))
	r.now = func() time.Time { return time.Unix(now, 0) }
	idx := 0
	r.rnd = func() float64 {
		if idx >= len(rolls) {
			t.Fatalf("rnd called %d times, only %d rolls scripted", idx+1, len(rolls))
		}
		v := rolls[idx]
		idx++
		return v
	}
	r.rndInt = func(n int) int { return 0 }
	return r
}

func TestAttemptFreshUserSucceeds(t *testing.T) {
	r := testResolver(t, FishingDefinition(), 1_000_000, 0.0, 0.99)
	rec := domain.NewUserRecord("u1", "alice")

	res := r.Attempt(rec)

	require.True(t, res.Success)
	assert.False(t, res.OnCooldown)
	assert.Equal(t, domain.ActivityFishing, res.Activity)
	assert.Equal(t, domain.RarityCommon, res.Rarity)
	assert.Equal(t, "cod", res.Item)
	assert.Equal(t, 10, res.Value)
	assert.False(t, res.BonusEvent)
}

func TestAttemptSuccessPostconditions(t *testing.T) {
	now := int64(1_000_000)
	r := testResolver(t, FishingDefinition(), now, 0.0, 0.99)
	rec := domain.NewUserRecord("u1", "alice")

	res := r.Attempt(rec)

	assert.Equal(t, 1, rec.Stats.TotalCatches)
	assert.Equal(t, 0, rec.Stats.TotalChops)
	assert.Equal(t, now, rec.Stats.LastFishTimestamp)
	assert.Equal(t, res.Value, rec.Currency)
	assert.Equal(t, 1, rec.Inventory.Count(domain.ActivityFishing, res.Rarity, res.Item))
}

func TestAttemptOnCooldown(t *testing.T) {
	now := int64(1_000_000)
	r := testResolver(t, FishingDefinition(), now) // rnd must not be called
	rec := domain.NewUserRecord("u1", "alice")
	rec.SetLastAction(domain.ActivityFishing, now-30) // default cooldown is 60s

	before := rec.Clone()
	res := r.Attempt(rec)

	assert.False(t, res.Success)
	assert.True(t, res.OnCooldown)
	assert.Equal(t, int64(30), res.RemainingSeconds)
	assert.Equal(t, before, rec, "rejection must leave the record untouched")
}

func TestAttemptCooldownExactBoundary(t *testing.T) {
	now := int64(1_000_000)
	r := testResolver(t, FishingDefinition(), now, 0.0, 0.99)
	rec := domain.NewUserRecord("u1", "alice")
	rec.SetLastAction(domain.ActivityFishing, now-60)

	res := r.Attempt(rec)

	assert.True(t, res.Success, "cooldown of exactly zero remaining allows the action")
}

func TestAttemptActivitiesAreIndependent(t *testing.T) {
	now := int64(1_000_000)
	rec := domain.NewUserRecord("u1", "alice")
	rec.SetLastAction(domain.ActivityFishing, now-1) // fishing hot

	r := testResolver(t, WoodcuttingDefinition(), now, 0.0, 0.99)
	res := r.Attempt(rec)

	assert.True(t, res.Success, "fishing cooldown must not block chopping")
	assert.Equal(t, domain.ActivityWoodcutting, res.Activity)
	assert.Equal(t, "oak", res.Item)
}

func TestAttemptBonusEventDoublesValue(t *testing.T) {
	// Default bonus chance is 1%; a 0.005 roll lands inside it.
	r := testResolver(t, FishingDefinition(), 1_000_000, 0.0, 0.005)
	rec := domain.NewUserRecord("u1", "alice")

	res := r.Attempt(rec)

	require.True(t, res.BonusEvent)
	assert.Equal(t, 20, res.Value)
	assert.Equal(t, 20, rec.Currency)
	assert.Equal(t, 1, rec.Inventory.Count(domain.ActivityFishing, domain.RarityCommon, "cod"), "bonus doubles value, not drops")
}

func TestAttemptZeroBonusChanceNeverFires(t *testing.T) {
	cfg := testConfig(t)
	settings := cfg.Snapshot().Settings
	settings.GoldenBiteChance = 0
	require.NoError(t, cfg.ReplaceSettings(settings))

	r := NewResolver(FishingDefinition(), cfg)
	r.now = func() time.Time { return time.Unix(1_000_000, 0) }
	r.rnd = func() float64 { return 0.0 } // worst case roll
	r.rndInt = func(n int) int { return 0 }

	res := r.Attempt(domain.NewUserRecord("u1", "alice"))

	assert.False(t, res.BonusEvent, "0% chance must never fire, even on a 0.0 roll")
}

func TestRollRarityBuckets(t *testing.T) {
	// Default weights: 50 / 30 / 15 / 4 / 0.9 / 0.1, total 100.
	tests := []struct {
		name string
		roll float64
		want domain.Rarity
	}{
		{"low end", 0.0, domain.RarityCommon},
		{"just inside common", 0.4999, domain.RarityCommon},
		{"uncommon", 0.5, domain.RarityUncommon},
		{"rare", 0.80, domain.RarityRare},
		{"epic", 0.95, domain.RarityEpic},
		{"legendary", 0.992, domain.RarityLegendary},
		{"mythic", 0.9995, domain.RarityMythic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResolver(t, FishingDefinition(), 1_000_000, tt.roll, 0.99)
			res := r.Attempt(domain.NewUserRecord("u1", "alice"))
			assert.Equal(t, tt.want, res.Rarity)
		})
	}
}

func TestRollRarityUpgradeBoost(t *testing.T) {
	// Hook sharpness 10 boosts Rare+ weights by 1.5x: the vector becomes
	// 50 / 30 / 22.5 / 6 / 1.35 / 0.15, total 110. A 0.75 roll (82.5)
	// lands in Rare where an unboosted user would land in Uncommon.
	rec := domain.NewUserRecord("u1", "alice")
	rec.Upgrades[domain.UpgradeHookSharpness] = 10

	r := testResolver(t, FishingDefinition(), 1_000_000, 0.75, 0.99)
	res := r.Attempt(rec)
	assert.Equal(t, domain.RarityRare, res.Rarity)

	unboosted := testResolver(t, FishingDefinition(), 1_000_000, 0.75, 0.99)
	res = unboosted.Attempt(domain.NewUserRecord("u2", "bob"))
	assert.Equal(t, domain.RarityUncommon, res.Rarity)
}

func TestRollItemUsesScriptedIndex(t *testing.T) {
	r := testResolver(t, FishingDefinition(), 1_000_000, 0.5, 0.99)
	r.rndInt = func(n int) int { return n - 1 }

	res := r.Attempt(domain.NewUserRecord("u1", "alice"))

	assert.Equal(t, domain.RarityUncommon, res.Rarity)
	assert.Equal(t, "bass", res.Item)
}

func TestAttemptDistributionRoughlyMatchesWeights(t *testing.T) {
	cfg := testConfig(t)
	r := NewResolver(FishingDefinition(), cfg)

	// Deterministic LCG so the test cannot flake.
	seed := uint64(42)
	next := func() float64 {
		seed = seed*6364136223846793005 + 1442695040888963407
		return float64(seed>>11) / float64(1<<53)
	}
	r.rnd = next
	r.rndInt = func(n int) int { return 0 }

	now := int64(1_000_000)
	r.now = func() time.Time { return time.Unix(now, 0) }

	const trials = 100_000
	counts := map[domain.Rarity]int{}
	for i := 0; i < trials; i++ {
		rec := domain.NewUserRecord("u1", "alice")
		res := r.Attempt(rec)
		require.True(t, res.Success)
		counts[res.Rarity]++
	}

	common := float64(counts[domain.RarityCommon]) / trials
	assert.InDelta(t, 0.50, common, 0.02)
	uncommon := float64(counts[domain.RarityUncommon]) / trials
	assert.InDelta(t, 0.30, uncommon, 0.02)
	rare := float64(counts[domain.RarityRare]) / trials
	assert.InDelta(t, 0.15, rare, 0.02)
}
