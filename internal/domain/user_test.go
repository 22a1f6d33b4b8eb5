package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRecordDefaults(t *testing.T) {
	rec := NewUserRecord("u1", "alice")

	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, 0, rec.Currency)
	assert.Equal(t, Equipment{Tier: StarterRodTier, Level: 1}, rec.Rod)
	assert.Equal(t, Equipment{Tier: StarterAxeTier, Level: 1}, rec.Axe)
	assert.NotNil(t, rec.Upgrades)
	assert.NotNil(t, rec.Inventory[ActivityFishing])
	assert.NotNil(t, rec.Inventory[ActivityWoodcutting])
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	rec := &UserRecord{UserID: "u1", Username: "alice", Currency: -50}

	rec.Normalize()

	assert.Equal(t, StarterRodTier, rec.Rod.Tier)
	assert.Equal(t, 1, rec.Rod.Level)
	assert.Equal(t, StarterAxeTier, rec.Axe.Tier)
	assert.NotNil(t, rec.Upgrades)
	assert.NotNil(t, rec.Inventory[ActivityFishing])
	assert.NotNil(t, rec.Inventory[ActivityWoodcutting])
	assert.Equal(t, 0, rec.Currency, "negative balances clamp to zero")
}

func TestNormalizePreservesExistingState(t *testing.T) {
	rec := NewUserRecord("u1", "alice")
	rec.Currency = 1234
	rec.Rod.Tier = "Iron Rod"
	rec.Upgrades[UpgradeHookSharpness] = 3
	rec.Inventory.Add(ActivityFishing, RarityRare, "shrimp", 2)

	rec.Normalize()

	assert.Equal(t, 1234, rec.Currency)
	assert.Equal(t, "Iron Rod", rec.Rod.Tier)
	assert.Equal(t, 3, rec.UpgradeLevel(UpgradeHookSharpness))
	assert.Equal(t, 2, rec.Inventory.Count(ActivityFishing, RarityRare, "shrimp"))
}

func TestCloneIsDeep(t *testing.T) {
	rec := NewUserRecord("u1", "alice")
	rec.Upgrades[UpgradeHookSharpness] = 1
	rec.Inventory.Add(ActivityFishing, RarityCommon, "cod", 1)

	clone := rec.Clone()
	clone.Currency = 999
	clone.Upgrades[UpgradeHookSharpness] = 5
	clone.Inventory.Add(ActivityFishing, RarityCommon, "cod", 5)

	assert.Equal(t, 0, rec.Currency)
	assert.Equal(t, 1, rec.UpgradeLevel(UpgradeHookSharpness))
	assert.Equal(t, 1, rec.Inventory.Count(ActivityFishing, RarityCommon, "cod"))
}

func TestActivityAccessors(t *testing.T) {
	rec := NewUserRecord("u1", "alice")

	rec.SetLastAction(ActivityFishing, 100)
	rec.SetLastAction(ActivityWoodcutting, 200)
	rec.IncrementActions(ActivityFishing)
	rec.IncrementActions(ActivityFishing)
	rec.IncrementActions(ActivityWoodcutting)

	assert.Equal(t, int64(100), rec.LastAction(ActivityFishing))
	assert.Equal(t, int64(200), rec.LastAction(ActivityWoodcutting))
	assert.Equal(t, 2, rec.TotalActions(ActivityFishing))
	assert.Equal(t, 1, rec.TotalActions(ActivityWoodcutting))
	assert.Equal(t, StarterRodTier, rec.TierFor(ActivityFishing))
	assert.Equal(t, StarterAxeTier, rec.TierFor(ActivityWoodcutting))
}

func TestItemValue(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		rarity   Rarity
		item     string
		want     int
	}{
		{"baseline common", ActivityFishing, RarityCommon, "cod", 10},
		{"discounted common", ActivityFishing, RarityCommon, "herring", 8},
		{"boosted rare", ActivityFishing, RarityRare, "shrimp", 112}, // floor(75 * 1.5)
		{"no multiplier entry", ActivityFishing, RarityMythic, "priceless", 1500},
		{"log multiplier", ActivityWoodcutting, RarityUncommon, "maple", 36}, // floor(30 * 1.2)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemValue(tt.activity, tt.rarity, tt.item))
		})
	}
}

func TestItemRarity(t *testing.T) {
	rarity, ok := ItemRarity(ActivityFishing, "puffer")
	assert.True(t, ok)
	assert.Equal(t, RarityRare, rarity)

	_, ok = ItemRarity(ActivityWoodcutting, "puffer")
	assert.False(t, ok, "fish are not logs")
}
