// Package activity implements the cooldown-gated RNG engine behind the
// fish and chop actions. One Resolver per activity shares the same
// algorithm and differs only in its Definition.
package activity

import (
	"time"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/utils"
)

// Upgrade-driven weight boosts, multiplicative and compounding.
const (
	// rareBoostPerLevel applies to Rare and above per level of the
	// activity's first upgrade (hook/blade sharpness).
	rareBoostPerLevel = 0.05
	// epicBoostPerLevel applies to Epic and above per level of the
	// activity's second upgrade (line/handle strength), after the first.
	epicBoostPerLevel = 0.03
)

var rarePlus = []domain.Rarity{domain.RarityRare, domain.RarityEpic, domain.RarityLegendary, domain.RarityMythic}
var epicPlus = []domain.Rarity{domain.RarityEpic, domain.RarityLegendary, domain.RarityMythic}

// Definition binds a Resolver to one activity's tables and upgrade keys.
type Definition struct {
	Activity      domain.Activity
	RareUpgradeKey string // boosts Rare+
	EpicUpgradeKey string // boosts Epic+
}

// FishingDefinition describes the fishing line.
func FishingDefinition() Definition {
	return Definition{
		Activity:       domain.ActivityFishing,
		RareUpgradeKey: domain.UpgradeHookSharpness,
		EpicUpgradeKey: domain.UpgradeLineStrength,
	}
}

// WoodcuttingDefinition describes the woodcutting line.
func WoodcuttingDefinition() Definition {
	return Definition{
		Activity:       domain.ActivityWoodcutting,
		RareUpgradeKey: domain.UpgradeBladeSharpness,
		EpicUpgradeKey: domain.UpgradeHandleStrength,
	}
}

// Resolver rolls one activity's attempts against a user record. It only
// touches the activity's own namespace within the record and performs no
// I/O; the owning service handles persistence.
type Resolver struct {
	def Definition
	cfg *gameconfig.Store

	now    func() time.Time
	rnd    func() float64 // uniform [0,1)
	rndInt func(n int) int
}

// NewResolver builds a resolver with the production clock and RNG.
func NewResolver(def Definition, cfg *gameconfig.Store) *Resolver {
	return &Resolver{
		def:    def,
		cfg:    cfg,
		now:    time.Now,
		rnd:    utils.RandomFloat,
		rndInt: utils.RandomIntn,
	}
}

// Attempt resolves one action against rec, mutating it only on success.
// A cooldown rejection is a normal result, not an error, and leaves the
// record untouched.
func (r *Resolver) Attempt(rec *domain.UserRecord) domain.ActionResult {
	tables := r.cfg.Snapshot()
	now := r.now().Unix()

	remaining := tables.CooldownSeconds(r.def.Activity) - (now - rec.LastAction(r.def.Activity))
	if remaining > 0 {
		return domain.ActionResult{
			Activity:         r.def.Activity,
			OnCooldown:       true,
			RemainingSeconds: remaining,
		}
	}

	rarity := r.rollRarity(tables, rec)
	item := r.rollItem(rarity)
	bonus := r.rnd() < tables.BonusChance(r.def.Activity)/100

	value := domain.ItemValue(r.def.Activity, rarity, item)
	if bonus {
		value *= 2
	}

	rec.IncrementActions(r.def.Activity)
	rec.SetLastAction(r.def.Activity, now)
	rec.Currency += value
	rec.Inventory.Add(r.def.Activity, rarity, item, 1)

	return domain.ActionResult{
		Activity:   r.def.Activity,
		Success:    true,
		Rarity:     rarity,
		Item:       item,
		Value:      value,
		BonusEvent: bonus,
	}
}

// rollRarity draws a rarity from the tier's weight vector after applying
// the upgrade boosts. Weights are relative, never normalized.
func (r *Resolver) rollRarity(tables *gameconfig.Tables, rec *domain.UserRecord) domain.Rarity {
	weights := tables.WeightsFor(r.def.Activity, rec.TierFor(r.def.Activity))

	rareBoost := 1 + float64(rec.UpgradeLevel(r.def.RareUpgradeKey))*rareBoostPerLevel
	for _, rarity := range rarePlus {
		weights[rarity] *= rareBoost
	}
	epicBoost := 1 + float64(rec.UpgradeLevel(r.def.EpicUpgradeKey))*epicBoostPerLevel
	for _, rarity := range epicPlus {
		weights[rarity] *= epicBoost
	}

	total := 0.0
	for _, rarity := range domain.Rarities {
		total += weights[rarity]
	}

	roll := r.rnd() * total
	cumulative := 0.0
	for _, rarity := range domain.Rarities {
		cumulative += weights[rarity]
		if roll < cumulative {
			return rarity
		}
	}
	// Float accumulation can leave roll a hair past the final bucket.
	return domain.Rarities[len(domain.Rarities)-1]
}

// rollItem picks uniformly among the rarity's item types.
func (r *Resolver) rollItem(rarity domain.Rarity) string {
	items := domain.ItemsByRarity(r.def.Activity)[rarity]
	return items[r.rndInt(len(items))]
}
