package gameconfig

import "github.com/brinepool/gatherbot/internal/domain"

// Settings holds the cooldown and bonus-event knobs admins can tune.
// Bonus chances are percentages: 1.0 means a 1% chance per action.
type Settings struct {
	FishCooldownSeconds int     `json:"fishCooldown" validate:"min=1,max=3600"`
	ChopCooldownSeconds int     `json:"chopCooldown" validate:"min=1,max=3600"`
	GoldenBiteChance    float64 `json:"goldenBiteChance" validate:"gte=0,lte=100"`
	TimberBiteChance    float64 `json:"timberBiteChance" validate:"gte=0,lte=100"`
}

// Weights is a relative (non-normalized) weight per rarity. Edits to one
// rarity never renormalize the others.
type Weights map[domain.Rarity]float64

// Rates holds per-equipment-tier rarity weight vectors for both tool lines.
type Rates struct {
	RodTiers map[string]Weights `json:"rodTiers" validate:"dive,dive,gt=0"`
	AxeTiers map[string]Weights `json:"axeTiers" validate:"dive,dive,gt=0"`
}

// Prices holds per-item sell multiplier overrides. Items without an entry
// fall back to the built-in multiplier tables.
type Prices struct {
	Multipliers map[string]float64 `json:"multipliers" validate:"dive,gt=0"`
}

// Emoji is the cosmetic display-glyph table. The economy core never reads
// it; it exists only so the presentation layer can render results.
type Emoji map[string]string

// Tables is one immutable snapshot of every admin-tunable economy table.
// Admin updates build a new Tables and swap it wholesale, so readers always
// observe a fully consistent set.
type Tables struct {
	Settings Settings `json:"settings"`
	Rates    Rates    `json:"rates"`
	Prices   Prices   `json:"prices"`
}

// DefaultWeights is the rarity weight vector used when a tier has no
// explicit configuration.
func DefaultWeights() Weights {
	return Weights{
		domain.RarityCommon:    50,
		domain.RarityUncommon:  30,
		domain.RarityRare:      15,
		domain.RarityEpic:      4,
		domain.RarityLegendary: 0.9,
		domain.RarityMythic:    0.1,
	}
}

// DefaultSettings returns the out-of-the-box cooldowns and bonus chances.
func DefaultSettings() Settings {
	return Settings{
		FishCooldownSeconds: 60,
		ChopCooldownSeconds: 60,
		GoldenBiteChance:    1.0,
		TimberBiteChance:    1.0,
	}
}

// DefaultTables returns a complete default snapshot.
func DefaultTables() Tables {
	return Tables{
		Settings: DefaultSettings(),
		Rates: Rates{
			RodTiers: map[string]Weights{},
			AxeTiers: map[string]Weights{},
		},
		Prices: Prices{Multipliers: map[string]float64{}},
	}
}

// CooldownSeconds returns the configured cooldown for an activity.
func (t *Tables) CooldownSeconds(activity domain.Activity) int64 {
	if activity == domain.ActivityWoodcutting {
		return int64(t.Settings.ChopCooldownSeconds)
	}
	return int64(t.Settings.FishCooldownSeconds)
}

// BonusChance returns the activity's bonus-event chance in percent.
func (t *Tables) BonusChance(activity domain.Activity) float64 {
	if activity == domain.ActivityWoodcutting {
		return t.Settings.TimberBiteChance
	}
	return t.Settings.GoldenBiteChance
}

// WeightsFor returns the weight vector for an equipment tier, copying so
// callers can boost freely, and falling back to DefaultWeights when the
// tier has no explicit entry.
func (t *Tables) WeightsFor(activity domain.Activity, tier string) Weights {
	tiers := t.Rates.RodTiers
	if activity == domain.ActivityWoodcutting {
		tiers = t.Rates.AxeTiers
	}
	base, ok := tiers[tier]
	if !ok || len(base) == 0 {
		return DefaultWeights()
	}
	out := make(Weights, len(base))
	for rarity, w := range base {
		out[rarity] = w
	}
	// Partial vectors inherit default weights for the missing rarities.
	for rarity, w := range DefaultWeights() {
		if _, ok := out[rarity]; !ok {
			out[rarity] = w
		}
	}
	return out
}

// ItemMultiplier returns the sell multiplier for an item, preferring the
// admin-configured override over the built-in table.
func (t *Tables) ItemMultiplier(activity domain.Activity, item string) float64 {
	if m, ok := t.Prices.Multipliers[item]; ok {
		return m
	}
	return domain.ItemMultiplier(activity, item)
}
