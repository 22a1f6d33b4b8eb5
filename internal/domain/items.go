package domain

// FishTypes maps each rarity to the fish that can be rolled at that rarity.
var FishTypes = map[Rarity][]string{
	RarityCommon:    {"cod", "herring"},
	RarityUncommon:  {"trout", "bass"},
	RarityRare:      {"shrimp", "puffer"},
	RarityEpic:      {"bloodborn", "candy"},
	RarityLegendary: {"spookster"},
	RarityMythic:    {"priceless"},
}

// LogTypes maps each rarity to the logs that can be rolled at that rarity.
var LogTypes = map[Rarity][]string{
	RarityCommon:    {"oak", "birch"},
	RarityUncommon:  {"maple", "ash"},
	RarityRare:      {"spruce", "pine"},
	RarityEpic:      {"bloodwood", "honeywood"},
	RarityLegendary: {"shadowbark"},
	RarityMythic:    {"eternal"},
}

// FishMultipliers adjusts an individual fish's value within its rarity.
// Items without an entry use 1.0.
var FishMultipliers = map[string]float64{
	"cod":     1.0,
	"herring": 0.8,
	"trout":   1.2,
	"bass":    1.0,
	"shrimp":  1.5,
	"puffer":  1.3,
}

// LogMultipliers adjusts an individual log's value within its rarity.
var LogMultipliers = map[string]float64{
	"oak":    1.0,
	"birch":  0.8,
	"maple":  1.2,
	"ash":    1.0,
	"spruce": 1.5,
	"pine":   1.3,
}

// ItemsByRarity returns the item table for the given activity.
func ItemsByRarity(activity Activity) map[Rarity][]string {
	if activity == ActivityWoodcutting {
		return LogTypes
	}
	return FishTypes
}

// ItemMultiplier returns the value multiplier for an item within an activity,
// defaulting to 1.0 when the item carries no explicit multiplier.
func ItemMultiplier(activity Activity, item string) float64 {
	table := FishMultipliers
	if activity == ActivityWoodcutting {
		table = LogMultipliers
	}
	if m, ok := table[item]; ok {
		return m
	}
	return 1.0
}

// ItemRarity looks up which rarity an item belongs to within an activity.
func ItemRarity(activity Activity, item string) (Rarity, bool) {
	for rarity, items := range ItemsByRarity(activity) {
		for _, name := range items {
			if name == item {
				return rarity, true
			}
		}
	}
	return "", false
}

// ItemValue computes the per-unit value of an item: floor(base * multiplier).
func ItemValue(activity Activity, rarity Rarity, item string) int {
	return int(float64(BaseValues[rarity]) * ItemMultiplier(activity, item))
}
