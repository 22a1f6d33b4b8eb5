package domain

// Rarity ranks how desirable a catch or harvest is.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities lists every rarity from most to least frequent.
// Weighted rolls iterate this slice so roll order is deterministic.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// BaseValues is the fixed reward schedule per rarity. Sell prices may be
// tuned at runtime but roll value always comes from this table.
var BaseValues = map[Rarity]int{
	RarityCommon:    10,
	RarityUncommon:  30,
	RarityRare:      75,
	RarityEpic:      200,
	RarityLegendary: 500,
	RarityMythic:    1500,
}

// IsValidRarity reports whether s names one of the six rarities.
func IsValidRarity(s string) bool {
	for _, r := range Rarities {
		if string(r) == s {
			return true
		}
	}
	return false
}
