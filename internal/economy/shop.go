package economy

import "github.com/brinepool/gatherbot/internal/domain"

// ShopItem describes one purchasable leveled upgrade for display.
type ShopItem struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxLevel    int    `json:"max_level"`
}

// ShopCatalog lists the leveled upgrades in a stable display order.
func ShopCatalog() []ShopItem {
	return []ShopItem{
		{
			Key:         domain.UpgradeHookSharpness,
			Name:        "Hook Sharpness",
			Description: "Increases chances of catching Rare+ fish",
			MaxLevel:    UpgradeMaxLevel,
		},
		{
			Key:         domain.UpgradeLineStrength,
			Name:        "Line Strength",
			Description: "Increases chances of catching Epic+ fish",
			MaxLevel:    UpgradeMaxLevel,
		},
		{
			Key:         domain.UpgradeBladeSharpness,
			Name:        "Blade Sharpness",
			Description: "Increases chances of harvesting Rare+ logs",
			MaxLevel:    UpgradeMaxLevel,
		},
		{
			Key:         domain.UpgradeHandleStrength,
			Name:        "Handle Strength",
			Description: "Increases chances of harvesting Epic+ logs",
			MaxLevel:    UpgradeMaxLevel,
		},
	}
}
