package economy

import "github.com/brinepool/gatherbot/internal/domain"

// RodTiers is the ordered rod progression; index 0 is the starting tier.
var RodTiers = []string{
	"Starter Rod",
	"Speedster Rod",
	"Challenge Rod",
	"Legend Rod",
	"Rod of The Sea",
	"Yeti Rod",
	"Bingo Rod",
	"Bingo Rod Tier 2",
}

// AxeTiers is the ordered axe progression.
var AxeTiers = []string{
	"Starter Axe",
	"Speedster Axe",
	"Challenge Axe",
	"Legend Axe",
	"Axe of the Forest",
	"Yeti Axe",
	"Bingo Axe",
	"Bingo Axe Tier 2",
}

// RodCosts maps a rod tier to the cost of reaching it from its predecessor.
var RodCosts = map[string]int{
	"Speedster Rod":    500,
	"Challenge Rod":    2000,
	"Legend Rod":       8000,
	"Rod of The Sea":   30000,
	"Yeti Rod":         40000,
	"Bingo Rod":        60000,
	"Bingo Rod Tier 2": 100000,
}

// AxeCosts maps an axe tier to the cost of reaching it from its predecessor.
var AxeCosts = map[string]int{
	"Speedster Axe":     500,
	"Challenge Axe":     2000,
	"Legend Axe":        8000,
	"Axe of the Forest": 30000,
	"Yeti Axe":          40000,
	"Bingo Axe":         60000,
	"Bingo Axe Tier 2":  100000,
}

// Tiers returns the progression list for an equipment line.
func Tiers(line domain.EquipmentLine) []string {
	if line == domain.LineAxe {
		return AxeTiers
	}
	return RodTiers
}

// Costs returns the tier-cost table for an equipment line.
func Costs(line domain.EquipmentLine) map[string]int {
	if line == domain.LineAxe {
		return AxeCosts
	}
	return RodCosts
}

// TierIndex locates a tier name within its line's progression. Unknown or
// invalid names are treated as the starting tier.
func TierIndex(line domain.EquipmentLine, tier string) int {
	for i, name := range Tiers(line) {
		if name == tier {
			return i
		}
	}
	return 0
}

// NextTier returns the tier after current and its upgrade cost, or
// ok=false when current is already the final tier.
func NextTier(line domain.EquipmentLine, current string) (name string, cost int, ok bool) {
	tiers := Tiers(line)
	idx := TierIndex(line, current)
	if idx >= len(tiers)-1 {
		return "", 0, false
	}
	next := tiers[idx+1]
	return next, Costs(line)[next], true
}
