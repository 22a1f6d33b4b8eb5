package economy

import (
	"fmt"

	"github.com/brinepool/gatherbot/internal/domain"
)

// UpgradeMaxLevel caps every leveled upgrade.
const UpgradeMaxLevel = 10

// upgradeBaseCosts is the level-0 cost per upgrade key; each level doubles.
var upgradeBaseCosts = map[string]int{
	domain.UpgradeHookSharpness:  300,
	domain.UpgradeLineStrength:   400,
	domain.UpgradeBladeSharpness: 300,
	domain.UpgradeHandleStrength: 400,
}

// KnownUpgrade reports whether key names a purchasable upgrade.
func KnownUpgrade(key string) bool {
	_, ok := upgradeBaseCosts[key]
	return ok
}

// UpgradeCost returns the cost of buying the next level for an upgrade:
// baseCost * 2^currentLevel. ok is false at or above max level. A pure
// function of key and level.
func UpgradeCost(key string, currentLevel int) (cost int, ok bool, err error) {
	base, known := upgradeBaseCosts[key]
	if !known {
		return 0, false, fmt.Errorf("%w: %s", domain.ErrUnknownUpgradeKey, key)
	}
	if currentLevel >= UpgradeMaxLevel {
		return 0, false, nil
	}
	return base << currentLevel, true, nil
}

// PurchaseTierUpgrade advances one equipment line by exactly one tier,
// debiting the fixed cost. The record is untouched on rejection.
func PurchaseTierUpgrade(rec *domain.UserRecord, line domain.EquipmentLine) (domain.PurchaseReceipt, error) {
	next, cost, ok := NextTier(line, rec.EquipmentFor(line).Tier)
	if !ok {
		return domain.PurchaseReceipt{}, fmt.Errorf("%w: %s", domain.ErrMaxTierReached, rec.EquipmentFor(line).Tier)
	}
	if rec.Currency < cost {
		return domain.PurchaseReceipt{}, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, cost, rec.Currency)
	}

	rec.Currency -= cost
	eq := rec.EquipmentFor(line)
	eq.Tier = next
	eq.Level++

	return domain.PurchaseReceipt{
		Name:    next,
		Cost:    cost,
		NewTier: next,
		Balance: rec.Currency,
	}, nil
}

// PurchaseLeveledUpgrade buys the next level of a passive upgrade,
// debiting the exponential cost. The record is untouched on rejection.
func PurchaseLeveledUpgrade(rec *domain.UserRecord, key string) (domain.PurchaseReceipt, error) {
	level := rec.UpgradeLevel(key)
	cost, ok, err := UpgradeCost(key, level)
	if err != nil {
		return domain.PurchaseReceipt{}, err
	}
	if !ok {
		return domain.PurchaseReceipt{}, fmt.Errorf("%w: %s is level %d", domain.ErrMaxLevelReached, key, level)
	}
	if rec.Currency < cost {
		return domain.PurchaseReceipt{}, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, cost, rec.Currency)
	}

	rec.Currency -= cost
	rec.Upgrades[key] = level + 1

	return domain.PurchaseReceipt{
		Name:     key,
		Cost:     cost,
		NewLevel: level + 1,
		Balance:  rec.Currency,
	}, nil
}
