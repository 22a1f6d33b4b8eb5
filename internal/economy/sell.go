package economy

import (
	"fmt"

	"github.com/brinepool/gatherbot/internal/domain"
)

// Pricer resolves the per-item value multiplier used for settlements.
// gameconfig.Tables satisfies it with admin-tunable overrides.
type Pricer interface {
	ItemMultiplier(activity domain.Activity, item string) float64
}

// BasePricing values items from the built-in multiplier tables only.
type BasePricing struct{}

func (BasePricing) ItemMultiplier(activity domain.Activity, item string) float64 {
	return domain.ItemMultiplier(activity, item)
}

// unitValue is the settlement price of one item: floor(base * multiplier).
func unitValue(p Pricer, activity domain.Activity, rarity domain.Rarity, item string) int {
	return int(float64(domain.BaseValues[rarity]) * p.ItemMultiplier(activity, item))
}

// SellSelection narrows what Sell settles. Zero values widen the scope:
// an empty Item with a Rarity sells the whole rarity, an empty Item and
// Rarity sells the whole activity. Amount 0 means everything selected.
type SellSelection struct {
	Rarity domain.Rarity
	Item   string
	Amount int
}

// Sell settles the selected slice of one activity's inventory: items are
// removed and currency credited as one mutation, never overselling (the
// amount is clamped to what is held) and never retaining zero-count
// entries. The record is untouched when the selection matches nothing.
func Sell(rec *domain.UserRecord, p Pricer, activity domain.Activity, sel SellSelection) (domain.SellReceipt, error) {
	if sel.Amount < 0 {
		return domain.SellReceipt{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	if sel.Item != "" {
		return sellItem(rec, p, activity, sel)
	}
	if sel.Rarity != "" {
		return sellRarity(rec, p, activity, sel.Rarity)
	}
	return sellAll(rec, p, activity)
}

func sellItem(rec *domain.UserRecord, p Pricer, activity domain.Activity, sel SellSelection) (domain.SellReceipt, error) {
	rarity := sel.Rarity
	if rarity == "" {
		found, ok := domain.ItemRarity(activity, sel.Item)
		if !ok {
			return domain.SellReceipt{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, sel.Item)
		}
		rarity = found
	}

	held := rec.Inventory.Count(activity, rarity, sel.Item)
	if held == 0 {
		return domain.SellReceipt{}, fmt.Errorf("%w: no %s held", domain.ErrNothingToSell, sel.Item)
	}

	toSell := held
	if sel.Amount > 0 && sel.Amount < held {
		toSell = sel.Amount
	}

	removed := rec.Inventory.Remove(activity, rarity, sel.Item, toSell)
	value := unitValue(p, activity, rarity, sel.Item) * removed
	rec.Currency += value

	return domain.SellReceipt{TotalValue: value, ItemsSold: removed}, nil
}

func sellRarity(rec *domain.UserRecord, p Pricer, activity domain.Activity, rarity domain.Rarity) (domain.SellReceipt, error) {
	items := rec.Inventory[activity][rarity]
	if len(items) == 0 {
		return domain.SellReceipt{}, fmt.Errorf("%w: no %s items held", domain.ErrNothingToSell, rarity)
	}

	receipt := domain.SellReceipt{}
	for item, count := range items {
		receipt.TotalValue += unitValue(p, activity, rarity, item) * count
		receipt.ItemsSold += count
	}
	delete(rec.Inventory[activity], rarity)
	rec.Currency += receipt.TotalValue
	return receipt, nil
}

func sellAll(rec *domain.UserRecord, p Pricer, activity domain.Activity) (domain.SellReceipt, error) {
	receipt := domain.SellReceipt{}
	for rarity, items := range rec.Inventory[activity] {
		for item, count := range items {
			receipt.TotalValue += unitValue(p, activity, rarity, item) * count
			receipt.ItemsSold += count
		}
	}
	if receipt.ItemsSold == 0 {
		return domain.SellReceipt{}, fmt.Errorf("%w: inventory is empty", domain.ErrNothingToSell)
	}

	rec.Inventory[activity] = map[domain.Rarity]map[string]int{}
	rec.Currency += receipt.TotalValue
	return receipt, nil
}

// InventoryValue sums the settlement value of every populated slot across
// both activities without mutating anything.
func InventoryValue(rec *domain.UserRecord, p Pricer) int {
	total := 0
	for activity, rarities := range rec.Inventory {
		for rarity, items := range rarities {
			for item, count := range items {
				total += unitValue(p, activity, rarity, item) * count
			}
		}
	}
	return total
}
