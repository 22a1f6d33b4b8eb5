package domain

// Inventory holds item counts nested as activity -> rarity -> item -> count.
// Both activities use the same shape; callers must tolerate absent
// intermediate maps on read and should prune zero counts on write.
type Inventory map[Activity]map[Rarity]map[string]int

// NewInventory returns an inventory with both activity namespaces present.
func NewInventory() Inventory {
	inv := Inventory{}
	for _, a := range Activities {
		inv[a] = map[Rarity]map[string]int{}
	}
	return inv
}

// Add increments the count for an item, creating intermediate maps as needed.
func (inv Inventory) Add(activity Activity, rarity Rarity, item string, n int) {
	if inv[activity] == nil {
		inv[activity] = map[Rarity]map[string]int{}
	}
	if inv[activity][rarity] == nil {
		inv[activity][rarity] = map[string]int{}
	}
	inv[activity][rarity][item] += n
}

// Count returns how many of an item are held, zero when absent.
func (inv Inventory) Count(activity Activity, rarity Rarity, item string) int {
	return inv[activity][rarity][item]
}

// Remove decrements an item's count, clamped to what is held, and deletes
// the entry when it reaches zero. Returns how many were actually removed.
func (inv Inventory) Remove(activity Activity, rarity Rarity, item string, n int) int {
	held := inv.Count(activity, rarity, item)
	if held == 0 || n <= 0 {
		return 0
	}
	if n > held {
		n = held
	}
	remaining := held - n
	if remaining == 0 {
		delete(inv[activity][rarity], item)
		if len(inv[activity][rarity]) == 0 {
			delete(inv[activity], rarity)
		}
	} else {
		inv[activity][rarity][item] = remaining
	}
	return n
}

// TotalCount sums every count in one activity namespace.
func (inv Inventory) TotalCount(activity Activity) int {
	total := 0
	for _, items := range inv[activity] {
		for _, n := range items {
			total += n
		}
	}
	return total
}

// Prune drops zero and negative counts plus any emptied intermediate maps.
func (inv Inventory) Prune() {
	for activity, rarities := range inv {
		for rarity, items := range rarities {
			for item, n := range items {
				if n <= 0 {
					delete(items, item)
				}
			}
			if len(items) == 0 {
				delete(rarities, rarity)
			}
		}
		// Keep the activity namespace itself; loads expect it present.
		_ = activity
	}
}

// Clone returns a deep copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := Inventory{}
	for activity, rarities := range inv {
		out[activity] = map[Rarity]map[string]int{}
		for rarity, items := range rarities {
			out[activity][rarity] = map[string]int{}
			for item, n := range items {
				out[activity][rarity][item] = n
			}
		}
	}
	return out
}
