package domain

// ActionResult is the outcome of one fish or chop attempt. A cooldown
// rejection is a normal outcome, not an error: Success is false,
// OnCooldown is true and RemainingSeconds carries the wait.
type ActionResult struct {
	Activity         Activity `json:"activity"`
	Success          bool     `json:"success"`
	OnCooldown       bool     `json:"on_cooldown"`
	RemainingSeconds int64    `json:"remaining_seconds,omitempty"`
	Rarity           Rarity   `json:"rarity,omitempty"`
	Item             string   `json:"item,omitempty"`
	Value            int      `json:"value,omitempty"`
	BonusEvent       bool     `json:"bonus_event,omitempty"`
}

// SellReceipt summarizes a completed sell settlement.
type SellReceipt struct {
	TotalValue int `json:"total_value"`
	ItemsSold  int `json:"items_sold"`
}

// PurchaseReceipt summarizes a completed tier or upgrade purchase.
type PurchaseReceipt struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	NewLevel int    `json:"new_level,omitempty"`
	NewTier  string `json:"new_tier,omitempty"`
	Balance  int    `json:"balance"`
}

// LeaderboardEntry is one ranked row returned by the aggregator.
type LeaderboardEntry struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	Value    int    `json:"value"`
	Label    string `json:"label,omitempty"`
}
