package domain

// EquipmentLine identifies one of the two upgradable tool lines.
type EquipmentLine string

const (
	LineRod EquipmentLine = "rod"
	LineAxe EquipmentLine = "axe"
)

// Starting tiers for freshly created users.
const (
	StarterRodTier = "Starter Rod"
	StarterAxeTier = "Starter Axe"
)

// Passive upgrade keys. Levels run 0..UpgradeMaxLevel.
const (
	UpgradeHookSharpness  = "hookSharpness"
	UpgradeLineStrength   = "lineStrength"
	UpgradeBladeSharpness = "bladeSharpness"
	UpgradeHandleStrength = "handleStrength"
)

// Equipment tracks one tool line's current tier and level counter.
type Equipment struct {
	Tier  string `json:"tier"`
	Level int    `json:"level"`
}

// Stats holds monotonic action counters and last-action timestamps
// (epoch seconds, zero meaning never acted).
type Stats struct {
	TotalCatches      int   `json:"totalCatches"`
	TotalChops        int   `json:"totalChops"`
	LastFishTimestamp int64 `json:"lastFishTimestamp"`
	LastChopTimestamp int64 `json:"lastChopTimestamp"`
}

// UserRecord is the durable per-user state. One record per distinct user,
// created lazily on first load and never deleted.
type UserRecord struct {
	UserID   string         `json:"user_id"`
	Username string         `json:"username"`
	Currency int            `json:"currency"`
	Rod      Equipment      `json:"rod"`
	Axe      Equipment      `json:"axe"`
	Upgrades map[string]int `json:"upgrades"`
	Inventory Inventory     `json:"inventory"`
	Stats    Stats          `json:"stats"`
}

// NewUserRecord returns the default record for a first-time user.
func NewUserRecord(userID, username string) *UserRecord {
	return &UserRecord{
		UserID:   userID,
		Username: username,
		Currency: 0,
		Rod:      Equipment{Tier: StarterRodTier, Level: 1},
		Axe:      Equipment{Tier: StarterAxeTier, Level: 1},
		Upgrades: map[string]int{},
		Inventory: NewInventory(),
		Stats:    Stats{},
	}
}

// Normalize fills defaults for fields missing from an older or partial
// persisted record. Called once at the storage boundary so the rest of the
// code can rely on every field being present.
func (u *UserRecord) Normalize() {
	if u.Rod.Tier == "" {
		u.Rod = Equipment{Tier: StarterRodTier, Level: 1}
	}
	if u.Axe.Tier == "" {
		u.Axe = Equipment{Tier: StarterAxeTier, Level: 1}
	}
	if u.Upgrades == nil {
		u.Upgrades = map[string]int{}
	}
	if u.Inventory == nil {
		u.Inventory = NewInventory()
	}
	for _, a := range Activities {
		if u.Inventory[a] == nil {
			u.Inventory[a] = map[Rarity]map[string]int{}
		}
	}
	if u.Currency < 0 {
		u.Currency = 0
	}
	u.Inventory.Prune()
}

// Clone returns a deep copy of the record.
func (u *UserRecord) Clone() *UserRecord {
	out := *u
	out.Upgrades = make(map[string]int, len(u.Upgrades))
	for k, v := range u.Upgrades {
		out.Upgrades[k] = v
	}
	out.Inventory = u.Inventory.Clone()
	return &out
}

// UpgradeLevel returns the level for an upgrade key, zero when absent.
func (u *UserRecord) UpgradeLevel(key string) int {
	return u.Upgrades[key]
}

// EquipmentFor returns a pointer to the equipment tracker for a line.
func (u *UserRecord) EquipmentFor(line EquipmentLine) *Equipment {
	if line == LineAxe {
		return &u.Axe
	}
	return &u.Rod
}

// TierFor returns the current tier name for the activity's tool line.
func (u *UserRecord) TierFor(activity Activity) string {
	if activity == ActivityWoodcutting {
		return u.Axe.Tier
	}
	return u.Rod.Tier
}

// LastAction returns the epoch second of the last action for the activity.
func (u *UserRecord) LastAction(activity Activity) int64 {
	if activity == ActivityWoodcutting {
		return u.Stats.LastChopTimestamp
	}
	return u.Stats.LastFishTimestamp
}

// SetLastAction records when the activity was last performed.
func (u *UserRecord) SetLastAction(activity Activity, ts int64) {
	if activity == ActivityWoodcutting {
		u.Stats.LastChopTimestamp = ts
	} else {
		u.Stats.LastFishTimestamp = ts
	}
}

// TotalActions returns the total-action counter for the activity.
func (u *UserRecord) TotalActions(activity Activity) int {
	if activity == ActivityWoodcutting {
		return u.Stats.TotalChops
	}
	return u.Stats.TotalCatches
}

// IncrementActions bumps the activity's total-action counter by one.
func (u *UserRecord) IncrementActions(activity Activity) {
	if activity == ActivityWoodcutting {
		u.Stats.TotalChops++
	} else {
		u.Stats.TotalCatches++
	}
}
