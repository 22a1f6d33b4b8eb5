package gameconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/utils"
)

// Config file names within the config directory.
const (
	settingsFile = "settings.json"
	ratesFile    = "rates.json"
	pricesFile   = "prices.json"
	emojiFile    = "emoji.json"
)

// Store owns the admin-mutable configuration tables. Reads are lock-free
// snapshot loads; writers validate, persist to disk, then swap the whole
// snapshot so readers never see a half-applied table.
type Store struct {
	dir      string
	validate *validator.Validate

	tables atomic.Pointer[Tables]
	emoji  atomic.Pointer[Emoji]

	// Serializes writers; readers never take it.
	mu sync.Mutex
}

// Load builds a Store from the JSON files in dir, writing defaults for any
// file that does not exist yet.
func Load(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir %s: %w", dir, err)
	}

	s := &Store{dir: dir, validate: validator.New()}

	tables := DefaultTables()
	if err := loadOrInit(filepath.Join(dir, settingsFile), &tables.Settings); err != nil {
		return nil, err
	}
	if err := loadOrInit(filepath.Join(dir, ratesFile), &tables.Rates); err != nil {
		return nil, err
	}
	if err := loadOrInit(filepath.Join(dir, pricesFile), &tables.Prices); err != nil {
		return nil, err
	}
	if err := s.validateTables(&tables); err != nil {
		return nil, fmt.Errorf("config dir %s holds invalid tables: %w", dir, err)
	}

	emoji := Emoji{}
	if err := loadOrInit(filepath.Join(dir, emojiFile), &emoji); err != nil {
		return nil, err
	}

	s.tables.Store(&tables)
	s.emoji.Store(&emoji)
	return s, nil
}

// loadOrInit reads path into target, creating the file from target's
// current (default) value when it does not exist.
func loadOrInit(path string, target interface{}) error {
	err := utils.LoadJSON(path, target)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return utils.SaveJSONAtomic(path, target)
	}
	return err
}

// Snapshot returns the current immutable tables. Callers must not mutate
// the returned value.
func (s *Store) Snapshot() *Tables {
	return s.tables.Load()
}

// EmojiTable returns a copy of the current cosmetic glyph table. The copy
// is safe to mutate and hand back to ReplaceEmoji.
func (s *Store) EmojiTable() Emoji {
	current := *s.emoji.Load()
	out := make(Emoji, len(current))
	for k, v := range current {
		out[k] = v
	}
	return out
}

// ReplaceSettings validates and installs a new settings blob.
func (s *Store) ReplaceSettings(settings Settings) error {
	return s.replace(func(t *Tables) error {
		t.Settings = settings
		return nil
	})
}

// ReplaceRates validates and installs a new rates blob.
func (s *Store) ReplaceRates(rates Rates) error {
	return s.replace(func(t *Tables) error {
		if rates.RodTiers == nil {
			rates.RodTiers = map[string]Weights{}
		}
		if rates.AxeTiers == nil {
			rates.AxeTiers = map[string]Weights{}
		}
		t.Rates = rates
		return nil
	})
}

// ReplacePrices validates and installs a new sell-price blob.
func (s *Store) ReplacePrices(prices Prices) error {
	return s.replace(func(t *Tables) error {
		if prices.Multipliers == nil {
			prices.Multipliers = map[string]float64{}
		}
		t.Prices = prices
		return nil
	})
}

// ReplaceEmoji installs a new cosmetic glyph table. No economy validation;
// the core never reads this blob.
func (s *Store) ReplaceEmoji(emoji Emoji) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emoji == nil {
		emoji = Emoji{}
	}
	if err := utils.SaveJSONAtomic(filepath.Join(s.dir, emojiFile), emoji); err != nil {
		return err
	}
	s.emoji.Store(&emoji)
	return nil
}

// replace builds the next snapshot from the current one, validates it,
// persists the changed files and swaps the pointer.
func (s *Store) replace(mutate func(*Tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.tables.Load()
	if err := mutate(&next); err != nil {
		return err
	}
	if err := s.validateTables(&next); err != nil {
		return err
	}
	if err := s.persist(&next); err != nil {
		return err
	}
	s.tables.Store(&next)
	return nil
}

func (s *Store) validateTables(t *Tables) error {
	if err := s.validate.Struct(t.Settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	for tier, weights := range t.Rates.RodTiers {
		if err := validateWeights(weights); err != nil {
			return fmt.Errorf("invalid rod tier %q: %w", tier, err)
		}
	}
	for tier, weights := range t.Rates.AxeTiers {
		if err := validateWeights(weights); err != nil {
			return fmt.Errorf("invalid axe tier %q: %w", tier, err)
		}
	}
	for item, m := range t.Prices.Multipliers {
		if m <= 0 {
			return fmt.Errorf("invalid price multiplier for %q: %v", item, m)
		}
	}
	return nil
}

func validateWeights(w Weights) error {
	for rarity, weight := range w {
		if !domain.IsValidRarity(string(rarity)) {
			return fmt.Errorf("unknown rarity %q", rarity)
		}
		if weight <= 0 {
			return fmt.Errorf("weight for %s must be positive, got %v", rarity, weight)
		}
	}
	return nil
}

func (s *Store) persist(t *Tables) error {
	if err := utils.SaveJSONAtomic(filepath.Join(s.dir, settingsFile), t.Settings); err != nil {
		return err
	}
	if err := utils.SaveJSONAtomic(filepath.Join(s.dir, ratesFile), t.Rates); err != nil {
		return err
	}
	return utils.SaveJSONAtomic(filepath.Join(s.dir, pricesFile), t.Prices)
}
