package economy

import (
	"context"
	"fmt"

	"github.com/brinepool/gatherbot/internal/concurrency"
	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/logger"
	"github.com/brinepool/gatherbot/internal/metrics"
	"github.com/brinepool/gatherbot/internal/store"
)

// Service wraps the pure economy calculators with the per-user
// load-mutate-save cycle.
type Service interface {
	PurchaseTierUpgrade(ctx context.Context, userKey, username string, line domain.EquipmentLine) (domain.PurchaseReceipt, error)
	PurchaseLeveledUpgrade(ctx context.Context, userKey, username, upgradeKey string) (domain.PurchaseReceipt, error)
	Sell(ctx context.Context, userKey, username string, activity domain.Activity, sel SellSelection) (domain.SellReceipt, error)
	InventoryValue(ctx context.Context, userKey, username string) (int, error)
	Profile(ctx context.Context, userKey, username string) (*domain.UserRecord, error)
}

type service struct {
	store store.Store
	locks *concurrency.KeyedLocks
	cfg   *gameconfig.Store
}

// NewService creates the economy service.
func NewService(st store.Store, locks *concurrency.KeyedLocks, cfg *gameconfig.Store) Service {
	return &service{store: st, locks: locks, cfg: cfg}
}

func (s *service) PurchaseTierUpgrade(ctx context.Context, userKey, username string, line domain.EquipmentLine) (domain.PurchaseReceipt, error) {
	var receipt domain.PurchaseReceipt
	err := s.withUser(ctx, userKey, username, func(rec *domain.UserRecord) (bool, error) {
		var err error
		receipt, err = PurchaseTierUpgrade(rec, line)
		return err == nil, err
	})
	if err == nil {
		metrics.UpgradesPurchased.WithLabelValues("tier").Inc()
		logger.FromContext(ctx).Info("Tier upgrade purchased", "userKey", userKey, "line", line, "tier", receipt.NewTier, "cost", receipt.Cost)
	}
	return receipt, err
}

func (s *service) PurchaseLeveledUpgrade(ctx context.Context, userKey, username, upgradeKey string) (domain.PurchaseReceipt, error) {
	var receipt domain.PurchaseReceipt
	err := s.withUser(ctx, userKey, username, func(rec *domain.UserRecord) (bool, error) {
		var err error
		receipt, err = PurchaseLeveledUpgrade(rec, upgradeKey)
		return err == nil, err
	})
	if err == nil {
		metrics.UpgradesPurchased.WithLabelValues("leveled").Inc()
		logger.FromContext(ctx).Info("Leveled upgrade purchased", "userKey", userKey, "upgrade", upgradeKey, "level", receipt.NewLevel, "cost", receipt.Cost)
	}
	return receipt, err
}

func (s *service) Sell(ctx context.Context, userKey, username string, activity domain.Activity, sel SellSelection) (domain.SellReceipt, error) {
	var receipt domain.SellReceipt
	err := s.withUser(ctx, userKey, username, func(rec *domain.UserRecord) (bool, error) {
		var err error
		receipt, err = Sell(rec, s.cfg.Snapshot(), activity, sel)
		return err == nil, err
	})
	if err == nil {
		metrics.ItemsSold.WithLabelValues(string(activity)).Add(float64(receipt.ItemsSold))
		metrics.CurrencyEarned.WithLabelValues("sell").Add(float64(receipt.TotalValue))
		logger.FromContext(ctx).Info("Items sold", "userKey", userKey, "activity", activity, "count", receipt.ItemsSold, "value", receipt.TotalValue)
	}
	return receipt, err
}

func (s *service) InventoryValue(ctx context.Context, userKey, username string) (int, error) {
	var total int
	err := s.withUser(ctx, userKey, username, func(rec *domain.UserRecord) (bool, error) {
		total = InventoryValue(rec, s.cfg.Snapshot())
		return false, nil
	})
	return total, err
}

func (s *service) Profile(ctx context.Context, userKey, username string) (*domain.UserRecord, error) {
	var out *domain.UserRecord
	err := s.withUser(ctx, userKey, username, func(rec *domain.UserRecord) (bool, error) {
		out = rec
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withUser runs fn inside the user's exclusive section, saving only when
// fn reports a committed mutation. Business-rule rejections leave the
// stored record untouched. Read paths go through here too: Load can
// persist (create-on-miss, username refresh), so it must not race a
// concurrent mutation on the same key.
func (s *service) withUser(ctx context.Context, userKey, username string, fn func(rec *domain.UserRecord) (bool, error)) error {
	s.locks.Acquire(userKey)
	defer s.locks.Release(userKey)

	rec, err := s.store.Load(ctx, userKey, username)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", userKey, err)
	}

	mutated, err := fn(rec)
	if err != nil {
		return err
	}
	if !mutated {
		return nil
	}

	if err := s.store.Save(ctx, userKey, rec); err != nil {
		return fmt.Errorf("failed to commit mutation for %s: %w", userKey, err)
	}
	return nil
}
