package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinepool/gatherbot/internal/concurrency"
	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/store"
)

func newServiceFixture(t *testing.T) (Service, *store.FileStore, *gameconfig.Store) {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cfg, err := gameconfig.Load(t.TempDir())
	require.NoError(t, err)
	return NewService(fs, concurrency.NewKeyedLocks(), cfg), fs, cfg
}

func TestServicePurchaseTierUpgradePersists(t *testing.T) {
	svc, fs, _ := newServiceFixture(t)
	ctx := context.Background()

	rec, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	rec.Currency = 600
	require.NoError(t, fs.Save(ctx, "u1", rec))

	receipt, err := svc.PurchaseTierUpgrade(ctx, "u1", "alice", domain.LineRod)
	require.NoError(t, err)
	assert.Equal(t, "Speedster Rod", receipt.NewTier)

	stored, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Speedster Rod", stored.Rod.Tier)
	assert.Equal(t, 100, stored.Currency)
}

func TestServiceRejectionDoesNotPersist(t *testing.T) {
	svc, fs, _ := newServiceFixture(t)
	ctx := context.Background()

	_, err := svc.PurchaseLeveledUpgrade(ctx, "u1", "alice", domain.UpgradeHookSharpness)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	stored, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Currency)
	assert.Equal(t, 0, stored.UpgradeLevel(domain.UpgradeHookSharpness))
}

func TestServiceSellUsesConfiguredPrices(t *testing.T) {
	svc, fs, cfg := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, cfg.ReplacePrices(gameconfig.Prices{
		Multipliers: map[string]float64{"cod": 4.0},
	}))

	rec, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	rec.Inventory.Add(domain.ActivityFishing, domain.RarityCommon, "cod", 2)
	require.NoError(t, fs.Save(ctx, "u1", rec))

	receipt, err := svc.Sell(ctx, "u1", "alice", domain.ActivityFishing, SellSelection{Item: "cod"})
	require.NoError(t, err)
	assert.Equal(t, 80, receipt.TotalValue) // 2 * floor(10 * 4.0)

	stored, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 80, stored.Currency)
	assert.Equal(t, 0, stored.Inventory.TotalCount(domain.ActivityFishing))
}

func TestServiceInventoryValueReadOnly(t *testing.T) {
	svc, fs, _ := newServiceFixture(t)
	ctx := context.Background()

	rec, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	rec.Inventory.Add(domain.ActivityWoodcutting, domain.RarityCommon, "oak", 3)
	require.NoError(t, fs.Save(ctx, "u1", rec))

	total, err := svc.InventoryValue(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	stored, err := fs.Load(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Currency)
	assert.Equal(t, 3, stored.Inventory.TotalCount(domain.ActivityWoodcutting))
}

func TestServiceProfileCreatesUserLazily(t *testing.T) {
	svc, _, _ := newServiceFixture(t)

	rec, err := svc.Profile(context.Background(), "newbie", "nelly")
	require.NoError(t, err)
	assert.Equal(t, "newbie", rec.UserID)
	assert.Equal(t, "nelly", rec.Username)
	assert.Equal(t, domain.StarterRodTier, rec.Rod.Tier)
}

func TestShopCatalogCoversAllUpgradeKeys(t *testing.T) {
	catalog := ShopCatalog()
	require.Len(t, catalog, 4)

	keys := make([]string, 0, len(catalog))
	for _, item := range catalog {
		keys = append(keys, item.Key)
		assert.True(t, KnownUpgrade(item.Key), "catalog key %s must be purchasable", item.Key)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Description)
	}
	assert.ElementsMatch(t, keys, []string{
		domain.UpgradeHookSharpness,
		domain.UpgradeLineStrength,
		domain.UpgradeBladeSharpness,
		domain.UpgradeHandleStrength,
	})
}

func TestServiceReadsWaitForUserLock(t *testing.T) {
	tests := []struct {
		name string
		call func(svc Service, ctx context.Context) error
	}{
		{"profile", func(svc Service, ctx context.Context) error {
			_, err := svc.Profile(ctx, "u1", "bob")
			return err
		}},
		{"inventory value", func(svc Service, ctx context.Context) error {
			_, err := svc.InventoryValue(ctx, "u1", "bob")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := store.NewFileStore(t.TempDir())
			require.NoError(t, err)
			cfg, err := gameconfig.Load(t.TempDir())
			require.NoError(t, err)
			locks := concurrency.NewKeyedLocks()
			svc := NewService(fs, locks, cfg)
			ctx := context.Background()

			locks.Acquire("u1")

			done := make(chan error, 1)
			go func() {
				done <- tt.call(svc, ctx)
			}()

			select {
			case <-done:
				t.Fatal("read completed while another update held the user lock")
			case <-time.After(50 * time.Millisecond):
			}

			locks.Release("u1")
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("read never acquired the released lock")
			}
		})
	}
}
