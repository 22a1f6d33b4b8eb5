// Package leaderboard ranks every persisted user by a chosen metric.
// The scan is read-only and takes no per-user locks; a slightly stale view
// of users mid-write elsewhere is acceptable, so computed rankings are
// cached briefly.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/logger"
	"github.com/brinepool/gatherbot/internal/store"
)

// Metric selects what a ranking is ordered by.
type Metric string

const (
	MetricCurrency Metric = "currency"
	MetricCatches  Metric = "catches"
	MetricRodTier  Metric = "rod_tier"
)

// DefaultLimit is used when a caller asks for zero or negative entries.
const DefaultLimit = 10

// cacheTTL bounds how stale a served ranking may be.
const cacheTTL = 30 * time.Second

// ParseMetric maps a user-supplied string to a Metric.
func ParseMetric(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricCurrency, MetricCatches, MetricRodTier:
		return Metric(s), true
	default:
		return "", false
	}
}

// Service computes ranked leaderboards.
type Service interface {
	Rank(ctx context.Context, metric Metric, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	store store.Store
	cache *expirable.LRU[Metric, []domain.LeaderboardEntry]
}

// NewService creates the aggregator.
func NewService(st store.Store) Service {
	return &service{
		store: st,
		cache: expirable.NewLRU[Metric, []domain.LeaderboardEntry](len(allMetrics), nil, cacheTTL),
	}
}

var allMetrics = []Metric{MetricCurrency, MetricCatches, MetricRodTier}

// Rank returns up to limit entries sorted descending by the metric, ties
// kept in scan order (stable sort).
func (s *service) Rank(ctx context.Context, metric Metric, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries, ok := s.cache.Get(metric)
	if !ok {
		var err error
		entries, err = s.compute(ctx, metric)
		if err != nil {
			return nil, err
		}
		s.cache.Add(metric, entries)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *service) compute(ctx context.Context, metric Metric) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users for leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entry := domain.LeaderboardEntry{
			Username: rec.Username,
			UserID:   rec.UserID,
		}
		switch metric {
		case MetricCatches:
			entry.Value = rec.Stats.TotalCatches
		case MetricRodTier:
			entry.Value = economy.TierIndex(domain.LineRod, rec.Rod.Tier)
			entry.Label = rec.Rod.Tier
		default:
			entry.Value = rec.Currency
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	log.Debug("Computed leaderboard", "metric", metric, "users", len(entries))
	return entries, nil
}
