package activity

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

// Service runs the full attempt cycle: lock the user, load their record,
// resolve the roll, persist the mutation, report the result.
type Service interface {
	AttemptFish(ctx context.Context, userKey, username string) (domain.ActionResult, error)
	AttemptChop(ctx context.Context, userKey, username string) (domain.ActionResult, error)
}

type service struct {
	store   store.Store
	locks   *concurrency.KeyedLocks
	fishing *Resolver
	chopping *Resolver
}

// NewService creates the activity service with production resolvers.
func NewService(st store.Store, locks *concurrency.KeyedLocks, cfg *gameconfig.Store) Service {
	return &service{
		store:    st,
		locks:    locks,
		fishing:  NewResolver(FishingDefinition(), cfg),
		chopping: NewResolver(WoodcuttingDefinition(), cfg),
	}
}

func (s *service) AttemptFish(ctx context.Context, userKey, username string) (domain.ActionResult, error) {
	return s.attempt(ctx, s.fishing, userKey, username)
}

func (s *service) AttemptChop(ctx context.Context, userKey, username string) (domain.ActionResult, error) {
	return s.attempt(ctx, s.chopping, userKey, username)
}

// attempt serializes the read-modify-write cycle per user key. Either the
// whole cycle commits (mutation plus durable save) or nothing does.
func (s *service) attempt(ctx context.Context, resolver *Resolver, userKey, username string) (domain.ActionResult, error) {
	log := logger.FromContext(ctx)
	act := resolver.def.Activity

	s.locks.Acquire(userKey)
	defer s.locks.Release(userKey)

	rec, err := s.store.Load(ctx, userKey, username)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("failed to load user %s: %w", userKey, err)
	}

	result := resolver.Attempt(rec)
	if !result.Success {
		log.Info("Attempt rejected on cooldown", "activity", act, "userKey", userKey, "remaining", result.RemainingSeconds)
		metrics.CooldownRejections.WithLabelValues(string(act)).Inc()
		return result, nil
	}

	if err := s.store.Save(ctx, userKey, rec); err != nil {
		// The roll never happened as far as the caller is concerned.
		return domain.ActionResult{}, fmt.Errorf("failed to commit attempt for %s: %w", userKey, err)
	}

	metrics.ActionsResolved.WithLabelValues(string(act), string(result.Rarity)).Inc()
	if result.BonusEvent {
		metrics.BonusEvents.WithLabelValues(string(act)).Inc()
	}
	log.Info("Attempt resolved",
		"activity", act,
		"userKey", userKey,
		"rarity", result.Rarity,
		"item", result.Item,
		"value", result.Value,
		"bonus", result.BonusEvent,
	)
	return result, nil
}
