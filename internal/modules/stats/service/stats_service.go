package service

import (
	"context"
	"fmt"

	"studytimer/internal/modules/stats/domain"
	statsout "studytimer/internal/modules/stats/port/out"
	"studytimer/internal/platform/clock"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/id"
)

type StatsService struct {
	clock clock.Clock
	idGen id.Generator
	store statsout.AggregateStore
}

func NewStatsService(clock clock.Clock, idGen id.Generator, store statsout.AggregateStore) *StatsService {
	return &StatsService{clock: clock, idGen: idGen, store: store}
}

func (s *StatsService) Record(ctx context.Context, minutes int) (domain.Completion, domain.Aggregates, domain.Resets, error) {
	if minutes <= 0 {
		return domain.Completion{}, domain.Aggregates{}, domain.Resets{}, fmt.Errorf("%w: minutes must be positive", apperrors.ErrInvalidInput)
	}
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Completion{}, domain.Aggregates{}, domain.Resets{}, err
	}
	now := s.clock.Now()
	next, resets := current.Record(minutes, now)
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Completion{}, domain.Aggregates{}, domain.Resets{}, err
	}
	completion := domain.Completion{ID: s.idGen.New(), StudyMinutes: minutes, CompletedAt: now}
	return completion, next, resets, nil
}

func (s *StatsService) Current(ctx context.Context) (domain.Aggregates, error) {
	return s.store.Load(ctx)
}
