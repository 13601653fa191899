package service

import (
	"context"

	"studytimer/internal/modules/grade/domain"
	gradeout "studytimer/internal/modules/grade/port/out"
	"studytimer/internal/platform/clock"
)

type GradeService struct {
	clock clock.Clock
	store gradeout.GradeStore
}

func NewGradeService(clk clock.Clock, store gradeout.GradeStore) *GradeService {
	return &GradeService{clock: clk, store: store}
}

// Add appends a grade stamped with the current time and returns its index.
func (s *GradeService) Add(ctx context.Context, value float64) (domain.Entry, int, error) {
	entry, err := domain.NewEntry(value, s.clock.Now())
	if err != nil {
		return domain.Entry{}, 0, err
	}
	entries, err := s.store.Load(ctx)
	if err != nil {
		return domain.Entry{}, 0, err
	}
	entries = append(entries, entry)
	if err := s.store.Save(ctx, entries); err != nil {
		return domain.Entry{}, 0, err
	}
	return entry, len(entries) - 1, nil
}

func (s *GradeService) List(ctx context.Context) ([]domain.Entry, error) {
	return s.store.Load(ctx)
}
