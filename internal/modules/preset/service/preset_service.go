package service

import (
	"context"

	"studytimer/internal/modules/preset/domain"
	presetout "studytimer/internal/modules/preset/port/out"
)

type PresetService struct {
	store presetout.PresetStore
}

func NewPresetService(store presetout.PresetStore) *PresetService {
	return &PresetService{store: store}
}

func (s *PresetService) List(ctx context.Context) (domain.List, error) {
	return s.store.Load(ctx)
}

// Save leaves the store unchanged when the list rejects p.
func (s *PresetService) Save(ctx context.Context, p domain.Preset, overwrite *int) (domain.Preset, int, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return domain.Preset{}, -1, err
	}
	next, idx, err := list.Save(p, overwrite)
	if err != nil {
		return domain.Preset{}, -1, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Preset{}, -1, err
	}
	return next[idx], idx, nil
}

func (s *PresetService) Delete(ctx context.Context, index int) (domain.Preset, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return domain.Preset{}, err
	}
	next, removed, err := list.Delete(index)
	if err != nil {
		return domain.Preset{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Preset{}, err
	}
	return removed, nil
}

func (s *PresetService) Get(ctx context.Context, ref string) (domain.Preset, int, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return domain.Preset{}, -1, err
	}
	idx, p, err := list.Find(ref)
	if err != nil {
		return domain.Preset{}, -1, err
	}
	return p, idx, nil
}

// Merge appends incoming presets up to the limit and reports how many were
// added and skipped.
func (s *PresetService) Merge(ctx context.Context, incoming []domain.Preset) (int, int, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return 0, 0, err
	}
	next, added, skipped := list.Merge(incoming)
	if added == 0 {
		return 0, skipped, nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return 0, 0, err
	}
	return added, skipped, nil
}
