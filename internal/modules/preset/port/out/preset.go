package out

import (
	"context"

	"studytimer/internal/modules/preset/domain"
)

type PresetStore interface {
	Load(ctx context.Context) (domain.List, error)
	Save(ctx context.Context, presets domain.List) error
}

// PresetFile exchanges presets with a file outside the store.
type PresetFile interface {
	Write(ctx context.Context, path string, presets []domain.Preset) error
	Read(ctx context.Context, path string) ([]domain.Preset, error)
}
