package in

import (
	"context"

	"studytimer/internal/modules/preset/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PresetOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.PresetOutput, error)
	Delete(ctx context.Context, index int) (dto.PresetOutput, error)
	Get(ctx context.Context, ref string) (dto.PresetOutput, error)
	Export(ctx context.Context, path string) (dto.ExportOutput, error)
	Import(ctx context.Context, path string) (dto.ImportOutput, error)
}
