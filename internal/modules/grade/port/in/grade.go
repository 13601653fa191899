package in

import (
	"context"

	"studytimer/internal/modules/grade/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error)
	List(ctx context.Context) ([]dto.EntryOutput, error)
	Chart(ctx context.Context, input dto.ChartInput) (dto.ChartOutput, error)
}
