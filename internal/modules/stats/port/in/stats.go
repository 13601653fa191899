package in

import (
	"context"

	"studytimer/internal/modules/stats/dto"
)

type Usecase interface {
	RecordStudyCompletion(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error)
}
