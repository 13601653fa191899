package out

import (
	"context"

	"studytimer/internal/modules/grade/domain"
)

type GradeStore interface {
	Load(ctx context.Context) ([]domain.Entry, error)
	Save(ctx context.Context, entries []domain.Entry) error
}
