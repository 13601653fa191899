package out

import (
	"context"

	"studytimer/internal/modules/stats/domain"
)

type AggregateStore interface {
	Load(ctx context.Context) (domain.Aggregates, error)
	Save(ctx context.Context, aggregates domain.Aggregates) error
}

// CompletionProjector keeps a queryable history of completions. The
// aggregate keys stay the source of truth for totals.
type CompletionProjector interface {
	Append(ctx context.Context, completion domain.Completion) error
	Recent(ctx context.Context, limit int) ([]domain.Completion, error)
}

type Journal interface {
	Write(ctx context.Context, completion domain.Completion, aggregates domain.Aggregates) (string, error)
}
