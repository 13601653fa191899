package in

import (
	"context"

	"studytimer/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StatusOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Resume(ctx context.Context, input dto.ResumeInput) (dto.StatusOutput, error)
	Restore(ctx context.Context) (dto.RestoreOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	Status(ctx context.Context) dto.StatusOutput
	PeekSession(ctx context.Context) (dto.SessionOutput, error)
	DiscardSession(ctx context.Context) error
}
