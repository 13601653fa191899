package in

import (
	"context"

	timerdto "studytimer/internal/modules/timer/dto"
	timerin "studytimer/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, studyMinutes, breakMinutes int) (timerdto.StatusOutput, error) {
	return h.usecase.Start(ctx, timerdto.StartInput{StudyMinutes: studyMinutes, BreakMinutes: breakMinutes})
}

func (h CLIHandler) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

// ResumeRestored resumes the status returned by Restore.
func (h CLIHandler) ResumeRestored(ctx context.Context, restored timerdto.StatusOutput) (timerdto.StatusOutput, error) {
	return h.usecase.Resume(ctx, timerdto.ResumeInput{
		Phase:            restored.Phase,
		RemainingSeconds: restored.RemainingSeconds,
		StudyMinutes:     restored.StudyMinutes,
		BreakMinutes:     restored.BreakMinutes,
	})
}

func (h CLIHandler) Restore(ctx context.Context) (timerdto.RestoreOutput, error) {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (timerdto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) Status(ctx context.Context) timerdto.StatusOutput {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) ShowSession(ctx context.Context) (timerdto.SessionOutput, error) {
	return h.usecase.PeekSession(ctx)
}

func (h CLIHandler) ClearSession(ctx context.Context) error {
	return h.usecase.DiscardSession(ctx)
}
