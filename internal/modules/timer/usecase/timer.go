package usecase

import (
	"context"
	"fmt"
	"log/slog"

	statsdto "studytimer/internal/modules/stats/dto"
	statsin "studytimer/internal/modules/stats/port/in"
	"studytimer/internal/modules/timer/domain"
	timerdto "studytimer/internal/modules/timer/dto"
	timerin "studytimer/internal/modules/timer/port/in"
	timerout "studytimer/internal/modules/timer/port/out"
	"studytimer/internal/modules/timer/service"
	"studytimer/internal/platform/logging"
)

// Interactor owns the single countdown of a process. It is not safe for
// concurrent use; the TUI update loop and the headless run loop each drive
// it from one goroutine.
type Interactor struct {
	timer       *domain.Timer
	persistence *service.PersistenceService
	recorder    statsin.Usecase
	alarm       timerout.Alarm
	logger      *slog.Logger

	// pending is a restored session waiting for the user to confirm it.
	pending     *domain.State
	resumed     bool
	restored    bool
	snapshotted bool
}

// NewInteractor wires the timer. recorder and alarm may be nil.
func NewInteractor(persistence *service.PersistenceService, recorder statsin.Usecase, alarm timerout.Alarm, logger *slog.Logger) timerin.Usecase {
	return &Interactor{
		timer:       domain.NewTimer(),
		persistence: persistence,
		recorder:    recorder,
		alarm:       alarm,
		logger:      logging.OrDefault(logger),
	}
}

func (i *Interactor) Start(_ context.Context, input timerdto.StartInput) (timerdto.StatusOutput, error) {
	started, err := i.timer.Start(input.StudyMinutes, input.BreakMinutes)
	if err != nil {
		return i.status(), err
	}
	if !started {
		i.logger.Debug("start ignored", "study", input.StudyMinutes, "break", input.BreakMinutes)
		return i.status(), nil
	}
	i.resumed = false
	i.pending = nil
	i.logger.Info("study started", "study", input.StudyMinutes, "break", input.BreakMinutes)
	return i.status(), nil
}

// Tick advances one second. A finished study phase is recorded before the
// alarm sounds; a recording failure is returned after the transition and the
// alarm have happened.
func (i *Interactor) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	done, ok := i.timer.Tick()
	if !ok {
		return timerdto.TickOutput{Status: i.status()}, nil
	}
	out := timerdto.TickOutput{Completed: true, FinishedPhase: string(done.Finished)}
	i.logger.Info("phase finished", "phase", done.Finished, "next", done.Next)

	var recordErr error
	if done.Finished == domain.PhaseStudy && i.recorder != nil {
		if _, err := i.recorder.RecordStudyCompletion(ctx, statsdto.RecordInput{Minutes: done.StudyMinutes}); err != nil {
			recordErr = fmt.Errorf("record study completion: %w", err)
		} else {
			out.RecordedMinutes = done.StudyMinutes
		}
	}
	if i.alarm != nil {
		i.alarm.Play()
	}
	out.Status = i.status()
	return out, recordErr
}

// Resume enters the given state directly. Snapshot skips a countdown that
// was entered this way.
func (i *Interactor) Resume(_ context.Context, input timerdto.ResumeInput) (timerdto.StatusOutput, error) {
	state := domain.State{
		Phase:            domain.Phase(input.Phase),
		RemainingSeconds: input.RemainingSeconds,
		StudyMinutes:     input.StudyMinutes,
		BreakMinutes:     input.BreakMinutes,
	}
	if err := i.timer.Resume(state); err != nil {
		return i.status(), err
	}
	i.resumed = true
	i.pending = nil
	i.logger.Info("session resumed", "phase", state.Phase, "remaining", state.RemainingSeconds)
	return i.status(), nil
}

// Restore consumes the persisted session once per process. The returned
// status describes the paused countdown; it is not running until Resume.
func (i *Interactor) Restore(ctx context.Context) (timerdto.RestoreOutput, error) {
	if i.restored {
		return timerdto.RestoreOutput{Status: i.status()}, nil
	}
	i.restored = true
	state, ok, err := i.persistence.Restore(ctx)
	if err != nil {
		return timerdto.RestoreOutput{Status: i.status()}, err
	}
	if !ok {
		return timerdto.RestoreOutput{Status: i.status()}, nil
	}
	i.pending = &state
	out := toStatus(state)
	out.Resumed = true
	return timerdto.RestoreOutput{Restored: true, Status: out}, nil
}

// Snapshot persists the countdown once per process, at quit. A restored
// session the user never confirmed is written back unchanged.
func (i *Interactor) Snapshot(ctx context.Context) (timerdto.SnapshotOutput, error) {
	if i.snapshotted {
		return timerdto.SnapshotOutput{Reason: "already snapshotted"}, nil
	}
	i.snapshotted = true

	state, resumed := i.timer.State(), i.resumed
	if !state.Active() && i.pending != nil {
		state, resumed = *i.pending, false
	}
	saved, reason, err := i.persistence.Snapshot(ctx, state, resumed)
	if err != nil {
		return timerdto.SnapshotOutput{}, err
	}
	if !saved {
		i.logger.Debug("snapshot skipped", "reason", reason)
	}
	return timerdto.SnapshotOutput{Saved: saved, Reason: reason}, nil
}

func (i *Interactor) Status(context.Context) timerdto.StatusOutput {
	return i.status()
}

func (i *Interactor) PeekSession(ctx context.Context) (timerdto.SessionOutput, error) {
	state, err := i.persistence.Peek(ctx)
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return timerdto.SessionOutput{
		Phase:            string(state.Phase),
		RemainingSeconds: state.RemainingSeconds,
		Display:          state.Display(),
		StudyMinutes:     state.StudyMinutes,
		BreakMinutes:     state.BreakMinutes,
	}, nil
}

func (i *Interactor) DiscardSession(ctx context.Context) error {
	return i.persistence.Discard(ctx)
}

func (i *Interactor) status() timerdto.StatusOutput {
	out := toStatus(i.timer.State())
	out.Resumed = i.resumed
	return out
}

func toStatus(state domain.State) timerdto.StatusOutput {
	return timerdto.StatusOutput{
		Phase:            string(state.Phase),
		Label:            state.Phase.Label(),
		Display:          state.Display(),
		RemainingSeconds: state.RemainingSeconds,
		StudyMinutes:     state.StudyMinutes,
		BreakMinutes:     state.BreakMinutes,
		Active:           state.Active(),
	}
}
