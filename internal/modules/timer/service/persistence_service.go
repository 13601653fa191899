package service

import (
	"context"
	"fmt"
	"log/slog"

	"studytimer/internal/modules/timer/domain"
	timerout "studytimer/internal/modules/timer/port/out"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/logging"
)

// Skip reasons reported by Snapshot.
const (
	SkipIdle     = "timer idle"
	SkipResumed  = "session already resumed on this load"
	SkipFinished = "no time remaining"
)

// PersistenceService carries an in-flight countdown across a restart.
type PersistenceService struct {
	store  timerout.SessionStore
	logger *slog.Logger
}

func NewPersistenceService(store timerout.SessionStore, logger *slog.Logger) *PersistenceService {
	return &PersistenceService{store: store, logger: logging.OrDefault(logger)}
}

// Snapshot writes state to the slot unless it is idle, was itself produced
// by a resume on this load, or has nothing left to count. It returns the
// skip reason when nothing was written.
func (s *PersistenceService) Snapshot(ctx context.Context, state domain.State, resumed bool) (bool, string, error) {
	switch {
	case !state.Active():
		return false, SkipIdle, nil
	case resumed:
		return false, SkipResumed, nil
	case state.RemainingSeconds <= 0:
		return false, SkipFinished, nil
	}
	if err := s.store.Save(ctx, domain.SessionFromState(state)); err != nil {
		return false, "", err
	}
	s.logger.Info("session snapshot saved", "phase", state.Phase, "remaining", state.RemainingSeconds)
	return true, "", nil
}

// Restore consumes the slot. The entry is deleted before it is validated so
// a bad or stale entry is never replayed; anything that does not describe a
// resumable countdown is reported as ok=false.
func (s *PersistenceService) Restore(ctx context.Context) (domain.State, bool, error) {
	session, found, loadErr := s.store.Load(ctx)
	if !found {
		if loadErr != nil {
			return domain.State{}, false, loadErr
		}
		return domain.State{}, false, nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return domain.State{}, false, err
	}
	if loadErr != nil {
		s.logger.Warn("discarding unreadable session", "error", loadErr)
		return domain.State{}, false, nil
	}
	state := session.State()
	if err := state.Validate(); err != nil {
		s.logger.Warn("discarding invalid session", "error", err)
		return domain.State{}, false, nil
	}
	s.logger.Info("session restored", "phase", state.Phase, "remaining", state.RemainingSeconds)
	return state, true, nil
}

// Peek reads the slot without consuming it.
func (s *PersistenceService) Peek(ctx context.Context) (domain.State, error) {
	session, found, err := s.store.Load(ctx)
	if err != nil {
		return domain.State{}, err
	}
	if !found {
		return domain.State{}, apperrors.ErrNoSession
	}
	return session.State(), nil
}

func (s *PersistenceService) Discard(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("discard session: %w", err)
	}
	return nil
}
