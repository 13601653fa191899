package out

import (
	"context"
	"encoding/json"
	"fmt"

	"studytimer/internal/modules/timer/domain"
	timerout "studytimer/internal/modules/timer/port/out"
	"studytimer/internal/platform/kv"
)

const KeySession = "pausedTimerState"

// sessionRecord is the decode shape of the slot. Durations written as
// numeric strings are accepted.
type sessionRecord struct {
	RemainingTime kv.LenientInt `json:"remainingTime"`
	Phase         domain.Phase  `json:"phase"`
	StudyDuration kv.LenientInt `json:"studyDuration"`
	BreakDuration kv.LenientInt `json:"breakDuration"`
}

type KVSessionStore struct {
	store kv.Store
}

func NewKVSessionStore(store kv.Store) timerout.SessionStore {
	return &KVSessionStore{store: store}
}

func (s *KVSessionStore) Load(ctx context.Context) (domain.PersistedSession, bool, error) {
	raw, ok, err := s.store.Get(ctx, KeySession)
	if err != nil {
		return domain.PersistedSession{}, false, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return domain.PersistedSession{}, false, nil
	}
	record := sessionRecord{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.PersistedSession{}, true, fmt.Errorf("decode session: %w", err)
	}
	return domain.PersistedSession{
		RemainingTime: int(record.RemainingTime),
		Phase:         record.Phase,
		StudyDuration: int(record.StudyDuration),
		BreakDuration: int(record.BreakDuration),
	}, true, nil
}

func (s *KVSessionStore) Save(ctx context.Context, session domain.PersistedSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.store.Set(ctx, KeySession, string(payload)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
