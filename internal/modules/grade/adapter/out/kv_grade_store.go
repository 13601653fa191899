package out

import (
	"context"
	"encoding/json"
	"fmt"

	"studytimer/internal/modules/grade/domain"
	gradeout "studytimer/internal/modules/grade/port/out"
	"studytimer/internal/platform/kv"
)

const KeyGrades = "grades"

type KVGradeStore struct {
	store kv.Store
}

func NewKVGradeStore(store kv.Store) gradeout.GradeStore {
	return &KVGradeStore{store: store}
}

func (s *KVGradeStore) Load(ctx context.Context) ([]domain.Entry, error) {
	raw, ok, err := s.store.Get(ctx, KeyGrades)
	if err != nil {
		return nil, fmt.Errorf("read grades: %w", err)
	}
	if !ok || raw == "" || raw == "null" {
		return []domain.Entry{}, nil
	}
	entries := []domain.Entry{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode grades: %w", err)
	}
	return entries, nil
}

func (s *KVGradeStore) Save(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal grades: %w", err)
	}
	if err := s.store.Set(ctx, KeyGrades, string(payload)); err != nil {
		return fmt.Errorf("write grades: %w", err)
	}
	return nil
}
