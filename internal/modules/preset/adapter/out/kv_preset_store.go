package out

import (
	"context"
	"encoding/json"
	"fmt"

	"studytimer/internal/modules/preset/domain"
	presetout "studytimer/internal/modules/preset/port/out"
	"studytimer/internal/platform/kv"
)

const KeyPresets = "favorite_sets"

// presetRecord is the stored shape. Durations were historically written
// either as numbers or as numeric strings.
type presetRecord struct {
	Name  string        `json:"name"`
	Study kv.LenientInt `json:"study"`
	Rest  kv.LenientInt `json:"rest"`
}

type KVPresetStore struct {
	store kv.Store
}

func NewKVPresetStore(store kv.Store) presetout.PresetStore {
	return &KVPresetStore{store: store}
}

func (s *KVPresetStore) Load(ctx context.Context) (domain.List, error) {
	raw, ok, err := s.store.Get(ctx, KeyPresets)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	if !ok || raw == "" || raw == "null" {
		return domain.List{}, nil
	}
	records := []presetRecord{}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	list := make(domain.List, 0, len(records))
	for _, r := range records {
		list = append(list, domain.Preset{Name: r.Name, StudyMinutes: int(r.Study), BreakMinutes: int(r.Rest)})
	}
	return list, nil
}

func (s *KVPresetStore) Save(ctx context.Context, presets domain.List) error {
	records := make([]presetRecord, 0, len(presets))
	for _, p := range presets {
		records = append(records, presetRecord{Name: p.Name, Study: kv.LenientInt(p.StudyMinutes), Rest: kv.LenientInt(p.BreakMinutes)})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := s.store.Set(ctx, KeyPresets, string(payload)); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}
