package out

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"studytimer/internal/modules/stats/domain"
	statsout "studytimer/internal/modules/stats/port/out"
	"studytimer/internal/platform/kv"
)

const (
	KeyTotal          = "totalStudyMinutes"
	KeyWeekly         = "weeklyStudyMinutes"
	KeyWeeklyLastSave = "weeklyLastSaved"
	KeyDailyLastReset = "dailyLastReset"
	dailyKeyPrefix    = "dailyStudy_"
)

// DailyKey is the store key of a weekday bucket (0=Sunday).
func DailyKey(weekday time.Weekday) string {
	return dailyKeyPrefix + strconv.Itoa(int(weekday))
}

type KVAggregateStore struct {
	store kv.Store
}

func NewKVAggregateStore(store kv.Store) statsout.AggregateStore {
	return &KVAggregateStore{store: store}
}

// Load treats absent or unparsable numbers as zero and unparsable
// timestamps as absent.
func (s *KVAggregateStore) Load(ctx context.Context) (domain.Aggregates, error) {
	agg := domain.Aggregates{}
	var err error
	if agg.CumulativeMinutes, err = s.readInt(ctx, KeyTotal); err != nil {
		return domain.Aggregates{}, err
	}
	if agg.WeeklyMinutes, err = s.readInt(ctx, KeyWeekly); err != nil {
		return domain.Aggregates{}, err
	}
	if agg.WeeklyLastSaved, err = s.readTime(ctx, KeyWeeklyLastSave); err != nil {
		return domain.Aggregates{}, err
	}
	if agg.DailyLastReset, err = s.readTime(ctx, KeyDailyLastReset); err != nil {
		return domain.Aggregates{}, err
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if agg.DailyMinutes[day], err = s.readInt(ctx, DailyKey(day)); err != nil {
			return domain.Aggregates{}, err
		}
	}
	return agg, nil
}

func (s *KVAggregateStore) Save(ctx context.Context, agg domain.Aggregates) error {
	entries := map[string]string{
		KeyTotal:  strconv.Itoa(agg.CumulativeMinutes),
		KeyWeekly: strconv.Itoa(agg.WeeklyMinutes),
	}
	if !agg.WeeklyLastSaved.IsZero() {
		entries[KeyWeeklyLastSave] = agg.WeeklyLastSaved.Format(time.RFC3339Nano)
	}
	if !agg.DailyLastReset.IsZero() {
		entries[KeyDailyLastReset] = agg.DailyLastReset.Format(time.RFC3339Nano)
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		entries[DailyKey(day)] = strconv.Itoa(agg.DailyMinutes[day])
	}
	if err := s.store.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("save aggregates: %w", err)
	}
	return nil
}

func (s *KVAggregateStore) readInt(ctx context.Context, key string) (int, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f), nil
	}
	return 0, nil
}

func (s *KVAggregateStore) readTime(ctx context.Context, key string) (time.Time, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return parsed, nil
}
