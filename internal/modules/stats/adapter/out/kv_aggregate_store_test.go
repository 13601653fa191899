package out_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsout "studytimer/internal/modules/stats/adapter/out"
	"studytimer/internal/modules/stats/domain"
	"studytimer/internal/platform/kv"
)

func TestLoadEmptyStoreIsZero(t *testing.T) {
	t.Parallel()
	agg, err := statsout.NewKVAggregateStore(kv.NewMemory()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Aggregates{}, agg)
}

func TestLoadToleratesBrowserEraValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.SetMany(ctx, map[string]string{
		statsout.KeyTotal:                 "125",
		statsout.KeyWeekly:                "47.5",
		statsout.KeyWeeklyLastSave:        "2026-10-13T01:02:03.456Z",
		statsout.KeyDailyLastReset:        "yesterday",
		statsout.DailyKey(time.Monday):    "30",
		statsout.DailyKey(time.Wednesday): "NaN",
	}))

	agg, err := statsout.NewKVAggregateStore(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 125, agg.CumulativeMinutes)
	assert.Equal(t, 47, agg.WeeklyMinutes)
	assert.Equal(t, time.Date(2026, 10, 13, 1, 2, 3, 456000000, time.UTC), agg.WeeklyLastSaved.UTC())
	assert.True(t, agg.DailyLastReset.IsZero())
	assert.Equal(t, [7]int{0, 30, 0, 0, 0, 0, 0}, agg.DailyMinutes)
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	aggStore := statsout.NewKVAggregateStore(store)
	saved := domain.Aggregates{
		CumulativeMinutes: 500,
		WeeklyMinutes:     120,
		WeeklyLastSaved:   time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC),
		DailyMinutes:      [7]int{1, 2, 3, 4, 5, 6, 7},
		DailyLastReset:    time.Date(2026, 10, 12, 7, 0, 0, 0, time.UTC),
	}
	require.NoError(t, aggStore.Save(ctx, saved))

	loaded, err := aggStore.Load(ctx)
	require.NoError(t, err)
	assert.True(t, saved.WeeklyLastSaved.Equal(loaded.WeeklyLastSaved))
	assert.True(t, saved.DailyLastReset.Equal(loaded.DailyLastReset))
	assert.Equal(t, saved.DailyMinutes, loaded.DailyMinutes)
	assert.Equal(t, saved.CumulativeMinutes, loaded.CumulativeMinutes)
	assert.Contains(t, store.Keys(), "dailyStudy_0")
	assert.Contains(t, store.Keys(), "dailyStudy_6")
}
