package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsout "studytimer/internal/modules/stats/adapter/out"
	"studytimer/internal/modules/stats/domain"
	statsdto "studytimer/internal/modules/stats/dto"
	"studytimer/internal/modules/stats/service"
	"studytimer/internal/modules/stats/usecase"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/kv"
	"studytimer/internal/platform/markdown"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "completion-" + string(rune('0'+s.n))
}

type failingProjector struct{}

func (failingProjector) Append(context.Context, domain.Completion) error {
	return errors.New("disk full")
}

func (failingProjector) Recent(context.Context, int) ([]domain.Completion, error) {
	return nil, nil
}

func TestRecordUpdatesTotalsHistoryAndJournal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	store := kv.NewMemory()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC), // Tuesday
		time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),  // next Monday
	}}
	projector, err := statsout.NewSQLiteCompletionProjector(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = projector.Close() })

	uc := usecase.NewInteractor(
		service.NewStatsService(clk, &seqID{}, statsout.NewKVAggregateStore(store)),
		projector,
		statsout.NewVaultJournal(filepath.Join(dir, "journal")),
		nil,
	)

	first, err := uc.RecordStudyCompletion(ctx, statsdto.RecordInput{Minutes: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, first.CumulativeMinutes)
	assert.Equal(t, 50, first.DailyMinutes[time.Tuesday])
	assert.False(t, first.WeeklyReset)

	second, err := uc.RecordStudyCompletion(ctx, statsdto.RecordInput{Minutes: 25})
	require.NoError(t, err)
	assert.Equal(t, 75, second.CumulativeMinutes)
	assert.Equal(t, 25, second.WeeklyMinutes)
	assert.True(t, second.WeeklyReset)
	assert.True(t, second.DailyReset)
	assert.Equal(t, [7]int{0, 25, 0, 0, 0, 0, 0}, second.DailyMinutes)

	total, ok, err := store.Get(ctx, statsout.KeyTotal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "75", total)

	summary, err := uc.Summary(ctx, statsdto.SummaryInput{Recent: 5})
	require.NoError(t, err)
	assert.Equal(t, 75, summary.CumulativeMinutes)
	require.Len(t, summary.Recent, 2)
	assert.Equal(t, 25, summary.Recent[0].StudyMinutes)
	assert.Equal(t, 50, summary.Recent[1].StudyMinutes)

	raw, err := os.ReadFile(second.JournalPath)
	require.NoError(t, err)
	note, err := markdown.Parse(string(raw))
	require.NoError(t, err)
	assert.Equal(t, 25, note.Meta["study_minutes"])
	assert.Equal(t, "Monday", note.Meta["weekday"])
	assert.Equal(t, filepath.Join(dir, "journal", "2026", "10", "19", "090000-study-25-min.md"), second.JournalPath)
}

func TestRecordRejectsNonPositiveMinutes(t *testing.T) {
	t.Parallel()
	store := kv.NewMemory()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(service.NewStatsService(clk, &seqID{}, statsout.NewKVAggregateStore(store)), nil, nil, nil)

	_, err := uc.RecordStudyCompletion(context.Background(), statsdto.RecordInput{Minutes: 0})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, store.Keys())
}

func TestProjectionFailureKeepsTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(service.NewStatsService(clk, &seqID{}, statsout.NewKVAggregateStore(store)), failingProjector{}, nil, nil)

	out, err := uc.RecordStudyCompletion(ctx, statsdto.RecordInput{Minutes: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, out.CumulativeMinutes)
	assert.Empty(t, out.JournalPath)

	summary, err := uc.Summary(ctx, statsdto.SummaryInput{})
	require.NoError(t, err)
	assert.Equal(t, 25, summary.WeeklyMinutes)
	assert.Empty(t, summary.Recent)
}

func TestCumulativeGrowsByConfiguredMinutesEachCompletion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(service.NewStatsService(clk, &seqID{}, statsout.NewKVAggregateStore(store)), nil, nil, nil)

	want := 0
	for _, m := range []int{25, 25, 50, 1} {
		want += m
		out, err := uc.RecordStudyCompletion(ctx, statsdto.RecordInput{Minutes: m})
		require.NoError(t, err)
		assert.Equal(t, want, out.CumulativeMinutes)
	}
}
