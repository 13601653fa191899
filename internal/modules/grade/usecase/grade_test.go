package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradeout "studytimer/internal/modules/grade/adapter/out"
	gradedto "studytimer/internal/modules/grade/dto"
	gradein "studytimer/internal/modules/grade/port/in"
	"studytimer/internal/modules/grade/service"
	"studytimer/internal/modules/grade/usecase"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/kv"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	v := c.now
	c.now = c.now.Add(c.step)
	return v
}

func newGrades(store kv.Store) gradein.Usecase {
	clk := &stepClock{now: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC), step: 24 * time.Hour}
	return usecase.NewInteractor(service.NewGradeService(clk, gradeout.NewKVGradeStore(store)), nil)
}

func TestAddAndListKeepInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	uc := newGrades(store)

	for _, v := range []float64{61, 58.5, 74} {
		_, err := uc.Add(ctx, gradedto.AddInput{Value: v})
		require.NoError(t, err)
	}
	entries, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{61, 58.5, 74}, []float64{entries[0].Value, entries[1].Value, entries[2].Value})
	assert.Equal(t, 2, entries[2].Index)
	assert.True(t, entries[0].Date.Before(entries[1].Date))

	raw, ok, err := store.Get(ctx, gradeout.KeyGrades)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"value":58.5`)
	assert.Contains(t, raw, `"date":"2026-10-02T18:00:00Z"`)
}

func TestAddRejectsNonFiniteWithoutWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	uc := newGrades(store)

	_, err := uc.Add(ctx, gradedto.AddInput{Value: math.NaN()})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, store.Keys())
}

func TestListReadsStoredBrowserFormat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, gradeout.KeyGrades, `[{"value":80,"date":"2026-09-30T08:15:00.000Z"}]`))

	entries, err := newGrades(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 80.0, entries[0].Value)
	assert.Equal(t, time.September, entries[0].Date.Month())
}

func TestChartRedrawsAfterAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newGrades(kv.NewMemory())

	empty, err := uc.Chart(ctx, gradedto.ChartInput{Width: 20, Height: 5})
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Empty(t, empty.Lines)

	_, err = uc.Add(ctx, gradedto.AddInput{Value: 42})
	require.NoError(t, err)
	chart, err := uc.Chart(ctx, gradedto.ChartInput{Width: 20, Height: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, chart.Count)
	assert.Len(t, chart.Lines, 6)
}

func TestCorruptGradesSurfaceAnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, gradeout.KeyGrades, `{oops`))

	_, err := newGrades(store).Add(ctx, gradedto.AddInput{Value: 1})
	require.Error(t, err)
	raw, _, err := store.Get(ctx, gradeout.KeyGrades)
	require.NoError(t, err)
	assert.Equal(t, `{oops`, raw)
}
