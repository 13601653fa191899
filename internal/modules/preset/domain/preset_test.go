package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytimer/internal/modules/preset/domain"
	apperrors "studytimer/internal/platform/errors"
)

func full() domain.List {
	return domain.List{
		{Name: "Pomodoro", StudyMinutes: 25, BreakMinutes: 5},
		{Name: "Deep Work", StudyMinutes: 90, BreakMinutes: 20},
		{Name: "Sprint", StudyMinutes: 15, BreakMinutes: 3},
		{Name: "Exam Block", StudyMinutes: 50, BreakMinutes: 10},
		{Name: "Review", StudyMinutes: 30, BreakMinutes: 5},
	}
}

func TestSaveRejectsSixthPreset(t *testing.T) {
	t.Parallel()
	list := full()
	next, idx, err := list.Save(domain.Preset{Name: "Extra", StudyMinutes: 10, BreakMinutes: 2}, nil)
	require.ErrorIs(t, err, apperrors.ErrPresetLimit)
	assert.Equal(t, -1, idx)
	assert.Len(t, next, domain.Limit)
	assert.Equal(t, full(), next)
}

func TestSaveOverwriteAndFallback(t *testing.T) {
	t.Parallel()
	list := full()
	two := 2
	next, idx, err := list.Save(domain.Preset{Name: "  Sprint+ ", StudyMinutes: 20, BreakMinutes: 4}, &two)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, domain.Preset{Name: "Sprint+", StudyMinutes: 20, BreakMinutes: 4}, next[2])
	assert.Equal(t, "Sprint", list[2].Name)

	bad := 9
	_, _, err = list.Save(domain.Preset{Name: "X", StudyMinutes: 1, BreakMinutes: 1}, &bad)
	require.ErrorIs(t, err, apperrors.ErrPresetLimit)

	short := domain.List{}
	next, idx, err = short.Save(domain.Preset{Name: "X", StudyMinutes: 1, BreakMinutes: 1}, &bad)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Len(t, next, 1)
}

func TestSaveValidates(t *testing.T) {
	t.Parallel()
	for _, p := range []domain.Preset{
		{Name: " ", StudyMinutes: 25, BreakMinutes: 5},
		{Name: "A", StudyMinutes: 0, BreakMinutes: 5},
		{Name: "A", StudyMinutes: 25, BreakMinutes: -5},
	} {
		_, _, err := domain.List{}.Save(p, nil)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}
}

func TestDeleteAndFind(t *testing.T) {
	t.Parallel()
	list := full()

	_, _, err := list.Delete(5)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	next, removed, err := list.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", removed.Name)
	assert.Len(t, next, 4)
	assert.Equal(t, "Sprint", next[1].Name)

	idx, p, err := list.Find("2")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 90, p.StudyMinutes)

	idx, p, err = list.Find("exam-block")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "Exam Block", p.Name)

	_, _, err = list.Find("0")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, _, err = list.Find("nope")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMergeStopsAtLimit(t *testing.T) {
	t.Parallel()
	list := full()[:3]
	next, added, skipped := list.Merge([]domain.Preset{
		{Name: "A", StudyMinutes: 1, BreakMinutes: 1},
		{Name: "", StudyMinutes: 1, BreakMinutes: 1},
		{Name: "B", StudyMinutes: 2, BreakMinutes: 2},
		{Name: "C", StudyMinutes: 3, BreakMinutes: 3},
	})
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, skipped)
	assert.Len(t, next, domain.Limit)
	assert.Equal(t, "B", next[4].Name)
}
