package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsout "studytimer/internal/modules/stats/adapter/out"
	statsdto "studytimer/internal/modules/stats/dto"
	statsin "studytimer/internal/modules/stats/port/in"
	statsservice "studytimer/internal/modules/stats/service"
	statsusecase "studytimer/internal/modules/stats/usecase"
	timerout "studytimer/internal/modules/timer/adapter/out"
	"studytimer/internal/modules/timer/domain"
	timerdto "studytimer/internal/modules/timer/dto"
	timerin "studytimer/internal/modules/timer/port/in"
	"studytimer/internal/modules/timer/service"
	"studytimer/internal/modules/timer/usecase"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/kv"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type counterID struct{ n int }

func (c *counterID) New() string {
	c.n++
	return "c" + strconv.Itoa(c.n)
}

type countingAlarm struct{ plays int }

func (a *countingAlarm) Play() { a.plays++ }

type brokenRecorder struct{}

func (brokenRecorder) RecordStudyCompletion(context.Context, statsdto.RecordInput) (statsdto.RecordOutput, error) {
	return statsdto.RecordOutput{}, errors.New("store offline")
}

func (brokenRecorder) Summary(context.Context, statsdto.SummaryInput) (statsdto.SummaryOutput, error) {
	return statsdto.SummaryOutput{}, nil
}

type harness struct {
	store    *kv.Memory
	recorder statsin.Usecase
	alarm    *countingAlarm
}

func newHarness() *harness {
	store := kv.NewMemory()
	clk := fixedClock{now: time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)} // Wednesday
	recorder := statsusecase.NewInteractor(
		statsservice.NewStatsService(clk, &counterID{}, statsout.NewKVAggregateStore(store)),
		nil, nil, nil,
	)
	return &harness{store: store, recorder: recorder, alarm: &countingAlarm{}}
}

func (h *harness) timer() timerin.Usecase {
	persistence := service.NewPersistenceService(timerout.NewKVSessionStore(h.store), nil)
	return usecase.NewInteractor(persistence, h.recorder, h.alarm, nil)
}

func tickN(t *testing.T, uc timerin.Usecase, n int) timerdto.TickOutput {
	t.Helper()
	var out timerdto.TickOutput
	for range n {
		var err error
		out, err = uc.Tick(context.Background())
		require.NoError(t, err)
	}
	return out
}

func TestFullCycleRecordsStudyMinutes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness()
	uc := h.timer()

	status, err := uc.Start(ctx, timerdto.StartInput{StudyMinutes: 25, BreakMinutes: 5})
	require.NoError(t, err)
	assert.Equal(t, "study", status.Phase)
	assert.Equal(t, "Study time", status.Label)
	assert.Equal(t, "25:00", status.Display)

	out := tickN(t, uc, 1500)
	assert.True(t, out.Completed)
	assert.Equal(t, "study", out.FinishedPhase)
	assert.Equal(t, 25, out.RecordedMinutes)
	assert.Equal(t, "break", out.Status.Phase)
	assert.Equal(t, "05:00", out.Status.Display)
	assert.Equal(t, 1, h.alarm.plays)

	out = tickN(t, uc, 300)
	assert.True(t, out.Completed)
	assert.Equal(t, "break", out.FinishedPhase)
	assert.Zero(t, out.RecordedMinutes)
	assert.Equal(t, "idle", out.Status.Phase)
	assert.Equal(t, "00:00", out.Status.Display)
	assert.Equal(t, 2, h.alarm.plays)

	summary, err := h.recorder.Summary(ctx, statsdto.SummaryInput{})
	require.NoError(t, err)
	assert.Equal(t, 25, summary.CumulativeMinutes)
	assert.Equal(t, 25, summary.WeeklyMinutes)
	assert.Equal(t, 25, summary.DailyMinutes[time.Wednesday])
}

func TestStartRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHarness().timer()

	for _, input := range []timerdto.StartInput{
		{StudyMinutes: 0, BreakMinutes: 5},
		{StudyMinutes: 25, BreakMinutes: 0},
		{StudyMinutes: -1, BreakMinutes: -1},
		{StudyMinutes: domain.MaxMinutes + 1, BreakMinutes: 5},
	} {
		status, err := uc.Start(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "idle", status.Phase)
	}

	_, err := uc.Start(ctx, timerdto.StartInput{StudyMinutes: 1, BreakMinutes: 1})
	require.NoError(t, err)
	_, err = uc.Start(ctx, timerdto.StartInput{StudyMinutes: 2, BreakMinutes: 2})
	require.ErrorIs(t, err, apperrors.ErrTimerActive)
	assert.Equal(t, 60, uc.Status(ctx).RemainingSeconds)
}

func TestTickWhileIdleIsNoop(t *testing.T) {
	t.Parallel()
	h := newHarness()
	out := tickN(t, h.timer(), 10)
	assert.False(t, out.Completed)
	assert.Equal(t, "idle", out.Status.Phase)
	assert.Zero(t, h.alarm.plays)
}

func TestRecorderFailureStillTransitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alarm := &countingAlarm{}
	persistence := service.NewPersistenceService(timerout.NewKVSessionStore(kv.NewMemory()), nil)
	uc := usecase.NewInteractor(persistence, brokenRecorder{}, alarm, nil)

	_, err := uc.Start(ctx, timerdto.StartInput{StudyMinutes: 1, BreakMinutes: 1})
	require.NoError(t, err)
	tickN(t, uc, 59)
	out, err := uc.Tick(ctx)
	require.Error(t, err)
	assert.True(t, out.Completed)
	assert.Equal(t, "break", out.Status.Phase)
	assert.Equal(t, 1, alarm.plays)
}

func TestSnapshotThenRestoreAcrossLoads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness()

	first := h.timer()
	_, err := first.Start(ctx, timerdto.StartInput{StudyMinutes: 25, BreakMinutes: 5})
	require.NoError(t, err)
	tickN(t, first, 100)
	snap, err := first.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Saved)

	second := h.timer()
	restored, err := second.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored.Restored)
	assert.Equal(t, "study", restored.Status.Phase)
	assert.Equal(t, 1400, restored.Status.RemainingSeconds)
	assert.Equal(t, "23:20", restored.Status.Display)
	assert.True(t, restored.Status.Resumed)
	assert.Equal(t, "idle", second.Status(ctx).Phase)

	_, found, err := h.store.Get(ctx, timerout.KeySession)
	require.NoError(t, err)
	assert.False(t, found)

	status, err := second.Resume(ctx, timerdto.ResumeInput{
		Phase:            restored.Status.Phase,
		RemainingSeconds: restored.Status.RemainingSeconds,
		StudyMinutes:     restored.Status.StudyMinutes,
		BreakMinutes:     restored.Status.BreakMinutes,
	})
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.True(t, status.Resumed)

	snap, err = second.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, snap.Saved)
	assert.Equal(t, service.SkipResumed, snap.Reason)
	_, found, err = h.store.Get(ctx, timerout.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUnconfirmedRestoreIsWrittenBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness()
	require.NoError(t, h.store.Set(ctx, timerout.KeySession, `{"remainingTime":90,"phase":"break","studyDuration":30,"breakDuration":10}`))

	uc := h.timer()
	restored, err := uc.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored.Restored)

	snap, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Saved)

	session, err := h.timer().PeekSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "break", session.Phase)
	assert.Equal(t, 90, session.RemainingSeconds)
	assert.Equal(t, "01:30", session.Display)
}

func TestFreshStartAfterResumeIsSnapshotted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness()
	uc := h.timer()

	_, err := uc.Resume(ctx, timerdto.ResumeInput{Phase: "break", RemainingSeconds: 2, StudyMinutes: 1, BreakMinutes: 1})
	require.NoError(t, err)
	tickN(t, uc, 2)
	_, err = uc.Start(ctx, timerdto.StartInput{StudyMinutes: 10, BreakMinutes: 2})
	require.NoError(t, err)
	assert.False(t, uc.Status(ctx).Resumed)

	snap, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Saved)
}

func TestSnapshotAndRestoreAreOneShot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness()
	uc := h.timer()

	snap, err := uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.SkipIdle, snap.Reason)

	_, err = uc.Start(ctx, timerdto.StartInput{StudyMinutes: 5, BreakMinutes: 1})
	require.NoError(t, err)
	snap, err = uc.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, snap.Saved)

	restored, err := uc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored.Restored)
	require.NoError(t, h.store.Set(ctx, timerout.KeySession, `{"remainingTime":90,"phase":"break","studyDuration":30,"breakDuration":10}`))
	restored, err = uc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored.Restored)
}

func TestResumeRejectsInvalidState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHarness().timer()

	cases := []timerdto.ResumeInput{
		{Phase: "idle", RemainingSeconds: 10, StudyMinutes: 1, BreakMinutes: 1},
		{Phase: "nap", RemainingSeconds: 10, StudyMinutes: 1, BreakMinutes: 1},
		{Phase: "study", RemainingSeconds: 0, StudyMinutes: 1, BreakMinutes: 1},
		{Phase: "study", RemainingSeconds: 10, StudyMinutes: 0, BreakMinutes: 1},
	}
	for _, input := range cases {
		_, err := uc.Resume(ctx, input)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput, "%+v", input)
	}
	assert.False(t, uc.Status(ctx).Active)
}

func TestSessionPeekAndDiscard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHarness().timer()

	_, err := uc.PeekSession(ctx)
	require.ErrorIs(t, err, apperrors.ErrNoSession)
	require.NoError(t, uc.DiscardSession(ctx))
}
