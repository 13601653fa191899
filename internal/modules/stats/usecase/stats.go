package usecase

import (
	"context"
	"log/slog"

	"studytimer/internal/modules/stats/domain"
	statsdto "studytimer/internal/modules/stats/dto"
	statsin "studytimer/internal/modules/stats/port/in"
	statsout "studytimer/internal/modules/stats/port/out"
	"studytimer/internal/modules/stats/service"
	"studytimer/internal/platform/logging"
)

const defaultRecent = 10

type Interactor struct {
	svc       *service.StatsService
	projector statsout.CompletionProjector
	journal   statsout.Journal
	logger    *slog.Logger
}

// NewInteractor wires the recorder. projector and journal are optional.
func NewInteractor(svc *service.StatsService, projector statsout.CompletionProjector, journal statsout.Journal, logger *slog.Logger) statsin.Usecase {
	return &Interactor{svc: svc, projector: projector, journal: journal, logger: logging.OrDefault(logger)}
}

func (i *Interactor) RecordStudyCompletion(ctx context.Context, input statsdto.RecordInput) (statsdto.RecordOutput, error) {
	completion, aggregates, resets, err := i.svc.Record(ctx, input.Minutes)
	if err != nil {
		return statsdto.RecordOutput{}, err
	}
	i.logger.Info("study completion recorded",
		"minutes", completion.StudyMinutes,
		"cumulative", aggregates.CumulativeMinutes,
		"weekly", aggregates.WeeklyMinutes,
		"weekly_reset", resets.Weekly,
		"daily_reset", resets.Daily,
	)

	out := statsdto.RecordOutput{
		CompletionID:      completion.ID,
		CumulativeMinutes: aggregates.CumulativeMinutes,
		WeeklyMinutes:     aggregates.WeeklyMinutes,
		DailyMinutes:      aggregates.DailyMinutes,
		WeeklyReset:       resets.Weekly,
		DailyReset:        resets.Daily,
	}

	// Totals are already saved; history and journal are best effort.
	if i.projector != nil {
		if err := i.projector.Append(ctx, completion); err != nil {
			i.logger.Warn("project completion", "id", completion.ID, "error", err)
		}
	}
	if i.journal != nil {
		path, err := i.journal.Write(ctx, completion, aggregates)
		if err != nil {
			i.logger.Warn("write journal note", "id", completion.ID, "error", err)
		} else {
			out.JournalPath = path
		}
	}
	return out, nil
}

func (i *Interactor) Summary(ctx context.Context, input statsdto.SummaryInput) (statsdto.SummaryOutput, error) {
	aggregates, err := i.svc.Current(ctx)
	if err != nil {
		return statsdto.SummaryOutput{}, err
	}
	out := statsdto.SummaryOutput{
		CumulativeMinutes: aggregates.CumulativeMinutes,
		WeeklyMinutes:     aggregates.WeeklyMinutes,
		WeeklyLastSaved:   aggregates.WeeklyLastSaved,
		DailyMinutes:      aggregates.DailyMinutes,
		DailyLastReset:    aggregates.DailyLastReset,
	}
	if i.projector == nil {
		return out, nil
	}
	limit := input.Recent
	if limit <= 0 {
		limit = defaultRecent
	}
	recent, err := i.projector.Recent(ctx, limit)
	if err != nil {
		return statsdto.SummaryOutput{}, err
	}
	out.Recent = toCompletionOutputs(recent)
	return out, nil
}

func toCompletionOutputs(items []domain.Completion) []statsdto.CompletionOutput {
	out := make([]statsdto.CompletionOutput, 0, len(items))
	for _, c := range items {
		out = append(out, statsdto.CompletionOutput{ID: c.ID, StudyMinutes: c.StudyMinutes, CompletedAt: c.CompletedAt})
	}
	return out
}
