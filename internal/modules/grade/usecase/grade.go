package usecase

import (
	"context"
	"log/slog"

	"studytimer/internal/modules/grade/domain"
	gradedto "studytimer/internal/modules/grade/dto"
	gradein "studytimer/internal/modules/grade/port/in"
	"studytimer/internal/modules/grade/service"
	"studytimer/internal/platform/logging"
)

type Interactor struct {
	svc    *service.GradeService
	logger *slog.Logger
}

func NewInteractor(svc *service.GradeService, logger *slog.Logger) gradein.Usecase {
	return &Interactor{svc: svc, logger: logging.OrDefault(logger)}
}

func (i *Interactor) Add(ctx context.Context, input gradedto.AddInput) (gradedto.EntryOutput, error) {
	entry, index, err := i.svc.Add(ctx, input.Value)
	if err != nil {
		return gradedto.EntryOutput{}, err
	}
	i.logger.Info("grade added", "value", entry.Value, "index", index)
	return gradedto.EntryOutput{Index: index, Value: entry.Value, Date: entry.Date}, nil
}

func (i *Interactor) List(ctx context.Context) ([]gradedto.EntryOutput, error) {
	entries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]gradedto.EntryOutput, 0, len(entries))
	for idx, e := range entries {
		out = append(out, gradedto.EntryOutput{Index: idx, Value: e.Value, Date: e.Date})
	}
	return out, nil
}

func (i *Interactor) Chart(ctx context.Context, input gradedto.ChartInput) (gradedto.ChartOutput, error) {
	entries, err := i.svc.List(ctx)
	if err != nil {
		return gradedto.ChartOutput{}, err
	}
	return gradedto.ChartOutput{Lines: domain.Chart(entries, input.Width, input.Height), Count: len(entries)}, nil
}
