package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"studytimer/internal/modules/preset/domain"
	presetdto "studytimer/internal/modules/preset/dto"
	presetin "studytimer/internal/modules/preset/port/in"
	presetout "studytimer/internal/modules/preset/port/out"
	"studytimer/internal/modules/preset/service"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/logging"
)

type Interactor struct {
	svc    *service.PresetService
	file   presetout.PresetFile
	logger *slog.Logger
}

// NewInteractor wires the preset manager. file may be nil, which disables
// export and import.
func NewInteractor(svc *service.PresetService, file presetout.PresetFile, logger *slog.Logger) presetin.Usecase {
	return &Interactor{svc: svc, file: file, logger: logging.OrDefault(logger)}
}

func (i *Interactor) List(ctx context.Context) ([]presetdto.PresetOutput, error) {
	list, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]presetdto.PresetOutput, 0, len(list))
	for idx, p := range list {
		out = append(out, toOutput(idx, p))
	}
	return out, nil
}

func (i *Interactor) Save(ctx context.Context, input presetdto.SaveInput) (presetdto.PresetOutput, error) {
	p, idx, err := i.svc.Save(ctx, domain.Preset{
		Name:         input.Name,
		StudyMinutes: input.StudyMinutes,
		BreakMinutes: input.BreakMinutes,
	}, input.OverwriteIndex)
	if err != nil {
		return presetdto.PresetOutput{}, err
	}
	i.logger.Info("preset saved", "name", p.Name, "index", idx)
	return toOutput(idx, p), nil
}

func (i *Interactor) Delete(ctx context.Context, index int) (presetdto.PresetOutput, error) {
	removed, err := i.svc.Delete(ctx, index)
	if err != nil {
		return presetdto.PresetOutput{}, err
	}
	i.logger.Info("preset deleted", "name", removed.Name, "index", index)
	return toOutput(index, removed), nil
}

func (i *Interactor) Get(ctx context.Context, ref string) (presetdto.PresetOutput, error) {
	p, idx, err := i.svc.Get(ctx, ref)
	if err != nil {
		return presetdto.PresetOutput{}, err
	}
	return toOutput(idx, p), nil
}

func (i *Interactor) Export(ctx context.Context, path string) (presetdto.ExportOutput, error) {
	if err := i.requireFile(path); err != nil {
		return presetdto.ExportOutput{}, err
	}
	list, err := i.svc.List(ctx)
	if err != nil {
		return presetdto.ExportOutput{}, err
	}
	if err := i.file.Write(ctx, path, list); err != nil {
		return presetdto.ExportOutput{}, err
	}
	i.logger.Info("presets exported", "path", path, "count", len(list))
	return presetdto.ExportOutput{Path: path, Count: len(list)}, nil
}

func (i *Interactor) Import(ctx context.Context, path string) (presetdto.ImportOutput, error) {
	if err := i.requireFile(path); err != nil {
		return presetdto.ImportOutput{}, err
	}
	incoming, err := i.file.Read(ctx, path)
	if err != nil {
		return presetdto.ImportOutput{}, err
	}
	added, skipped, err := i.svc.Merge(ctx, incoming)
	if err != nil {
		return presetdto.ImportOutput{}, err
	}
	i.logger.Info("presets imported", "path", path, "imported", added, "skipped", skipped)
	return presetdto.ImportOutput{Path: path, Imported: added, Skipped: skipped}, nil
}

func (i *Interactor) requireFile(path string) error {
	if i.file == nil {
		return fmt.Errorf("preset file exchange is not configured")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is required", apperrors.ErrInvalidInput)
	}
	return nil
}

func toOutput(idx int, p domain.Preset) presetdto.PresetOutput {
	return presetdto.PresetOutput{
		Index:        idx,
		Name:         p.Name,
		Slug:         p.Slug(),
		StudyMinutes: p.StudyMinutes,
		BreakMinutes: p.BreakMinutes,
	}
}
