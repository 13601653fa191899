package in

import (
	"context"

	presetdto "studytimer/internal/modules/preset/dto"
	presetin "studytimer/internal/modules/preset/port/in"
)

type CLIHandler struct {
	usecase presetin.Usecase
}

func NewCLIHandler(usecase presetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]presetdto.PresetOutput, error) {
	return h.usecase.List(ctx)
}

// Save appends a preset, or overwrites position (1-based) when it is
// positive.
func (h CLIHandler) Save(ctx context.Context, name string, studyMinutes, breakMinutes, position int) (presetdto.PresetOutput, error) {
	input := presetdto.SaveInput{Name: name, StudyMinutes: studyMinutes, BreakMinutes: breakMinutes}
	if position > 0 {
		idx := position - 1
		input.OverwriteIndex = &idx
	}
	return h.usecase.Save(ctx, input)
}

// Delete removes the preset at position (1-based).
func (h CLIHandler) Delete(ctx context.Context, position int) (presetdto.PresetOutput, error) {
	return h.usecase.Delete(ctx, position-1)
}

func (h CLIHandler) Get(ctx context.Context, ref string) (presetdto.PresetOutput, error) {
	return h.usecase.Get(ctx, ref)
}

func (h CLIHandler) Export(ctx context.Context, path string) (presetdto.ExportOutput, error) {
	return h.usecase.Export(ctx, path)
}

func (h CLIHandler) Import(ctx context.Context, path string) (presetdto.ImportOutput, error) {
	return h.usecase.Import(ctx, path)
}
