package in

import (
	"context"

	gradedto "studytimer/internal/modules/grade/dto"
	gradein "studytimer/internal/modules/grade/port/in"
)

type CLIHandler struct {
	usecase gradein.Usecase
}

func NewCLIHandler(usecase gradein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, value float64) (gradedto.EntryOutput, error) {
	return h.usecase.Add(ctx, gradedto.AddInput{Value: value})
}

func (h CLIHandler) List(ctx context.Context) ([]gradedto.EntryOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Chart(ctx context.Context, width, height int) (gradedto.ChartOutput, error) {
	return h.usecase.Chart(ctx, gradedto.ChartInput{Width: width, Height: height})
}
