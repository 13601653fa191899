package in

import (
	"context"

	statsdto "studytimer/internal/modules/stats/dto"
	statsin "studytimer/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, recent int) (statsdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, statsdto.SummaryInput{Recent: recent})
}
