package in

import (
	"context"

	progressdto "breathe/internal/modules/progress/dto"
	progressin "breathe/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Query(ctx context.Context, days int) ([]progressdto.DayCountOutput, error) {
	return h.usecase.Query(ctx, progressdto.QueryInput{Days: days})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}
