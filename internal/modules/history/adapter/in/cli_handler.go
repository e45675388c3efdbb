package in

import (
	"context"

	historydto "breathe/internal/modules/history/dto"
	historyin "breathe/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Query(ctx context.Context, days int) ([]historydto.EntryOutput, error) {
	return h.usecase.Query(ctx, historydto.QueryInput{Days: days})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
