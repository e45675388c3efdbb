package in

import (
	"context"

	sessiondto "breathe/internal/modules/session/dto"
	sessionin "breathe/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Configure(ctx context.Context, inhale, hold, exhale int) error {
	return h.usecase.Configure(ctx, sessiondto.ConfigureInput{
		InhaleSeconds: inhale,
		HoldSeconds:   hold,
		ExhaleSeconds: exhale,
	})
}

func (h CLIHandler) Start(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) PauseToggle(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.PauseToggle(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (sessiondto.ResetOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Summaries(ctx context.Context) ([]sessiondto.SummaryOutput, error) {
	return h.usecase.Summaries(ctx)
}

func (h CLIHandler) ClearSummaries(ctx context.Context) error {
	return h.usecase.ClearSummaries(ctx)
}
