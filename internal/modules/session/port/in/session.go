package in

import (
	"context"

	"breathe/internal/modules/session/dto"
)

type Usecase interface {
	Configure(ctx context.Context, input dto.ConfigureInput) error
	Start(ctx context.Context) (dto.StatusOutput, error)
	PauseToggle(ctx context.Context) (dto.StatusOutput, error)
	Tick(ctx context.Context) (dto.StatusOutput, error)
	Reset(ctx context.Context) (dto.ResetOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Summaries(ctx context.Context) ([]dto.SummaryOutput, error)
	ClearSummaries(ctx context.Context) error
}
