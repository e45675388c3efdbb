package in

import (
	"context"

	"breathe/internal/modules/report/dto"
)

type Usecase interface {
	HistoryText(ctx context.Context, input dto.RangeInput) (dto.TextOutput, error)
	Chart(ctx context.Context, input dto.RangeInput) (dto.ChartOutput, error)
	ExportText(ctx context.Context, input dto.RangeInput) (dto.ExportOutput, error)
	ExportDocument(ctx context.Context, input dto.RangeInput) (dto.ExportOutput, error)
}
