package in

import (
	"context"

	"breathe/internal/modules/progress/dto"
)

type Usecase interface {
	RecordCycle(ctx context.Context, input dto.RecordInput) (dto.DayCountOutput, error)
	Query(ctx context.Context, input dto.QueryInput) ([]dto.DayCountOutput, error)
	Clear(ctx context.Context) error
}
