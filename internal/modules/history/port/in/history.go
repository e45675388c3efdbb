package in

import (
	"context"

	"breathe/internal/modules/history/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) error
	Query(ctx context.Context, input dto.QueryInput) ([]dto.EntryOutput, error)
	Clear(ctx context.Context) error
	Reindex(ctx context.Context) error
}
