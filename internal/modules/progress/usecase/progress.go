package usecase

import (
	"context"

	progressdto "breathe/internal/modules/progress/dto"
	progressin "breathe/internal/modules/progress/port/in"
	"breathe/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.CounterService
}

func NewInteractor(svc *service.CounterService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordCycle(ctx context.Context, input progressdto.RecordInput) (progressdto.DayCountOutput, error) {
	count, err := i.svc.RecordCycle(ctx, input.Day)
	return progressdto.DayCountOutput{Day: input.Day, Count: count}, err
}

func (i *Interactor) Query(ctx context.Context, input progressdto.QueryInput) ([]progressdto.DayCountOutput, error) {
	counts := i.svc.Query(ctx, input.Days)
	out := make([]progressdto.DayCountOutput, len(counts))
	for idx, c := range counts {
		out[idx] = progressdto.DayCountOutput{Day: c.Day, Count: c.Count}
	}
	return out, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}
