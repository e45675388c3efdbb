package in

import (
	"context"

	reportdto "breathe/internal/modules/report/dto"
	reportin "breathe/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) HistoryText(ctx context.Context, rangeArg string) ([]string, error) {
	out, err := h.usecase.HistoryText(ctx, reportdto.RangeInput{Range: rangeArg})
	if err != nil {
		return nil, err
	}
	return out.Lines, nil
}

func (h CLIHandler) Chart(ctx context.Context, rangeArg string) (reportdto.ChartOutput, error) {
	return h.usecase.Chart(ctx, reportdto.RangeInput{Range: rangeArg})
}

func (h CLIHandler) ExportText(ctx context.Context, rangeArg string) (string, error) {
	out, err := h.usecase.ExportText(ctx, reportdto.RangeInput{Range: rangeArg})
	if err != nil {
		return "", err
	}
	return out.Path, nil
}

func (h CLIHandler) ExportDocument(ctx context.Context, rangeArg string) (string, error) {
	out, err := h.usecase.ExportDocument(ctx, reportdto.RangeInput{Range: rangeArg})
	if err != nil {
		return "", err
	}
	return out.Path, nil
}
