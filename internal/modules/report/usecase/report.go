package usecase

import (
	"context"
	"fmt"

	historydto "breathe/internal/modules/history/dto"
	historyin "breathe/internal/modules/history/port/in"
	progressdto "breathe/internal/modules/progress/dto"
	progressin "breathe/internal/modules/progress/port/in"
	"breathe/internal/modules/report/domain"
	reportdto "breathe/internal/modules/report/dto"
	reportin "breathe/internal/modules/report/port/in"
	"breathe/internal/modules/report/service"
	sessionin "breathe/internal/modules/session/port/in"
	"breathe/internal/platform/clock"
	apperrors "breathe/internal/platform/errors"
)

// Interactor gathers data from the other modules and hands it to the
// render service. Export operations never touch timer state.
type Interactor struct {
	svc      *service.RenderService
	history  historyin.Usecase
	progress progressin.Usecase
	session  sessionin.Usecase
	clock    clock.Clock
}

func NewInteractor(
	svc *service.RenderService,
	history historyin.Usecase,
	progress progressin.Usecase,
	session sessionin.Usecase,
	clk clock.Clock,
) reportin.Usecase {
	return &Interactor{svc: svc, history: history, progress: progress, session: session, clock: clk}
}

func (i *Interactor) HistoryText(ctx context.Context, input reportdto.RangeInput) (reportdto.TextOutput, error) {
	lines, err := i.historyLines(ctx, input.Range)
	if err != nil {
		return reportdto.TextOutput{}, err
	}
	return reportdto.TextOutput{Lines: lines}, nil
}

// Chart returns per-day cycle counts. An empty window falls back to a
// zero-filled week so the display always has a shape.
func (i *Interactor) Chart(ctx context.Context, input reportdto.RangeInput) (reportdto.ChartOutput, error) {
	days, err := domain.ParseRange(input.Range)
	if err != nil {
		return reportdto.ChartOutput{}, err
	}
	counts, err := i.progress.Query(ctx, progressdto.QueryInput{Days: days})
	if err != nil {
		return reportdto.ChartOutput{}, fmt.Errorf("query progress: %w", err)
	}
	var labels []string
	var values []int
	if len(counts) == 0 {
		labels, values = domain.ZeroFilledWindow(i.clock.Now(), domain.DefaultWindowDays)
	} else {
		labels = make([]string, len(counts))
		values = make([]int, len(counts))
		for idx, c := range counts {
			labels[idx] = c.Day
			values[idx] = c.Count
		}
	}
	return reportdto.ChartOutput{
		Labels:   labels,
		Values:   values,
		Rendered: i.svc.RenderChart(labels, values),
	}, nil
}

func (i *Interactor) ExportText(ctx context.Context, input reportdto.RangeInput) (reportdto.ExportOutput, error) {
	lines, err := i.historyLines(ctx, input.Range)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	if len(lines) == 0 {
		return reportdto.ExportOutput{}, apperrors.ErrNoExportData
	}
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	name := fmt.Sprintf("breathe-history-%s.txt", i.clock.Now().Format("20060102-150405"))
	path, err := i.svc.WriteArtifact(ctx, name, content)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	return reportdto.ExportOutput{Path: path}, nil
}

func (i *Interactor) ExportDocument(ctx context.Context, input reportdto.RangeInput) (reportdto.ExportOutput, error) {
	lines, err := i.historyLines(ctx, input.Range)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	chart, err := i.Chart(ctx, input)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}

	data := domain.DocumentData{
		GeneratedAt:  i.clock.Now(),
		RangeLabel:   rangeLabel(input.Range),
		HistoryPages: domain.Paginate(lines, domain.PageLines),
		ChartBlock:   chart.Rendered,
	}

	status, err := i.session.Status(ctx)
	if err == nil && status.State != "idle" {
		data.Active = &domain.ActiveStats{
			Phase:            status.Phase,
			SecondsRemaining: status.SecondsRemaining,
			CompletedCycles:  status.CompletedCycles,
			StartedAt:        status.StartedAt,
		}
	}
	summaries, err := i.session.Summaries(ctx)
	if err == nil && len(summaries) > 0 {
		last := summaries[len(summaries)-1]
		data.LastSummary = &domain.SummaryStats{
			StartedAt:    last.StartedAt,
			EndedAt:      last.EndedAt,
			Cycles:       last.Cycles,
			TotalSeconds: last.TotalSeconds,
		}
	}

	if len(lines) == 0 && data.Active == nil && data.LastSummary == nil {
		return reportdto.ExportOutput{}, apperrors.ErrNoExportData
	}

	content, err := i.svc.ComposeDocument(data)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	name := fmt.Sprintf("breathe-report-%s.md", i.clock.Now().Format("20060102-150405"))
	path, err := i.svc.WriteArtifact(ctx, name, content)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	return reportdto.ExportOutput{Path: path}, nil
}

func (i *Interactor) historyLines(ctx context.Context, raw string) ([]string, error) {
	days, err := domain.ParseRange(raw)
	if err != nil {
		return nil, err
	}
	entries, err := i.history.Query(ctx, historydto.QueryInput{Days: days})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	lines := make([]string, len(entries))
	for idx, e := range entries {
		lines[idx] = domain.FormatEntryLine(e.Timestamp, e.Phase, e.Seconds)
	}
	return lines, nil
}

func rangeLabel(raw string) string {
	if raw == "" || raw == "all" {
		return "all"
	}
	return raw + " days"
}
