package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"breathe/internal/modules/report/domain"
	reportout "breathe/internal/modules/report/port/out"
)

const chartWidth = 30

// RenderService turns gathered data into artifacts. It never reads
// other modules; the usecase hands it everything.
type RenderService struct {
	writer reportout.ArtifactWriter
	chart  reportout.ChartRenderer
}

func NewRenderService(writer reportout.ArtifactWriter, chart reportout.ChartRenderer) *RenderService {
	return &RenderService{writer: writer, chart: chart}
}

func (s *RenderService) RenderChart(labels []string, values []int) string {
	return s.chart.Render(labels, values, chartWidth)
}

func (s *RenderService) WriteArtifact(ctx context.Context, name, content string) (string, error) {
	path, err := s.writer.WriteText(ctx, name, content)
	if err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	return path, nil
}

type frontmatter struct {
	Title     string `yaml:"title"`
	Generated string `yaml:"generated"`
	Range     string `yaml:"range"`
	Pages     int    `yaml:"pages"`
}

// ComposeDocument assembles the markdown report: frontmatter, session
// state, instructions, paginated history and the chart.
func (s *RenderService) ComposeDocument(data domain.DocumentData) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Title:     "Breathing Report",
		Generated: data.GeneratedAt.Format(time.RFC3339),
		Range:     data.RangeLabel,
		Pages:     len(data.HistoryPages),
	})
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n# Breathing Report\n\n")

	b.WriteString("## Session\n\n")
	if data.Active != nil {
		fmt.Fprintf(&b, "Active since %s: %s, %ds remaining, %d cycles completed.\n\n",
			data.Active.StartedAt.Local().Format("3:04:05 PM"),
			data.Active.Phase, data.Active.SecondsRemaining, data.Active.CompletedCycles)
	}
	if data.LastSummary != nil {
		fmt.Fprintf(&b, "Last session %s to %s: %d cycles in %ds.\n\n",
			data.LastSummary.StartedAt.Local().Format("Jan 2, 2006 3:04:05 PM"),
			data.LastSummary.EndedAt.Local().Format("3:04:05 PM"),
			data.LastSummary.Cycles, data.LastSummary.TotalSeconds)
	}
	if data.Active == nil && data.LastSummary == nil {
		b.WriteString("No sessions recorded yet.\n\n")
	}

	b.WriteString("## Technique\n\n")
	b.WriteString("Inhale through the nose, hold, then exhale slowly through the mouth. ")
	b.WriteString("Repeat the cycle without forcing the breath.\n\n")

	b.WriteString("## History\n\n")
	if len(data.HistoryPages) == 0 {
		b.WriteString("No phases recorded in this range.\n\n")
	}
	for i, page := range data.HistoryPages {
		if i > 0 {
			fmt.Fprintf(&b, "\n### Page %d\n\n", i+1)
		}
		for _, line := range page {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Cycles per day\n\n")
	b.WriteString("```\n")
	b.WriteString(data.ChartBlock)
	if !strings.HasSuffix(data.ChartBlock, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String(), nil
}
