package progress

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportdto "breathe/internal/modules/report/dto"
	"breathe/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ChartPort interface {
	Chart(ctx context.Context, rangeArg string) (reportdto.ChartOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ChartLoadedMsg struct {
	Chart reportdto.ChartOutput
	Err   error
}

var rangeSteps = []string{"7", "30", "all"}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ChartPort
	chart    reportdto.ChartOutput
	loadErr  string
	rangeIdx int
	width    int
	height   int
}

func New(port ChartPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ChartLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.loadErr = ""
		m.chart = msg.Chart

	case tea.KeyMsg:
		if msg.String() == "f" {
			m.rangeIdx = (m.rangeIdx + 1) % len(rangeSteps)
			return m, m.Reload()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Cycles per day ("+m.rangeLabel()+")") + "\n\n")
	switch {
	case m.loadErr != "":
		sb.WriteString(theme.Muted.Render(m.loadErr) + "\n")
	default:
		sb.WriteString(m.chart.Rendered)
	}
	sb.WriteString("\n" + theme.Muted.Render("f: cycle range"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(sb.String())
}

// Reload fetches chart data for the current range.
func (m Model) Reload() tea.Cmd {
	rangeArg := rangeSteps[m.rangeIdx]
	return func() tea.Msg {
		chart, err := m.port.Chart(context.Background(), rangeArg)
		return ChartLoadedMsg{Chart: chart, Err: err}
	}
}

func (m Model) rangeLabel() string {
	r := rangeSteps[m.rangeIdx]
	if r == "all" {
		return "all"
	}
	return fmt.Sprintf("last %s days", r)
}
