package out

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	reportout "breathe/internal/modules/report/port/out"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
)

// BlockChartRenderer draws one horizontal bar per label, scaled to the
// largest value.
type BlockChartRenderer struct{}

func NewBlockChartRenderer() reportout.ChartRenderer {
	return &BlockChartRenderer{}
}

func (r *BlockChartRenderer) Render(labels []string, values []int, width int) string {
	if width < 1 || len(labels) == 0 || len(labels) != len(values) {
		return ""
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for i, label := range labels {
		filled := 0
		if max > 0 {
			filled = values[i] * width / max
		}
		if values[i] > 0 && filled == 0 {
			filled = 1
		}
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			trackStyle.Render(strings.Repeat("░", width-filled))
		fmt.Fprintf(&b, "%s  %s %d\n", label, bar, values[i])
	}
	return b.String()
}
