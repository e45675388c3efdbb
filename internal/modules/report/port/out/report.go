package out

import "context"

// ArtifactWriter persists an export artifact and returns its full path.
type ArtifactWriter interface {
	WriteText(ctx context.Context, name, content string) (string, error)
}

// ChartRenderer turns parallel labels and values into a textual chart.
type ChartRenderer interface {
	Render(labels []string, values []int, width int) string
}
