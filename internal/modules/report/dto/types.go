package dto

// RangeInput selects a window: "all", "" or a positive day count.
type RangeInput struct {
	Range string
}

type TextOutput struct {
	Lines []string
}

type ChartOutput struct {
	Labels   []string
	Values   []int
	Rendered string
}

type ExportOutput struct {
	Path string
}
