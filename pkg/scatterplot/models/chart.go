package models

// ChartSeries holds the range formulas of one workbook chart series,
// e.g. "Sheet1!$A$2:$A$10".
type ChartSeries struct {
	Name      string `json:"name"`
	NameRange string `json:"name_range,omitempty"`
	// XRange comes from xVal in scatter charts and cat elsewhere.
	XRange string `json:"x_range,omitempty"`
	// YRange comes from yVal in scatter charts and val elsewhere.
	YRange string `json:"y_range,omitempty"`
}

// Chart describes a chart found in a workbook drawing.
type Chart struct {
	Sheet      string `json:"sheet"`
	Name       string `json:"name"`
	ChartType  string `json:"chart_type"`
	Title      string `json:"title,omitempty"`
	XAxisTitle string `json:"x_axis_title,omitempty"`
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is [min, max] when both bounds are fixed on the vertical axis.
	YAxisRange []float64     `json:"y_axis_range,omitempty"`
	Series     []ChartSeries `json:"series"`
	// L and T are the drawing offsets in pixels, used to order charts.
	L int `json:"l"`
	T int `json:"t"`
}

// IsScatter reports whether the chart plots x against y values.
func (c Chart) IsScatter() bool {
	return c.ChartType == "XYScatter"
}

// CellArea is an inclusive, 1-based block of cells.
type CellArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}
