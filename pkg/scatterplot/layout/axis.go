package layout

import (
	"math"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Tick is a labelled position along an axis.
type Tick struct {
	// Value is the data value at the tick.
	Value float64 `json:"value"`
	// Offset is the pixel position along the axis (column for x, row for y).
	Offset float64 `json:"offset"`
}

// Axis describes one dimension of the layout.
type Axis struct {
	// Min and Max are the range bounds on this axis.
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	// Span is Max - Min.
	Span float64 `json:"span"`
	// Scale is pixels per data unit.
	Scale float64 `json:"scale"`
	// Crossing is the pixel column (y-axis) or row (x-axis) where the axis line is drawn.
	Crossing float64 `json:"crossing"`
	// Ticks are ordered left to right (x) or top to bottom (y).
	Ticks []Tick `json:"ticks"`
}

// Layout is the data-to-pixel mapping for one render.
type Layout struct {
	Config models.LayoutConfig `json:"config"`
	Range  models.Range        `json:"range"`
	// X is the horizontal axis; its Crossing is the row of the x-axis line.
	X Axis `json:"x"`
	// Y is the vertical axis; its Crossing is the column of the y-axis line.
	Y Axis `json:"y"`
}

// New builds the layout for rng on a surface described by cfg.
func New(rng models.Range, cfg models.LayoutConfig) *Layout {
	l := &Layout{Config: cfg, Range: rng}

	l.X = Axis{Min: rng.MinX, Max: rng.MaxX, Span: rng.XSpan()}
	l.X.Scale = scale(cfg.DrawWidth(), l.X.Span, cfg.Width-cfg.Cushion)

	l.Y = Axis{Min: rng.MinY, Max: rng.MaxY, Span: rng.YSpan()}
	l.Y.Scale = scale(cfg.DrawHeight(), l.Y.Span, cfg.Height-cfg.Cushion)

	l.X.Crossing = l.xAxisRow()
	l.Y.Crossing = l.yAxisColumn()

	for _, pos := range tickPositions(l.X.Span) {
		l.X.Ticks = append(l.X.Ticks, Tick{
			Value:  l.X.Min - 1 + pos,
			Offset: cfg.Cushion + l.X.Scale*pos,
		})
	}
	for _, pos := range tickPositions(l.Y.Span) {
		l.Y.Ticks = append(l.Y.Ticks, Tick{
			Value:  l.Y.Max + 1 - pos,
			Offset: cfg.Cushion + l.Y.Scale*pos,
		})
	}

	return l
}

// scale reserves one extra tick of space on each side of the data.
func scale(available, span, fallback float64) float64 {
	divisor := span + 2
	if divisor == 0 {
		return fallback
	}
	s := available / divisor
	if math.IsNaN(s) || math.IsInf(s, 0) || s == 0 {
		return fallback
	}
	return s
}

// MaxTicks bounds the ticks generated per axis.
const MaxTicks = 2000

// tickPositions returns the unit offsets 0..span+2 inclusive. Wider spans
// keep every stride-th offset so that at most MaxTicks remain.
func tickPositions(span float64) []float64 {
	last := span + 2
	if math.IsNaN(last) || math.IsInf(last, 0) || last < 0 {
		return nil
	}
	last = math.Floor(last)

	stride := 1.0
	if last+1 > MaxTicks {
		stride = math.Ceil((last + 1) / MaxTicks)
	}

	var out []float64
	for i := 0; i < MaxTicks && float64(i)*stride <= last; i++ {
		out = append(out, float64(i)*stride)
	}
	return out
}

// xAxisRow picks the row of the horizontal axis line: top edge when all y
// are negative, bottom edge when all y are positive, else the row of y = 0.
func (l *Layout) xAxisRow() float64 {
	switch {
	case l.Range.MaxY < 0:
		return l.Config.Cushion
	case l.Range.MinY > 0:
		return l.Config.Cushion + (l.Y.Span+2)*l.Y.Scale
	default:
		return l.Virtualize(models.Point{X: 0, Y: 0}).Y
	}
}

// yAxisColumn picks the column of the vertical axis line: right edge when all
// x are negative, left edge when all x are positive, else the column of x = 0.
func (l *Layout) yAxisColumn() float64 {
	switch {
	case l.Range.MaxX < 0:
		return l.Config.Cushion + (l.X.Span+2)*l.X.Scale
	case l.Range.MinX > 0:
		return l.Config.Cushion
	default:
		return l.Virtualize(models.Point{X: 0, Y: 0}).X
	}
}

// Virtualize maps a data point to a surface pixel.
func (l *Layout) Virtualize(p models.Point) models.Pixel {
	vx := (p.X-l.Range.MinX+1)*l.X.Scale + l.Config.Cushion
	vy := (p.Y-l.Range.MinY+1)*l.Y.Scale + l.Config.Cushion
	return models.Pixel{X: vx, Y: l.Config.Height - vy}
}

// Devirtualize maps a surface pixel back to data space.
func (l *Layout) Devirtualize(px models.Pixel) models.Point {
	return models.Point{
		X: (px.X-l.Config.Cushion)/l.X.Scale + l.Range.MinX - 1,
		Y: (l.Config.Height-px.Y-l.Config.Cushion)/l.Y.Scale + l.Range.MinY - 1,
	}
}
