package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

func unanchored() models.LayoutConfig {
	cfg := models.DefaultLayoutConfig()
	cfg.AnchorOrigin = false
	return cfg
}

func TestNewLinearScenario(t *testing.T) {
	ps := models.PointSet{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}}
	l := New(AnalyzeRange(ps, false), unanchored())

	assert.InDelta(t, 205, l.X.Scale, 1e-9)
	assert.InDelta(t, 67.5, l.Y.Scale, 1e-9)

	origin := l.Virtualize(models.Point{X: 0, Y: 0})
	assert.InDelta(t, 265, origin.X, 1e-9)
	assert.InDelta(t, 397.5, origin.Y, 1e-9)

	// axis lines pass through the data origin
	assert.InDelta(t, origin.Y, l.X.Crossing, 1e-9)
	assert.InDelta(t, origin.X, l.Y.Crossing, 1e-9)

	require.Len(t, l.X.Ticks, 5)
	assert.Equal(t, -1.0, l.X.Ticks[0].Value)
	assert.Equal(t, 3.0, l.X.Ticks[4].Value)
	assert.InDelta(t, 60, l.X.Ticks[0].Offset, 1e-9)
	assert.InDelta(t, 880, l.X.Ticks[4].Offset, 1e-9)

	require.Len(t, l.Y.Ticks, 7)
	assert.Equal(t, 5.0, l.Y.Ticks[0].Value)
	assert.Equal(t, -1.0, l.Y.Ticks[6].Value)
	assert.InDelta(t, 465, l.Y.Ticks[6].Offset, 1e-9)
}

func TestAxisCrossingPositiveRange(t *testing.T) {
	cfg := models.DefaultLayoutConfig()
	l := New(AnalyzeRange(models.PointSet{{X: 2, Y: 3}, {X: 4, Y: 7}}, true), cfg)

	// anchored minimums are 1, so both ranges are strictly positive
	assert.InDelta(t, cfg.Height-cfg.Cushion, l.X.Crossing, 1e-9, "x-axis at bottom edge")
	assert.InDelta(t, cfg.Cushion, l.Y.Crossing, 1e-9, "y-axis at left edge")
}

func TestAxisCrossingNegativeRange(t *testing.T) {
	cfg := unanchored()
	l := New(AnalyzeRange(models.PointSet{{X: -5, Y: -3}, {X: -2, Y: -1}}, false), cfg)

	assert.InDelta(t, cfg.Cushion, l.X.Crossing, 1e-9, "x-axis at top edge")
	assert.InDelta(t, cfg.Width-cfg.Cushion, l.Y.Crossing, 1e-9, "y-axis at right edge")
}

func TestAxisCrossingTopWinsWhenAnchoredAboveNegativeData(t *testing.T) {
	cfg := models.DefaultLayoutConfig()
	l := New(AnalyzeRange(models.PointSet{{X: 2, Y: -3}, {X: 3, Y: -2}}, true), cfg)

	// MinY is forced to 1 but MaxY < 0 is checked first
	assert.InDelta(t, cfg.Cushion, l.X.Crossing, 1e-9)
}

func TestDegenerateSinglePoint(t *testing.T) {
	cfg := unanchored()
	l := New(AnalyzeRange(models.PointSet{{X: 3, Y: 3}}, false), cfg)

	assert.Equal(t, 0.0, l.X.Span)
	assert.Equal(t, 0.0, l.Y.Span)
	assert.Len(t, l.X.Ticks, 3)
	assert.Len(t, l.Y.Ticks, 3)

	center := l.Virtualize(models.Point{X: 3, Y: 3})
	assert.InDelta(t, cfg.Width/2, center.X, 1e-9)
	assert.InDelta(t, cfg.Height/2, center.Y, 1e-9)
}

func TestScaleFallsBackWhenSpanCancelsMargin(t *testing.T) {
	cfg := models.DefaultLayoutConfig()
	// anchoring pushes MinX above MaxX: span -2 leaves no divisor
	l := New(AnalyzeRange(models.PointSet{{X: -1, Y: 5}}, true), cfg)

	assert.Equal(t, -2.0, l.X.Span)
	assert.Equal(t, cfg.Width-cfg.Cushion, l.X.Scale)
	assert.Len(t, l.X.Ticks, 1)
}

func TestFractionalSpanTicks(t *testing.T) {
	l := New(models.Range{MinX: 0.5, MaxX: 3.2, MinY: 0, MaxY: 1}, unanchored())

	require.Len(t, l.X.Ticks, 5)
	assert.InDelta(t, -0.5, l.X.Ticks[0].Value, 1e-12)
	assert.InDelta(t, 3.5, l.X.Ticks[4].Value, 1e-12)
}

func TestTicksAreCappedForWideSpans(t *testing.T) {
	l := New(AnalyzeRange(models.PointSet{{X: 0, Y: 0}, {X: 2e7, Y: 1}}, false), unanchored())

	require.Len(t, l.X.Ticks, MaxTicks)
	assert.Equal(t, -1.0, l.X.Ticks[0].Value)
	stride := l.X.Ticks[1].Value - l.X.Ticks[0].Value
	assert.Equal(t, 10001.0, stride)
	for i := 1; i < len(l.X.Ticks); i++ {
		assert.Equal(t, stride, l.X.Ticks[i].Value-l.X.Ticks[i-1].Value)
	}
	assert.LessOrEqual(t, l.X.Ticks[len(l.X.Ticks)-1].Value, l.X.Max+1)

	require.Len(t, l.Y.Ticks, 4)
	assert.Equal(t, 2.0, l.Y.Ticks[0].Value)
}

func TestTicksOmittedForInfiniteSpan(t *testing.T) {
	l := New(models.Range{MinX: -1.7e308, MaxX: 1.7e308, MinY: 0, MaxY: 1}, unanchored())

	assert.Empty(t, l.X.Ticks)
	assert.Len(t, l.Y.Ticks, 4)
}

func TestVirtualizeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		ps := models.PointSet{
			{X: rnd.Float64()*200 - 100, Y: rnd.Float64()*200 - 100},
			{X: rnd.Float64()*200 - 100, Y: rnd.Float64()*200 - 100},
		}
		rng := AnalyzeRange(ps, false)
		l := New(rng, unanchored())

		p := models.Point{
			X: rng.MinX - 1 + rnd.Float64()*(rng.XSpan()+2),
			Y: rng.MinY - 1 + rnd.Float64()*(rng.YSpan()+2),
		}
		back := l.Devirtualize(l.Virtualize(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestVirtualizeInvertsRows(t *testing.T) {
	l := New(models.Range{MinX: 0, MaxX: 1, MinY: 0, MaxY: 10}, unanchored())

	low := l.Virtualize(models.Point{X: 0, Y: 0})
	high := l.Virtualize(models.Point{X: 0, Y: 10})
	assert.Less(t, high.Y, low.Y, "larger y must be drawn higher up")
}
