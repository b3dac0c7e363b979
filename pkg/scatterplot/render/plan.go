// Package render turns a point set into an ordered list of drawing
// primitives and replays that list onto raster or vector surfaces.
package render

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/layout"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/stats"
)

// Fixed marker geometry in pixels.
const (
	MarkerLength     = 10
	MarkerTextHeight = 6
	PointRadius      = 3
	CoordinateOffset = 5
)

// Input is everything a render depends on.
type Input struct {
	Points  models.PointSet
	Layout  models.LayoutConfig
	Toggles models.Toggles
	Labels  models.AxisLabels
}

// RenderPlan is the ordered drawing program for one chart.
type RenderPlan struct {
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Layout     *layout.Layout     `json:"layout"`
	Primitives []models.Primitive `json:"primitives"`
}

// Plan computes the drawing program and the statistics for in.
// Statistics are always computed; toggles only decide what gets drawn.
func Plan(in Input) (*RenderPlan, models.Statistics) {
	cfg := in.Layout
	sorted := in.Points.SortedByX()

	rng := layout.AnalyzeRange(sorted, cfg.AnchorOrigin)
	l := layout.New(rng, cfg)
	st := stats.Compute(sorted)

	logrus.WithFields(logrus.Fields{
		"points":  len(sorted),
		"range":   rng,
		"scale_x": l.X.Scale,
		"scale_y": l.Y.Scale,
	}).Debug("planned chart layout")

	p := &planner{
		plan: &RenderPlan{Width: cfg.Width, Height: cfg.Height, Layout: l},
		cfg:  cfg,
	}

	p.xAxis(l)
	p.yAxis(l)
	p.axisLabels(in.Labels)

	var previous *models.Pixel
	for _, pt := range sorted {
		v := l.Virtualize(pt)
		p.add(models.Circle{Center: v, Radius: PointRadius, Role: models.RolePoint})

		if in.Toggles.ConnectingLines && previous != nil {
			p.add(models.Line{From: *previous, To: v, Role: models.RoleConnector})
		}
		if in.Toggles.Coordinates {
			p.add(models.Text{
				Anchor: models.Pixel{X: v.X + CoordinateOffset, Y: v.Y + CoordinateOffset},
				Value:  pt.Coordinate(),
				Role:   models.RoleCoordinate,
			})
		}
		previous = &v
	}

	if in.Toggles.BestFit && st.BestFit != nil {
		// extend one tick past the data on each side
		lowX, highX := rng.MinX-1, rng.MaxX+1
		p.add(models.Line{
			From: l.Virtualize(models.Point{X: lowX, Y: st.BestFit.At(lowX)}),
			To:   l.Virtualize(models.Point{X: highX, Y: st.BestFit.At(highX)}),
			Role: models.RoleBestFit,
		})
	}

	return p.plan, st
}

type planner struct {
	plan *RenderPlan
	cfg  models.LayoutConfig
}

func (p *planner) add(prim models.Primitive) {
	p.plan.Primitives = append(p.plan.Primitives, prim)
}

func (p *planner) xAxis(l *layout.Layout) {
	row := l.X.Crossing
	p.add(models.Line{
		From: models.Pixel{X: p.cfg.Cushion, Y: row},
		To:   models.Pixel{X: p.cfg.Width - p.cfg.Cushion, Y: row},
		Role: models.RoleAxis,
	})

	for _, tick := range l.X.Ticks {
		p.add(models.Line{
			From: models.Pixel{X: tick.Offset, Y: row - MarkerLength/2},
			To:   models.Pixel{X: tick.Offset, Y: row + MarkerLength/2},
			Role: models.RoleTick,
		})
		p.add(models.Text{
			Anchor: models.Pixel{X: tick.Offset, Y: row + p.cfg.Cushion/4},
			Value:  models.FormatNumber(tick.Value),
			AlignX: 0.5,
			Role:   models.RoleTickLabel,
		})
	}
}

func (p *planner) yAxis(l *layout.Layout) {
	col := l.Y.Crossing
	p.add(models.Line{
		From: models.Pixel{X: col, Y: p.cfg.Cushion},
		To:   models.Pixel{X: col, Y: p.cfg.Height - p.cfg.Cushion},
		Role: models.RoleAxis,
	})

	// labels sit left of the axis, a quarter cushion plus half a marker away
	labelX := col - p.cfg.Cushion/4 - MarkerLength/2
	for _, tick := range l.Y.Ticks {
		p.add(models.Line{
			From: models.Pixel{X: col - MarkerLength/2, Y: tick.Offset},
			To:   models.Pixel{X: col + MarkerLength/2, Y: tick.Offset},
			Role: models.RoleTick,
		})
		p.add(models.Text{
			Anchor: models.Pixel{X: labelX, Y: tick.Offset + MarkerTextHeight/2},
			Value:  models.FormatNumber(tick.Value),
			Role:   models.RoleTickLabel,
		})
	}
}

func (p *planner) axisLabels(labels models.AxisLabels) {
	if y := labels.YLabel(); y != "" {
		p.add(models.Text{
			Anchor:   models.Pixel{X: p.cfg.Cushion / 2, Y: p.cfg.Height / 2},
			Value:    y,
			AlignX:   0.5,
			Rotation: -90,
			Role:     models.RoleAxisLabel,
		})
	}
	if x := labels.XLabel(); x != "" {
		p.add(models.Text{
			Anchor: models.Pixel{X: p.cfg.Width / 2, Y: p.cfg.Height - p.cfg.Cushion/2},
			Value:  x,
			AlignX: 0.5,
			Role:   models.RoleAxisLabel,
		})
	}
}
