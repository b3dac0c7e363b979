package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

func linearInput() Input {
	cfg := models.DefaultLayoutConfig()
	cfg.AnchorOrigin = false
	return Input{
		Points: models.PointSet{{X: 2, Y: 4}, {X: 0, Y: 0}, {X: 1, Y: 2}},
		Layout: cfg,
		Labels: models.AxisLabels{XName: "Time", XUnits: "s", YName: "Distance", YUnits: "m"},
	}
}

func countRole(plan *RenderPlan, role models.Role) int {
	n := 0
	for _, p := range plan.Primitives {
		if p.PrimitiveRole() == role {
			n++
		}
	}
	return n
}

func TestPlanStatisticsIgnoreToggles(t *testing.T) {
	_, st := Plan(linearInput())

	require.NotNil(t, st.BestFit)
	require.NotNil(t, st.RSquared)
	require.NotNil(t, st.Integration)
	assert.InDelta(t, 2.0, st.BestFit.Slope, 1e-12)
	assert.InDelta(t, 0.0, st.BestFit.YIntercept, 1e-12)
	assert.InDelta(t, 1.0, *st.RSquared, 1e-12)
	assert.InDelta(t, 4.0, *st.Integration, 1e-12)
}

func TestPlanOrder(t *testing.T) {
	in := linearInput()
	in.Toggles = models.Toggles{ConnectingLines: true, BestFit: true, Coordinates: true}
	plan, _ := Plan(in)

	var roles []models.Role
	for _, p := range plan.Primitives {
		if len(roles) == 0 || roles[len(roles)-1] != p.PrimitiveRole() {
			roles = append(roles, p.PrimitiveRole())
		}
	}

	// x-axis block, y-axis block, captions, per-point groups, best fit last
	require.GreaterOrEqual(t, len(roles), 6)
	assert.Equal(t, models.RoleAxis, roles[0])
	assert.Equal(t, models.RoleBestFit, roles[len(roles)-1])

	first := plan.Primitives[0].(models.Line)
	assert.Equal(t, first.From.Y, first.To.Y, "x-axis first and horizontal")

	var axes []models.Line
	for _, p := range plan.Primitives {
		if l, ok := p.(models.Line); ok && l.Role == models.RoleAxis {
			axes = append(axes, l)
		}
	}
	require.Len(t, axes, 2)
	assert.Equal(t, axes[1].From.X, axes[1].To.X, "y-axis vertical")
}

func TestPlanPointsAreSortedAndConnected(t *testing.T) {
	in := linearInput()
	in.Toggles.ConnectingLines = true
	plan, _ := Plan(in)

	var circles []models.Circle
	var connectors []models.Line
	for _, p := range plan.Primitives {
		switch v := p.(type) {
		case models.Circle:
			circles = append(circles, v)
		case models.Line:
			if v.Role == models.RoleConnector {
				connectors = append(connectors, v)
			}
		}
	}

	require.Len(t, circles, 3)
	require.Len(t, connectors, 2)
	assert.Less(t, circles[0].Center.X, circles[1].Center.X)
	assert.Less(t, circles[1].Center.X, circles[2].Center.X)
	assert.Equal(t, circles[0].Center, connectors[0].From)
	assert.Equal(t, circles[1].Center, connectors[0].To)
	assert.Equal(t, float64(PointRadius), circles[0].Radius)

	// first point (0,0) lands on the origin crossing
	assert.InDelta(t, plan.Layout.Y.Crossing, circles[0].Center.X, 1e-9)
	assert.InDelta(t, plan.Layout.X.Crossing, circles[0].Center.Y, 1e-9)
}

func TestPlanTogglesGatePrimitives(t *testing.T) {
	plan, _ := Plan(linearInput())

	assert.Zero(t, countRole(plan, models.RoleConnector))
	assert.Zero(t, countRole(plan, models.RoleCoordinate))
	assert.Zero(t, countRole(plan, models.RoleBestFit))
	assert.Equal(t, 3, countRole(plan, models.RolePoint))
	assert.Equal(t, 2, countRole(plan, models.RoleAxisLabel))
	assert.Equal(t, len(plan.Layout.X.Ticks)+len(plan.Layout.Y.Ticks), countRole(plan, models.RoleTick))
}

func TestPlanCoordinateText(t *testing.T) {
	in := linearInput()
	in.Toggles.Coordinates = true
	plan, _ := Plan(in)

	var texts []models.Text
	for _, p := range plan.Primitives {
		if v, ok := p.(models.Text); ok && v.Role == models.RoleCoordinate {
			texts = append(texts, v)
		}
	}
	require.Len(t, texts, 3)
	assert.Equal(t, "(0, 0)", texts[0].Value)
	assert.Equal(t, "(2, 4)", texts[2].Value)
	origin := plan.Layout.Virtualize(models.Point{})
	assert.InDelta(t, origin.X+CoordinateOffset, texts[0].Anchor.X, 1e-9)
	assert.InDelta(t, origin.Y+CoordinateOffset, texts[0].Anchor.Y, 1e-9)
}

func TestPlanBestFitSpansOneTickBeyondData(t *testing.T) {
	in := linearInput()
	in.Toggles.BestFit = true
	plan, _ := Plan(in)

	var fit models.Line
	for _, p := range plan.Primitives {
		if v, ok := p.(models.Line); ok && v.Role == models.RoleBestFit {
			fit = v
		}
	}

	low := plan.Layout.Devirtualize(fit.From)
	high := plan.Layout.Devirtualize(fit.To)
	assert.InDelta(t, -1, low.X, 1e-9)
	assert.InDelta(t, -2, low.Y, 1e-9)
	assert.InDelta(t, 3, high.X, 1e-9)
	assert.InDelta(t, 6, high.Y, 1e-9)
}

func TestPlanRepeatedXOmitsBestFit(t *testing.T) {
	in := Input{
		Points:  models.PointSet{{X: 5, Y: 1}, {X: 5, Y: 3}},
		Layout:  models.DefaultLayoutConfig(),
		Toggles: models.Toggles{BestFit: true, RSquared: true, ConnectingLines: true},
	}

	var plan *RenderPlan
	var st models.Statistics
	require.NotPanics(t, func() { plan, st = Plan(in) })

	assert.Nil(t, st.BestFit)
	assert.Nil(t, st.RSquared)
	assert.Zero(t, countRole(plan, models.RoleBestFit))
	assert.Equal(t, 2, countRole(plan, models.RolePoint))
}

func TestPlanEmpty(t *testing.T) {
	plan, st := Plan(Input{Layout: models.DefaultLayoutConfig()})

	assert.Equal(t, models.Statistics{}, st)
	assert.Zero(t, countRole(plan, models.RolePoint))
	assert.Equal(t, 2, countRole(plan, models.RoleAxis))
}

func TestPlanSkipsBlankAxisLabels(t *testing.T) {
	in := linearInput()
	in.Labels = models.AxisLabels{}
	plan, _ := Plan(in)
	assert.Zero(t, countRole(plan, models.RoleAxisLabel))

	in.Labels = models.AxisLabels{XName: "Time"}
	plan, _ = Plan(in)
	require.Equal(t, 1, countRole(plan, models.RoleAxisLabel))
	for _, p := range plan.Primitives {
		if v, ok := p.(models.Text); ok && v.Role == models.RoleAxisLabel {
			assert.Equal(t, "Time", v.Value)
			assert.Zero(t, v.Rotation)
		}
	}
}

func TestPlanRotatedYLabel(t *testing.T) {
	plan, _ := Plan(linearInput())

	var captions []models.Text
	for _, p := range plan.Primitives {
		if v, ok := p.(models.Text); ok && v.Role == models.RoleAxisLabel {
			captions = append(captions, v)
		}
	}
	require.Len(t, captions, 2)
	assert.Equal(t, "Distance (m)", captions[0].Value)
	assert.Equal(t, -90.0, captions[0].Rotation)
	assert.Equal(t, 525.0/2, captions[0].Anchor.Y)
	assert.Equal(t, 0.5, captions[0].AlignX)
	assert.Equal(t, "Time (s)", captions[1].Value)
	assert.Zero(t, captions[1].Rotation)
}
