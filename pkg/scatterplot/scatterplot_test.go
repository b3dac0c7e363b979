package scatterplot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeWorkbook(t *testing.T, withChart bool) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Trials")
	require.NoError(t, err)
	rows := [][]interface{}{{"Time", "Speed"}, {1, 3}, {2, 5}, {3, 7}}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Trials", cell, &rows[i]))
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"first", "sheet"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{10, 20}))

	if withChart {
		require.NoError(t, f.AddChart("Trials", "D2", &excelize.Chart{
			Type: excelize.Scatter,
			Series: []excelize.ChartSeries{{
				Name:       "Trials!$B$1",
				Categories: "Trials!$A$2:$A$3",
				Values:     "Trials!$B$2:$B$3",
			}},
			XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Elapsed"}}},
		}))
	}

	path := filepath.Join(t.TempDir(), "trials.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "run.csv", "Time,Distance\n0,0\n1,2\nx,3\n2,4\n")

	ds, err := Load(path, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "run.csv", ds.Name)
	assert.Equal(t, "Time", ds.Labels.XName)
	assert.Equal(t, "Distance", ds.Labels.YName)
	assert.Len(t, ds.Draft, 4)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = Load(writeFile(t, "points.json", "[]"), LoadOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "broken.csv", "1,\"2\n"), LoadOptions{})
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "csv", loadErr.Component)

	_, err = Load(writeFile(t, "broken.xlsx", "not a zip"), LoadOptions{})
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "workbook", loadErr.Component)
}

func TestLoadWorkbookCells(t *testing.T) {
	path := writeWorkbook(t, false)

	ds, err := Load(path, LoadOptions{Sheet: "Trials", Source: SourceCells})
	require.NoError(t, err)
	assert.Equal(t, models.AxisLabels{XName: "Time", YName: "Speed"}, ds.Labels)
	assert.Len(t, ds.Draft, 3)

	ds, err = Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "first", ds.Labels.XName)
	assert.Equal(t, []models.DraftPoint{{X: int64(10), Y: int64(20)}}, ds.Draft)

	_, err = Load(path, LoadOptions{Sheet: "Nope"})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = Load(path, LoadOptions{Source: SourceChart})
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestLoadWorkbookChart(t *testing.T) {
	path := writeWorkbook(t, true)

	ds, err := Load(path, LoadOptions{Source: SourceAuto})
	require.NoError(t, err)

	assert.Equal(t, "Elapsed", ds.Labels.XName)
	assert.Equal(t, "Speed", ds.Labels.YName)
	assert.Equal(t, []models.DraftPoint{
		{X: int64(1), Y: int64(3)},
		{X: int64(2), Y: int64(5)},
	}, ds.Draft)
}

func TestAnalyze(t *testing.T) {
	draft := []models.DraftPoint{
		{X: "2", Y: 4},
		{X: 0, Y: "0"},
		{X: "", Y: 9},
		{X: 1, Y: 2.0},
	}
	opts := Options{Toggles: models.Toggles{BestFit: true}}

	res := Analyze(draft, opts, models.DefaultLayoutConfig())

	assert.Len(t, res.Points, 3)
	require.NotNil(t, res.Statistics.BestFit)
	assert.InDelta(t, 2.0, res.Statistics.BestFit.Slope, 1e-12)
	require.NotNil(t, res.Statistics.Integration)
	assert.InDelta(t, 4.0, *res.Statistics.Integration, 1e-12)

	displayed := res.Displayed()
	assert.NotNil(t, displayed.BestFit)
	assert.Nil(t, displayed.Integration)

	report := res.Report()
	assert.Equal(t, "y = 2.000x + 0.000", report.Equation)
	assert.Equal(t, models.Range{MinX: 1, MaxX: 2, MinY: 1, MaxY: 4}, report.Range)
}

func TestAnalyzeAnchorOverride(t *testing.T) {
	draft := []models.DraftPoint{{X: -3, Y: -2}, {X: 4, Y: 5}}
	off := false

	res := Analyze(draft, Options{AnchorOrigin: &off}, models.DefaultLayoutConfig())
	assert.False(t, res.Plan.Layout.Config.AnchorOrigin)
	assert.Equal(t, -3.0, res.Plan.Layout.Range.MinX)

	res = Analyze(draft, DefaultOptions(), models.DefaultLayoutConfig())
	assert.Equal(t, 1.0, res.Plan.Layout.Range.MinX)
}

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze(nil, DefaultOptions(), models.DefaultLayoutConfig())

	assert.Empty(t, res.Points)
	assert.Nil(t, res.Statistics.BestFit)
	assert.Nil(t, res.Statistics.RSquared)
	assert.Nil(t, res.Statistics.Integration)
	assert.NotEmpty(t, res.Plan.Primitives)
}

func TestRender(t *testing.T) {
	draft := []models.DraftPoint{{X: 1, Y: 1}, {X: 2, Y: 3}}
	res := Analyze(draft, DefaultOptions(), models.DefaultLayoutConfig())

	var png bytes.Buffer
	require.NoError(t, res.Render(context.Background(), &png, FormatPNG))
	assert.Equal(t, []byte("\x89PNG"), png.Bytes()[:4])

	var svg bytes.Buffer
	require.NoError(t, res.Render(context.Background(), &svg, FormatSVG))
	assert.Contains(t, svg.String(), "</svg>")

	assert.Error(t, res.Render(context.Background(), &svg, Format("gif")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, res.Render(ctx, &svg, FormatSVG), context.Canceled)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"chart.png", FormatPNG, false},
		{"CHART.SVG", FormatSVG, false},
		{"chart.svgz", FormatSVG, false},
		{"chart.gif", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := NewLoadError("a.xlsx", "chart", ErrNoSeries)
	assert.ErrorIs(t, err, ErrNoSeries)
	assert.Equal(t, `load error in "a.xlsx" (chart): no scatter chart series`, err.Error())
}
