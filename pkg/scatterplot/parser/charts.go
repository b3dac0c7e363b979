package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// ChartTypeMap maps OOXML plot element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":    "Line",
	"line3DChart":  "3DLine",
	"barChart":     "Bar",
	"areaChart":    "Area",
	"pieChart":     "Pie",
	"scatterChart": "XYScatter",
	"bubbleChart":  "Bubble",
	"radarChart":   "Radar",
}

// emuPerPixel converts drawing offsets (English Metric Units) to 96 DPI pixels.
const emuPerPixel = 914400 / 96

// frame is a chart anchored in a drawing part.
type frame struct {
	name  string
	chart string
	left  int
	top   int
}

// ExtractCharts reads chart metadata from an xlsx file, keyed by sheet name.
// Charts within a sheet are ordered top to bottom, then left to right.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := worksheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for sheetName, sheetPart := range sheets {
		var charts []models.Chart
		for _, fr := range sheetFrames(&r.Reader, sheetPart) {
			data, err := part(&r.Reader, fr.chart)
			if err != nil || data == nil {
				logrus.WithError(err).Warnf("skipping unreadable chart part %s", fr.chart)
				continue
			}
			chart := parseChartXML(data)
			chart.Sheet = sheetName
			chart.Name = fr.name
			chart.L, chart.T = fr.left, fr.top
			charts = append(charts, chart)
		}
		if len(charts) == 0 {
			continue
		}
		sort.SliceStable(charts, func(i, j int) bool {
			if charts[i].T != charts[j].T {
				return charts[i].T < charts[j].T
			}
			return charts[i].L < charts[j].L
		})
		result[sheetName] = charts
	}

	return result, nil
}

// ExtractScatterSeries returns the scatter charts with at least one series
// drawn on a sheet, in chart order. An empty sheet name selects every sheet,
// in sheet name order.
func ExtractScatterSeries(xlsxPath, sheet string) ([]models.Chart, error) {
	bySheet, err := ExtractCharts(xlsxPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(bySheet))
	for name := range bySheet {
		if sheet == "" || name == sheet {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var result []models.Chart
	for _, name := range names {
		for _, c := range bySheet[name] {
			if c.IsScatter() && len(c.Series) > 0 {
				result = append(result, c)
			}
		}
	}
	return result, nil
}

// sheetFrames follows sheet -> drawing -> chart relationships.
func sheetFrames(r *zip.Reader, sheetPart string) []frame {
	sheetRels, err := readRelationships(r, sheetPart)
	if err != nil {
		return nil
	}

	var frames []frame
	for _, drawing := range targetsOf(sheetRels, "drawing") {
		data, err := part(r, drawing)
		if err != nil || data == nil {
			continue
		}
		drawingRels, err := readRelationships(r, drawing)
		if err != nil {
			continue
		}
		charts := targetsOf(drawingRels, "chart")

		for _, fr := range parseDrawing(data) {
			if target, ok := charts[fr.chart]; ok {
				fr.chart = target
				frames = append(frames, fr)
			}
		}
	}
	return frames
}

// parseDrawing returns the chart frames of a drawing part. The chart field
// holds the relationship id until resolved by the caller.
func parseDrawing(data []byte) []frame {
	d := decoder(data)
	var frames []frame
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			if fr := parseAnchor(d); fr.chart != "" {
				frames = append(frames, fr)
			}
			return true
		}
		return false
	})
	return frames
}

func parseAnchor(d *xml.Decoder) frame {
	var fr frame
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "cNvPr":
			fr.name = attr(se, "name")
		case "off":
			if x, err := strconv.ParseInt(attr(se, "x"), 10, 64); err == nil {
				fr.left = int(x / emuPerPixel)
			}
			if y, err := strconv.ParseInt(attr(se, "y"), 10, 64); err == nil {
				fr.top = int(y / emuPerPixel)
			}
		case "chart":
			fr.chart = attr(se, "id")
		}
		return false
	})
	return fr
}

// parseChartXML parses a chart part.
func parseChartXML(data []byte) models.Chart {
	d := decoder(data)
	chart := models.Chart{}

	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			// only the chart title; axis titles live inside plotArea
			chart.Title = richText(d)
			return true
		case "plotArea":
			parsePlotArea(d, &chart)
			return true
		}
		return false
	})

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// richText joins the text runs of the element just opened.
func richText(d *xml.Decoder) string {
	var sb strings.Builder
	walk(d, func(se xml.StartElement) bool {
		if se.Name.Local == "t" {
			sb.WriteString(text(d))
			return true
		}
		return false
	})
	return strings.TrimSpace(sb.String())
}

// parsePlotArea reads the first plot's series and the value axes.
func parsePlotArea(d *xml.Decoder, chart *models.Chart) {
	walk(d, func(se xml.StartElement) bool {
		if ct, ok := ChartTypeMap[se.Name.Local]; ok {
			if chart.ChartType != "" {
				_ = d.Skip()
				return true
			}
			chart.ChartType = ct
			walk(d, func(se xml.StartElement) bool {
				if se.Name.Local != "ser" {
					return false
				}
				chart.Series = append(chart.Series, parseSeries(d))
				return true
			})
			return true
		}

		if se.Name.Local == "valAx" {
			axis := parseValueAxis(d)
			if axis.horizontal() {
				chart.XAxisTitle = axis.title
			} else {
				chart.YAxisTitle = axis.title
				chart.YAxisRange = axis.bounds
			}
			return true
		}
		return false
	})
}

// parseSeries reads one c:ser element. Scatter series carry xVal/yVal,
// category charts carry cat/val.
func parseSeries(d *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "tx":
			s.NameRange, s.Name = formulaAndCache(d)
		case "cat", "xVal":
			s.XRange, _ = formulaAndCache(d)
		case "val", "yVal":
			s.YRange, _ = formulaAndCache(d)
		default:
			return false
		}
		return true
	})
	return s
}

// formulaAndCache returns the c:f formula and the first cached c:v value.
func formulaAndCache(d *xml.Decoder) (string, string) {
	var formula, cached string
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "f":
			if formula == "" {
				formula = strings.TrimSpace(text(d))
			} else {
				_ = d.Skip()
			}
			return true
		case "v":
			if cached == "" {
				cached = strings.TrimSpace(text(d))
			} else {
				_ = d.Skip()
			}
			return true
		}
		return false
	})
	return formula, cached
}

// valueAxis is the part of a c:valAx element kept in models.Chart.
type valueAxis struct {
	title    string
	position string
	bounds   []float64
}

// horizontal reports whether the axis runs along the bottom or top edge.
func (a valueAxis) horizontal() bool {
	return a.position == "b" || a.position == "t"
}

func parseValueAxis(d *xml.Decoder) valueAxis {
	var axis valueAxis
	var lo, hi *float64
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			axis.title = richText(d)
			return true
		case "axPos":
			axis.position = attr(se, "val")
		case "min", "max":
			v, err := strconv.ParseFloat(attr(se, "val"), 64)
			if err != nil {
				break
			}
			if se.Name.Local == "min" {
				lo = &v
			} else {
				hi = &v
			}
		}
		return false
	})
	if lo != nil && hi != nil {
		axis.bounds = []float64{*lo, *hi}
	}
	return axis
}
