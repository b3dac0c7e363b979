package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/xuri/excelize/v2"
)

// parseRangeReference parses a series formula such as 'Sheet 1'!$A$2:$A$10.
// A reference without a sheet name returns an empty sheet. A single cell
// reference is returned as a one-cell area.
func parseRangeReference(ref string) (string, models.CellArea, bool) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "=")
	if ref == "" || strings.Contains(ref, ",") {
		return "", models.CellArea{}, false
	}

	var sheet string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		sheet = strings.ReplaceAll(sheet, "''", "'")
		rangeStr = ref[idx+1:]
	}

	area, ok := parseRangeToArea(rangeStr)
	return sheet, area, ok
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.CellArea, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellArea{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellArea{}, false
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}

// readAreaValues reads the cells of a one-dimensional area in order.
func readAreaValues(f *excelize.File, sheet string, area models.CellArea) ([]interface{}, error) {
	var values []interface{}
	for r := area.R1; r <= area.R2; r++ {
		for c := area.C1; c <= area.C2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			if v == "" {
				values = append(values, nil)
				continue
			}
			values = append(values, parseValue(v))
		}
	}
	return values, nil
}

// ReadSeriesPoints pairs the X and Y ranges of a chart series into draft
// points. References without a sheet name resolve against sheet. A series
// without an X range uses 1-based positions as X values. Unequal ranges pair
// up to the shorter length.
func ReadSeriesPoints(f *excelize.File, sheet string, s models.ChartSeries) ([]models.DraftPoint, error) {
	ySheet, yArea, ok := parseRangeReference(s.YRange)
	if !ok {
		return nil, fmt.Errorf("invalid y range %q", s.YRange)
	}
	if ySheet == "" {
		ySheet = sheet
	}
	ys, err := readAreaValues(f, ySheet, yArea)
	if err != nil {
		return nil, err
	}

	var xs []interface{}
	if s.XRange != "" {
		xSheet, xArea, ok := parseRangeReference(s.XRange)
		if !ok {
			return nil, fmt.Errorf("invalid x range %q", s.XRange)
		}
		if xSheet == "" {
			xSheet = sheet
		}
		if xs, err = readAreaValues(f, xSheet, xArea); err != nil {
			return nil, err
		}
	} else {
		xs = make([]interface{}, len(ys))
		for i := range xs {
			xs[i] = int64(i + 1)
		}
	}

	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	draft := make([]models.DraftPoint, n)
	for i := 0; i < n; i++ {
		draft[i] = models.DraftPoint{X: xs[i], Y: ys[i]}
	}
	return draft, nil
}

// SeriesName returns the cached series name, or the text of the cell its
// name formula points at.
func SeriesName(f *excelize.File, sheet string, s models.ChartSeries) string {
	if s.Name != "" || s.NameRange == "" {
		return s.Name
	}
	nameSheet, area, ok := parseRangeReference(s.NameRange)
	if !ok {
		return ""
	}
	if nameSheet == "" {
		nameSheet = sheet
	}
	cell, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return ""
	}
	v, err := f.GetCellValue(nameSheet, cell)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}
