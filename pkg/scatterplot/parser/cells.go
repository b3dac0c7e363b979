package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPoints reads draft points from the first two columns of a sheet's
// data block. A leading row with no numeric cell is returned as the header.
// Blank cells become nil coordinates and are dropped later by the sanitizer.
func ExtractPoints(f *excelize.File, sheetName string) ([]models.DraftPoint, []string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}

	block, ok := dataBlock(rows)
	if !ok {
		return nil, nil, nil
	}

	var header []string
	var points []models.DraftPoint
	for r := block.R1; r <= block.R2; r++ {
		row := rows[r-1]
		x := cellAt(row, block.C1-1)
		y := cellAt(row, block.C1)

		if r == block.R1 && isHeader(x, y) {
			header = []string{strings.TrimSpace(x), strings.TrimSpace(y)}
			continue
		}
		if x == "" && y == "" {
			continue
		}
		points = append(points, models.DraftPoint{X: draftValue(x), Y: draftValue(y)})
	}

	return points, header, nil
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// isHeader reports whether neither cell of a row holds a number.
func isHeader(cells ...string) bool {
	for _, c := range cells {
		if _, ok := parseValue(strings.TrimSpace(c)).(string); !ok {
			return false
		}
	}
	return true
}

func draftValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return parseValue(s)
}

// parseValue returns int64 for integers, float64 for other numbers and s
// itself for text.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// dataBlock returns the 1-based bounding box of the non-empty cells.
func dataBlock(rows [][]string) (models.CellArea, bool) {
	var area models.CellArea
	found := false
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if !found {
				area = models.CellArea{R1: r + 1, C1: c + 1, R2: r + 1, C2: c + 1}
				found = true
				continue
			}
			area.R1 = min(area.R1, r+1)
			area.R2 = max(area.R2, r+1)
			area.C1 = min(area.C1, c+1)
			area.C2 = max(area.C2, c+1)
		}
	}
	return area, found
}
