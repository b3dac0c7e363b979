package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DataSheet is the sheet holding the exported points.
const DataSheet = "Data"

// WriteWorkbook writes the report as an xlsx workbook: the points in
// columns A and B, the available statistics in columns D and E, and a
// scatter chart over the points.
func WriteWorkbook(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return err
	}

	xHeader, yHeader := headerOr(r.Labels.XLabel(), "X"), headerOr(r.Labels.YLabel(), "Y")
	if err := f.SetSheetRow(DataSheet, "A1", &[]interface{}{xHeader, yHeader}); err != nil {
		return err
	}
	for i, p := range r.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, cell, &[]interface{}{p.X, p.Y}); err != nil {
			return err
		}
	}

	if err := writeStatistics(f, r); err != nil {
		return err
	}

	if len(r.Points) > 0 {
		last := len(r.Points) + 1
		chart := &excelize.Chart{
			Type: excelize.Scatter,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", DataSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", DataSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", DataSheet, last),
			}},
			Title:  []excelize.RichTextRun{{Text: r.Title}},
			XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: xHeader}}},
			YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yHeader}}},
			Legend: excelize.ChartLegend{Position: "none"},
		}
		if err := f.AddChart(DataSheet, "G2", chart); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeStatistics(f *excelize.File, r Report) error {
	rows := [][]interface{}{{"Statistic", "Value"}}
	if fit := r.Statistics.BestFit; fit != nil {
		rows = append(rows,
			[]interface{}{"Slope", fit.Slope},
			[]interface{}{"Y-Intercept", fit.YIntercept},
			[]interface{}{"Equation", fit.Equation()},
		)
	}
	if r2 := r.Statistics.RSquared; r2 != nil {
		rows = append(rows, []interface{}{"R²", *r2})
	}
	if area := r.Statistics.Integration; area != nil {
		rows = append(rows, []interface{}{"Integration", *area})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(4, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func headerOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
