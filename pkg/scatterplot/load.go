package scatterplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/parser"
	"github.com/xuri/excelize/v2"
)

// Dataset is the raw content of an input file.
type Dataset struct {
	// Name is the base name of the input file.
	Name string
	// Labels holds axis names found in the file (header row or chart titles).
	Labels models.AxisLabels
	// Draft holds the unsanitized points in file order.
	Draft []models.DraftPoint
}

// Load reads draft points from a CSV file or an xlsx workbook.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return loadCSV(path)
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "csv", err)
	}
	defer f.Close()

	draft, header, err := parser.ReadCSV(f)
	if err != nil {
		return nil, NewLoadError(path, "csv", err)
	}

	ds := &Dataset{Name: filepath.Base(path), Draft: draft}
	if len(header) == 2 {
		ds.Labels = models.AxisLabels{XName: header[0], YName: header[1]}
	}
	return ds, nil
}

func loadWorkbook(path string, opts LoadOptions) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "workbook", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet != "" {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
		}
	}

	if opts.ShouldReadChart() {
		ds, err := loadChartSeries(f, path, sheet)
		switch {
		case err == nil:
			return ds, nil
		case opts.Source == SourceChart:
			return nil, err
		case !errors.Is(err, ErrNoSeries):
			logrus.WithError(err).Warn("reading chart series failed, falling back to cells")
		}
	}

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	draft, header, err := parser.ExtractPoints(f, sheet)
	if err != nil {
		return nil, NewLoadError(path, "cells", err)
	}

	ds := &Dataset{Name: filepath.Base(path), Draft: draft}
	if len(header) == 2 {
		ds.Labels = models.AxisLabels{XName: header[0], YName: header[1]}
	}
	return ds, nil
}

// loadChartSeries reads the first series of the first scatter chart.
func loadChartSeries(f *excelize.File, path, sheet string) (*Dataset, error) {
	charts, err := parser.ExtractScatterSeries(path, sheet)
	if err != nil {
		return nil, NewLoadError(path, "chart", err)
	}
	if len(charts) == 0 {
		return nil, ErrNoSeries
	}

	chart := charts[0]
	series := chart.Series[0]
	draft, err := parser.ReadSeriesPoints(f, chart.Sheet, series)
	if err != nil {
		return nil, NewLoadError(path, "chart", err)
	}

	logrus.WithFields(logrus.Fields{
		"sheet":  chart.Sheet,
		"chart":  chart.Name,
		"series": series.YRange,
		"points": len(draft),
	}).Debug("loaded scatter chart series")

	labels := models.AxisLabels{XName: chart.XAxisTitle, YName: chart.YAxisTitle}
	if labels.YName == "" {
		labels.YName = parser.SeriesName(f, chart.Sheet, series)
	}
	return &Dataset{Name: filepath.Base(path), Labels: labels, Draft: draft}, nil
}
