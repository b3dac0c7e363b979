// Package scatterplot loads x/y point data from CSV files and Excel
// workbooks and turns it into a chart plus regression, R² and area
// statistics.
package scatterplot

import "github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"

// Source selects where workbook points are read from.
type Source string

const (
	// SourceAuto uses the first scatter chart series if there is one,
	// otherwise the sheet cells.
	SourceAuto Source = "auto"
	// SourceCells reads the first two columns of the sheet's data block.
	SourceCells Source = "cells"
	// SourceChart reads the X and Y ranges of the first scatter chart series.
	SourceChart Source = "chart"
)

// LoadOptions configures how an input file is read.
type LoadOptions struct {
	// Sheet is the workbook sheet to read. Empty means the first sheet
	// (or any sheet, when reading charts).
	Sheet string
	// Source selects cells or chart ranges for workbooks. Ignored for CSV.
	Source Source
}

// Options configures what a chart shows.
type Options struct {
	// Toggles are the display switches.
	Toggles models.Toggles
	// Labels are the axis names and units.
	Labels models.AxisLabels
	// AnchorOrigin overrides the layout's anchor setting.
	// If nil, the layout config decides.
	AnchorOrigin *bool
}

// DefaultOptions returns options with every display toggle off.
func DefaultOptions() Options {
	return Options{}
}

// ShouldAnchorOrigin returns whether both axis minimums are forced to 1.
func (o Options) ShouldAnchorOrigin(cfg models.LayoutConfig) bool {
	if o.AnchorOrigin != nil {
		return *o.AnchorOrigin
	}
	return cfg.AnchorOrigin
}

// ShouldReadChart returns whether a workbook should be searched for chart series.
func (o LoadOptions) ShouldReadChart() bool {
	return o.Source == SourceChart || o.Source == SourceAuto || o.Source == ""
}
