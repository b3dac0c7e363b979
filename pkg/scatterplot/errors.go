package scatterplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is neither CSV nor xlsx.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrNoSeries indicates a workbook has no scatter chart series to read.
var ErrNoSeries = errors.New("no scatter chart series")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadError represents an error while reading points from an input file.
type LoadError struct {
	Path      string
	Component string // "csv", "workbook", "cells", "chart"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
