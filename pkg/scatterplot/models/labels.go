package models

import "strings"

// AxisLabels holds the free-text axis names and units.
type AxisLabels struct {
	XName  string `json:"x_name,omitempty" yaml:"x_name"`
	XUnits string `json:"x_units,omitempty" yaml:"x_units"`
	YName  string `json:"y_name,omitempty" yaml:"y_name"`
	YUnits string `json:"y_units,omitempty" yaml:"y_units"`
}

// XLabel returns the horizontal axis caption.
func (l AxisLabels) XLabel() string { return axisLabel(l.XName, l.XUnits) }

// YLabel returns the vertical axis caption.
func (l AxisLabels) YLabel() string { return axisLabel(l.YName, l.YUnits) }

// Title returns "<Y> vs. <X>", substituting generic names for blank ones.
func (l AxisLabels) Title() string {
	y := l.YName
	if y == "" {
		y = "Y-Axis"
	}
	x := l.XName
	if x == "" {
		x = "X-Axis"
	}
	return y + " vs. " + x
}

func axisLabel(name, units string) string {
	if strings.TrimSpace(units) == "" {
		return name
	}
	return name + " (" + units + ")"
}
