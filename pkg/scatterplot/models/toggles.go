package models

// Toggles are the display switches of a chart. Anchor-origin lives on
// LayoutConfig because it changes the geometry rather than what is shown.
type Toggles struct {
	// ConnectingLines joins consecutive points in x order.
	ConnectingLines bool `json:"connecting_lines" yaml:"connecting_lines"`
	// BestFit draws the least-squares line.
	BestFit bool `json:"best_fit" yaml:"best_fit"`
	// Coordinates prints "(x, y)" next to each point.
	Coordinates bool `json:"coordinates" yaml:"coordinates"`
	// RSquared shows the coefficient of determination.
	RSquared bool `json:"r_squared" yaml:"r_squared"`
	// Integration shows the area under the curve.
	Integration bool `json:"integration" yaml:"integration"`
}

// Visible returns the subset of s that t asks to display.
func (s Statistics) Visible(t Toggles) Statistics {
	var out Statistics
	if t.BestFit {
		out.BestFit = s.BestFit
	}
	if t.RSquared {
		out.RSquared = s.RSquared
	}
	if t.Integration {
		out.Integration = s.Integration
	}
	return out
}
