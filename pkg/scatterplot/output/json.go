// Package output serializes analysis results to JSON, CSV and xlsx, with
// optional stream compression.
package output

import (
	"encoding/json"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Report is the machine-readable summary of one analyzed point set.
type Report struct {
	Title       string            `json:"title"`
	Labels      models.AxisLabels `json:"labels"`
	Points      models.PointSet   `json:"points"`
	Range       models.Range      `json:"range"`
	Statistics  models.Statistics `json:"statistics"`
	Displayed   models.Statistics `json:"displayed"`
	Equation    string            `json:"equation,omitempty"`
	Fingerprint string            `json:"fingerprint"`
}

// NewReport assembles a report. Displayed holds only the statistics the
// toggles show.
func NewReport(points models.PointSet, rng models.Range, st models.Statistics, toggles models.Toggles, labels models.AxisLabels) Report {
	r := Report{
		Title:       labels.Title(),
		Labels:      labels,
		Points:      points,
		Range:       rng,
		Statistics:  st,
		Displayed:   st.Visible(toggles),
		Fingerprint: Fingerprint(points),
	}
	if r.Points == nil {
		r.Points = models.PointSet{}
	}
	if st.BestFit != nil {
		r.Equation = st.BestFit.Equation()
	}
	return r
}

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
