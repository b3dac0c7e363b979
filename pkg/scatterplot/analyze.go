package scatterplot

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/output"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/points"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/render"
)

// Result is a sanitized point set together with its drawing program and
// statistics.
type Result struct {
	Points     models.PointSet
	Plan       *render.RenderPlan
	Statistics models.Statistics
	Options    Options
}

// Analyze sanitizes draft points and plans their chart. Invalid drafts are
// dropped; the result is always usable, even for an empty set.
func Analyze(draft []models.DraftPoint, opts Options, cfg models.LayoutConfig) *Result {
	ps := points.Sanitize(draft)
	if dropped := len(draft) - len(ps); dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("ignored draft points without two finite coordinates")
	}

	cfg.AnchorOrigin = opts.ShouldAnchorOrigin(cfg)
	plan, st := render.Plan(render.Input{
		Points:  ps,
		Layout:  cfg,
		Toggles: opts.Toggles,
		Labels:  opts.Labels,
	})

	return &Result{Points: ps, Plan: plan, Statistics: st, Options: opts}
}

// Displayed returns the statistics the toggles ask to show.
func (r *Result) Displayed() models.Statistics {
	return r.Statistics.Visible(r.Options.Toggles)
}

// Report returns the JSON report of the result.
func (r *Result) Report() output.Report {
	return output.NewReport(r.Points, r.Plan.Layout.Range, r.Statistics, r.Options.Toggles, r.Options.Labels)
}

// Format is a chart image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatFromPath picks the image format from a file extension.
// ".svgz" is SVG; the caller is expected to gzip it.
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return FormatPNG, nil
	case strings.HasSuffix(lower, ".svg"), strings.HasSuffix(lower, ".svgz"):
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Render draws the chart onto w in the given format.
func (r *Result) Render(ctx context.Context, w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		s, err := render.NewPNGSurface(int(r.Plan.Width), int(r.Plan.Height))
		if err != nil {
			return err
		}
		if err := render.Draw(ctx, r.Plan, s); err != nil {
			return err
		}
		return s.EncodePNG(w)
	case FormatSVG:
		s := render.NewSVGSurface(w, r.Plan.Width, r.Plan.Height)
		if err := render.Draw(ctx, r.Plan, s); err != nil {
			return err
		}
		return s.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
