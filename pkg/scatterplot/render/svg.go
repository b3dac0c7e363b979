package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// SVGSurface streams primitives as an SVG document.
// Clear starts the document and Close ends it.
type SVGSurface struct {
	canvas *svg.SVG
	width  float64
	height float64
}

// NewSVGSurface creates a vector surface writing to w.
func NewSVGSurface(w io.Writer, width, height float64) *SVGSurface {
	return &SVGSurface{canvas: svg.New(w), width: width, height: height}
}

// Clear implements Surface.
func (s *SVGSurface) Clear() {
	s.canvas.Start(s.width, s.height)
	s.canvas.Rect(0, 0, s.width, s.height, "fill:"+hex(background))
}

// DrawLine implements Surface.
func (s *SVGSurface) DrawLine(l models.Line) {
	style := fmt.Sprintf("stroke:%s;stroke-width:1", hex(strokeColor(l.Role)))
	s.canvas.Line(l.From.X, l.From.Y, l.To.X, l.To.Y, style)
}

// DrawCircle implements Surface.
func (s *SVGSurface) DrawCircle(c models.Circle) {
	s.canvas.Circle(c.Center.X, c.Center.Y, c.Radius, "fill:"+hex(ink))
}

// DrawText implements Surface.
func (s *SVGSurface) DrawText(t models.Text) {
	family, size := "monospace", 11
	if t.Role == models.RoleAxisLabel {
		family, size = "Georgia,serif", LabelFontSize
	}
	style := fmt.Sprintf("text-anchor:%s;font-family:%s;font-size:%dpx;fill:%s",
		textAnchor(t.AlignX), family, size, hex(ink))

	if t.Rotation != 0 {
		s.canvas.Gtransform(fmt.Sprintf("rotate(%g %g %g)", t.Rotation, t.Anchor.X, t.Anchor.Y))
		defer s.canvas.Gend()
	}
	s.canvas.Text(t.Anchor.X, t.Anchor.Y, t.Value, style)
}

// Close ends the document.
func (s *SVGSurface) Close() error {
	s.canvas.End()
	return nil
}

func textAnchor(alignX float64) string {
	switch {
	case alignX >= 1:
		return "end"
	case alignX > 0:
		return "middle"
	default:
		return "start"
	}
}
