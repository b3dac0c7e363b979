package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LabelFontSize is the axis caption size in pixels.
const LabelFontSize = 14

// PNGSurface draws onto an in-memory raster.
type PNGSurface struct {
	dc        *gg.Context
	tickFace  font.Face
	labelFace font.Face
}

// NewPNGSurface creates a raster surface of the given pixel size.
func NewPNGSurface(width, height int) (*PNGSurface, error) {
	labelFace, err := loadLabelFace(LabelFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	return &PNGSurface{
		dc:        gg.NewContext(width, height),
		tickFace:  basicfont.Face7x13,
		labelFace: labelFace,
	}, nil
}

func loadLabelFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Clear implements Surface.
func (s *PNGSurface) Clear() {
	s.dc.SetColor(background)
	s.dc.Clear()
}

// DrawLine implements Surface.
func (s *PNGSurface) DrawLine(l models.Line) {
	s.dc.SetColor(strokeColor(l.Role))
	s.dc.SetLineWidth(1)
	s.dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	s.dc.Stroke()
}

// DrawCircle implements Surface.
func (s *PNGSurface) DrawCircle(c models.Circle) {
	s.dc.SetColor(ink)
	s.dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	s.dc.Fill()
}

// DrawText implements Surface.
func (s *PNGSurface) DrawText(t models.Text) {
	s.dc.SetColor(ink)
	if t.Role == models.RoleAxisLabel {
		s.dc.SetFontFace(s.labelFace)
	} else {
		s.dc.SetFontFace(s.tickFace)
	}

	if t.Rotation != 0 {
		s.dc.Push()
		defer s.dc.Pop()
		s.dc.RotateAbout(gg.Radians(t.Rotation), t.Anchor.X, t.Anchor.Y)
	}
	s.dc.DrawStringAnchored(t.Value, t.Anchor.X, t.Anchor.Y, t.AlignX, 0)
}

// Image returns the rendered raster.
func (s *PNGSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the raster as PNG.
func (s *PNGSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
