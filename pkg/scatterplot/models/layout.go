package models

// Range holds the data extent used to build a chart layout.
type Range struct {
	// MinX is the smallest x value (or the anchored minimum).
	MinX float64 `json:"min_x"`
	// MaxX is the largest x value.
	MaxX float64 `json:"max_x"`
	// MinY is the floored smallest y value (or the anchored minimum).
	MinY float64 `json:"min_y"`
	// MaxY is the ceiled largest y value.
	MaxY float64 `json:"max_y"`
}

// XSpan returns MaxX - MinX.
func (r Range) XSpan() float64 { return r.MaxX - r.MinX }

// YSpan returns MaxY - MinY.
func (r Range) YSpan() float64 { return r.MaxY - r.MinY }

// LayoutConfig describes the drawing surface.
type LayoutConfig struct {
	// Width is the surface width in pixels.
	Width float64 `json:"width" yaml:"width"`
	// Height is the surface height in pixels.
	Height float64 `json:"height" yaml:"height"`
	// Cushion is the margin kept free on every side, in pixels.
	Cushion float64 `json:"cushion" yaml:"cushion"`
	// AnchorOrigin forces both axis minimums to 1.
	AnchorOrigin bool `json:"anchor_origin" yaml:"anchor_origin"`
}

// Default surface geometry.
const (
	DefaultWidth   = 940
	DefaultHeight  = 525
	DefaultCushion = 60
)

// DefaultLayoutConfig returns the standard 940x525 surface with a 60px cushion.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Cushion:      DefaultCushion,
		AnchorOrigin: true,
	}
}

// DrawWidth returns the usable width between the cushions.
func (c LayoutConfig) DrawWidth() float64 { return c.Width - 2*c.Cushion }

// DrawHeight returns the usable height between the cushions.
func (c LayoutConfig) DrawHeight() float64 { return c.Height - 2*c.Cushion }

// Pixel is a surface coordinate. Rows grow downward.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
