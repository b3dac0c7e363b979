package render

import (
	"context"
	"fmt"
	"image/color"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
)

// Surface is a 2D drawing target. Coordinates are pixels with rows growing downward.
type Surface interface {
	// Clear wipes the whole surface before a redraw.
	Clear()
	DrawLine(l models.Line)
	DrawCircle(c models.Circle)
	DrawText(t models.Text)
}

// checkEvery is how many primitives are drawn between context checks.
const checkEvery = 256

// Draw clears s and replays every primitive of plan in order.
func Draw(ctx context.Context, plan *RenderPlan, s Surface) error {
	s.Clear()

	for i, prim := range plan.Primitives {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		switch p := prim.(type) {
		case models.Line:
			s.DrawLine(p)
		case models.Circle:
			s.DrawCircle(p)
		case models.Text:
			s.DrawText(p)
		default:
			return fmt.Errorf("unsupported primitive %T", prim)
		}
	}

	return nil
}

var (
	background = color.White
	ink        = color.Black
	fitColor   = color.NRGBA{R: 192, G: 57, B: 43, A: 255}
	lineColor  = color.NRGBA{R: 68, G: 68, B: 68, A: 255}
)

// strokeColor returns the color used for a line role.
func strokeColor(role models.Role) color.Color {
	switch role {
	case models.RoleBestFit:
		return fitColor
	case models.RoleConnector:
		return lineColor
	default:
		return ink
	}
}

// hex formats c as #rrggbb.
func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
