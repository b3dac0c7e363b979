package models

// Role classifies a primitive so surfaces can style it.
type Role string

const (
	RoleAxis       Role = "axis"
	RoleTick       Role = "tick"
	RoleTickLabel  Role = "tick-label"
	RoleAxisLabel  Role = "axis-label"
	RolePoint      Role = "point"
	RoleConnector  Role = "connector"
	RoleCoordinate Role = "coordinate"
	RoleBestFit    Role = "best-fit"
)

// Primitive is a single drawing instruction in a render plan.
type Primitive interface {
	PrimitiveRole() Role
}

// Line is a straight stroke between two pixels.
type Line struct {
	From Pixel `json:"from"`
	To   Pixel `json:"to"`
	Role Role  `json:"role"`
}

// PrimitiveRole implements Primitive.
func (l Line) PrimitiveRole() Role { return l.Role }

// Circle is a filled disc.
type Circle struct {
	Center Pixel   `json:"center"`
	Radius float64 `json:"radius"`
	Role   Role    `json:"role"`
}

// PrimitiveRole implements Primitive.
func (c Circle) PrimitiveRole() Role { return c.Role }

// Text is a text placement. Anchor is the pixel the text is aligned to:
// AlignX 0 puts the text start at Anchor, 0.5 centers it. Anchor.Y is the baseline.
// Rotation is in degrees, clockwise, about Anchor.
type Text struct {
	Anchor   Pixel   `json:"anchor"`
	Value    string  `json:"value"`
	AlignX   float64 `json:"align_x"`
	Rotation float64 `json:"rotation,omitempty"`
	Role     Role    `json:"role"`
}

// PrimitiveRole implements Primitive.
func (t Text) PrimitiveRole() Role { return t.Role }
