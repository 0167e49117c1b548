package state

import "math"

// Zoom limits for Transform.Scale.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Transform maps canvas space to screen space:
//
//	screen = canvas*Scale + Offset
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Identity returns the transform with no pan and unit zoom.
func Identity() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether t is the default view.
func (t Transform) IsIdentity() bool {
	return t.OffsetX == 0 && t.OffsetY == 0 && t.Scale == 1
}

// Offset returns the pan offset as a point.
func (t Transform) Offset() Point {
	return Point{X: t.OffsetX, Y: t.OffsetY}
}

// ToCanvas converts a screen position into canvas space.
func (t Transform) ToCanvas(screen Point) Point {
	s := t.scale()
	return Point{
		X: (screen.X - t.OffsetX) / s,
		Y: (screen.Y - t.OffsetY) / s,
	}
}

// ToScreen converts a canvas position into screen space.
func (t Transform) ToScreen(canvas Point) Point {
	s := t.scale()
	return Point{
		X: canvas.X*s + t.OffsetX,
		Y: canvas.Y*s + t.OffsetY,
	}
}

// Pan translates the view by a screen-space delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.OffsetX += dx
	t.OffsetY += dy
	return t
}

// ZoomAt multiplies the scale by factor, keeping the canvas point under
// the screen position fixed. The resulting scale is clamped.
func (t Transform) ZoomAt(screen Point, factor float64) Transform {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return t
	}
	world := t.ToCanvas(screen)
	next := ClampScale(t.scale() * factor)
	return Transform{
		OffsetX: screen.X - world.X*next,
		OffsetY: screen.Y - world.Y*next,
		Scale:   next,
	}
}

// ClampScale bounds s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if math.IsNaN(s) {
		return 1
	}
	return math.Max(MinScale, math.Min(MaxScale, s))
}

func (t Transform) scale() float64 {
	if t.Scale <= 0 {
		return 1
	}
	return t.Scale
}
