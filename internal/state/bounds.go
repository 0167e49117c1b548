package state

import "math"

// Rect is an axis-aligned box in canvas space. The zero Rect is empty.
type Rect struct {
	Min, Max Point
	valid    bool
}

// RectFromPoints returns the smallest rect holding both corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min:   Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max:   Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
		valid: true,
	}
}

// Empty reports whether nothing has been added to r.
func (r Rect) Empty() bool { return !r.valid }

// Dx is the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy is the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// ExtendDisc grows r to cover a disc of the given radius around p.
func (r Rect) ExtendDisc(p Point, radius float64) Rect {
	box := RectFromPoints(
		Point{X: p.X - radius, Y: p.Y - radius},
		Point{X: p.X + radius, Y: p.Y + radius},
	)
	return r.Union(box)
}

// Union returns the smallest rect holding r and o.
func (r Rect) Union(o Rect) Rect {
	if !r.valid {
		return o
	}
	if !o.valid {
		return r
	}
	return Rect{
		Min:   Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max:   Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
		valid: true,
	}
}

// Pad grows r by n on every side.
func (r Rect) Pad(n float64) Rect {
	if !r.valid {
		return r
	}
	r.Min = Point{X: r.Min.X - n, Y: r.Min.Y - n}
	r.Max = Point{X: r.Max.X + n, Y: r.Max.Y + n}
	return r
}

// Overlaps reports whether r and o share any area or edge.
func (r Rect) Overlaps(o Rect) bool {
	if !r.valid || !o.valid {
		return false
	}
	return !(r.Max.X < o.Min.X || o.Max.X < r.Min.X ||
		r.Max.Y < o.Min.Y || o.Max.Y < r.Min.Y)
}

// Bounds covers every point of s, each widened by half the stroke width.
func (s *Stroke) Bounds() Rect {
	var r Rect
	half := s.Width() / 2
	for _, p := range s.Points {
		r = r.ExtendDisc(p, half)
	}
	return r
}

// InkBounds covers every pen stroke in l. Eraser strokes never add ink,
// so they do not grow the box.
func (l PathList) InkBounds() Rect {
	var r Rect
	for _, s := range l {
		if s.IsEraser() {
			continue
		}
		r = r.Union(s.Bounds())
	}
	return r
}
