// Package render rasterizes a path list onto an image.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"StylusBoard/internal/state"
)

// View places canvas-space geometry on a raster: points are mapped by
// Transform into device-independent units, then multiplied by Ratio.
type View struct {
	Ratio     float64
	Transform state.Transform
}

func (v View) ratio() float64 {
	if v.Ratio <= 0 {
		return 1
	}
	return v.Ratio
}

func (v View) apply(dc *gg.Context) {
	r := v.ratio()
	s := v.Transform.Scale
	if s <= 0 {
		s = 1
	}
	dc.Identity()
	dc.Scale(r, r)
	dc.Translate(v.Transform.OffsetX, v.Transform.OffsetY)
	dc.Scale(s, s)
}

// lineScale is how much a canvas-space width grows on the raster. gg
// strokes with a device-space width, so it has to be applied by hand.
func (v View) lineScale() float64 {
	s := v.Transform.Scale
	if s <= 0 {
		s = 1
	}
	return v.ratio() * s
}

// Painter composites strokes onto an ink layer in insertion order.
type Painter struct {
	ink  *gg.Context
	mask *gg.Context
}

// NewPainter paints onto ink.
func NewPainter(ink *gg.Context) *Painter {
	return &Painter{ink: ink}
}

// Paint draws every stroke of paths. Pen strokes paint over what is
// already there; eraser strokes cut it away. Strokes after an eraser are
// unaffected by it. With erase false, eraser strokes are skipped.
func (p *Painter) Paint(paths state.PathList, v View, erase bool) {
	for _, s := range paths {
		switch tip := s.Tip.(type) {
		case state.Pen:
			v.apply(p.ink)
			strokePath(p.ink, s, v.lineScale(), tip.Color)
		case state.Eraser:
			if !erase {
				continue
			}
			mask := p.scratch()
			v.apply(mask)
			strokePath(mask, s, v.lineScale(), color.White)
			eraseUnder(p.ink.Image().(*image.RGBA), mask.AsMask())
		}
	}
	p.ink.Identity()
}

func (p *Painter) scratch() *gg.Context {
	w, h := p.ink.Width(), p.ink.Height()
	if p.mask == nil || p.mask.Width() != w || p.mask.Height() != h {
		p.mask = gg.NewContext(w, h)
		return p.mask
	}
	p.mask.Identity()
	p.mask.SetColor(color.Transparent)
	p.mask.Clear()
	return p.mask
}

// strokePath renders a stroke as a smoothed line: a dot for one point, a
// segment for two, and quadratic curves through successive midpoints for
// three or more.
func strokePath(dc *gg.Context, s *state.Stroke, lineScale float64, c color.Color) {
	pts := s.Points
	if len(pts) == 0 {
		return
	}
	dc.SetColor(c)
	w := s.Width()
	if len(pts) == 1 {
		dc.DrawCircle(pts[0].X, pts[0].Y, w/2)
		dc.Fill()
		return
	}

	dc.SetLineWidth(w * lineScale)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 2 {
		dc.LineTo(pts[1].X, pts[1].Y)
	} else {
		for i := 1; i < len(pts)-1; i++ {
			mid := pts[i].Mid(pts[i+1])
			dc.QuadraticTo(pts[i].X, pts[i].Y, mid.X, mid.Y)
		}
		last := pts[len(pts)-1]
		dc.LineTo(last.X, last.Y)
	}
	dc.Stroke()
}
