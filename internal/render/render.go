package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"StylusBoard/internal/state"
)

// Renderer owns the backing raster of a display surface and redraws the
// whole path list into it on every call.
type Renderer struct {
	width, height float64
	ratio         float64
	dc            *gg.Context
	painter       *Painter
}

// New returns a renderer for a w x h surface at the given pixel ratio.
func New(w, h, ratio float64) *Renderer {
	r := &Renderer{}
	r.Resize(w, h, ratio)
	return r
}

// Resize sets up the backing raster for a w x h surface (device-independent
// units) at the given pixel ratio, so that one raster pixel is one
// physical pixel. It reports whether the raster was replaced; calling it
// again with the same size is a no-op.
func (r *Renderer) Resize(w, h, ratio float64) bool {
	if ratio <= 0 {
		ratio = 1
	}
	w, h = math.Max(w, 1), math.Max(h, 1)
	if r.dc != nil && r.width == w && r.height == h && r.ratio == ratio {
		return false
	}
	r.width, r.height, r.ratio = w, h, ratio
	pw := int(math.Ceil(w * ratio))
	ph := int(math.Ceil(h * ratio))
	r.dc = gg.NewContext(pw, ph)
	r.painter = NewPainter(r.dc)
	return true
}

// Size returns the surface size and pixel ratio.
func (r *Renderer) Size() (w, h, ratio float64) {
	return r.width, r.height, r.ratio
}

// Draw clears the surface and paints paths under t. The returned image is
// the renderer's backing store and is overwritten by the next Draw.
func (r *Renderer) Draw(paths state.PathList, t state.Transform) *image.RGBA {
	r.dc.Identity()
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
	r.painter.Paint(paths, View{Ratio: r.ratio, Transform: t}, true)
	return r.Image()
}

// Image returns the backing raster as last drawn.
func (r *Renderer) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}
