// Package export rasterizes the ink of a drawing into a standalone image,
// independent of the on-screen view.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"StylusBoard/internal/render"
	"StylusBoard/internal/state"
)

// DefaultPadding is the margin, in canvas units, kept around the ink.
const DefaultPadding = 20

// Options controls how a drawing is exported.
type Options struct {
	// Padding is added on every side of the ink bounds.
	Padding float64
	// Scale is output pixels per canvas unit.
	Scale float64
	// Erasure composites eraser strokes the way the live canvas does.
	// Without it only pen strokes are exported.
	Erasure bool
	// MaxSide scales the result down so neither side exceeds it. Zero
	// means no limit.
	MaxSide int
}

// DefaultOptions exports at 1:1 with erasure applied.
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding, Scale: 1, Erasure: true}
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// MaxPixels bounds the size of an export raster. Larger exports need
// Scale or MaxSide lowered.
const MaxPixels = 1 << 25

// Image renders paths on a white background cropped to the ink. It
// returns false when there is no pen stroke to export. With MaxSide set
// the scale is lowered before rendering so neither side exceeds it.
func Image(paths state.PathList, opts Options) (*image.RGBA, bool, error) {
	ink := paths.InkBounds()
	if ink.Empty() {
		return nil, false, nil
	}
	box := ink.Pad(math.Max(opts.Padding, 0))
	scale := opts.scale()
	if side := math.Max(box.Dx(), box.Dy()); opts.MaxSide > 0 && side*scale > float64(opts.MaxSide) {
		scale = float64(opts.MaxSide) / side
	}
	fw := math.Max(math.Ceil(box.Dx()*scale), 1)
	fh := math.Max(math.Ceil(box.Dy()*scale), 1)
	if !finite(fw) || !finite(fh) || !finite(box.Min.X) || !finite(box.Min.Y) {
		return nil, false, fmt.Errorf("export bounds are not finite: %gx%g", box.Dx(), box.Dy())
	}
	if fw*fh > MaxPixels {
		return nil, false, fmt.Errorf("export of %.0fx%.0f pixels exceeds the %d pixel limit", fw, fh, MaxPixels)
	}
	w, h := int(fw), int(fh)
	if opts.MaxSide > 0 {
		w, h = min(w, opts.MaxSide), min(h, opts.MaxSide)
	}

	layer := gg.NewContext(w, h)
	view := render.View{
		Ratio:     scale,
		Transform: state.Transform{OffsetX: -box.Min.X, OffsetY: -box.Min.Y, Scale: 1},
	}
	render.NewPainter(layer).Paint(paths, view, opts.Erasure)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), layer.Image(), image.Point{}, draw.Over)
	return out, true, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PNG encodes the export as PNG.
func PNG(paths state.PathList, opts Options) ([]byte, bool, error) {
	img, ok, err := Image(paths, opts)
	if !ok || err != nil {
		return nil, false, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}

// DataURI returns the PNG export as a data: URI.
func DataURI(paths state.PathList, opts Options) (string, bool, error) {
	data, ok, err := PNG(paths, opts)
	if !ok || err != nil {
		return "", false, err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), true, nil
}
