package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"StylusBoard/internal/state"
)

// PDF writes a one-page document sized to the export, in points, holding
// the rendered drawing. It returns false without writing anything when
// there is no ink.
func PDF(w io.Writer, paths state.PathList, opts Options) (bool, error) {
	img, ok, err := Image(paths, opts)
	if !ok || err != nil {
		return false, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return false, err
	}

	wd := float64(img.Bounds().Dx())
	ht := float64(img.Bounds().Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", imgOpts, &buf)
	p.ImageOptions("drawing", 0, 0, wd, ht, false, imgOpts, 0, "")
	if err := p.Output(w); err != nil {
		return false, fmt.Errorf("write pdf: %w", err)
	}
	return true, nil
}
