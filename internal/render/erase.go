package render

import "image"

// eraseUnder applies destination-out: every dst pixel keeps (1 - mask)
// of its coverage. dst and mask must share bounds. dst is premultiplied,
// so scaling all four channels is enough.
func eraseUnder(dst *image.RGBA, mask *image.Alpha) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		mi := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, di, mi = x+1, di+4, mi+1 {
			m := uint32(mask.Pix[mi])
			if m == 0 {
				continue
			}
			keep := 255 - m
			px := dst.Pix[di : di+4 : di+4]
			px[0] = uint8(uint32(px[0]) * keep / 255)
			px[1] = uint8(uint32(px[1]) * keep / 255)
			px[2] = uint8(uint32(px[2]) * keep / 255)
			px[3] = uint8(uint32(px[3]) * keep / 255)
		}
	}
}
