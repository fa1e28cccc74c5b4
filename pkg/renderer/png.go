package renderer

import (
	"image"
	"image/png"
	"io"
)

// WritePNG projects the snapshot in mode and writes it as an 8-bit RGB PNG,
// reversing row order to match the accumulator's bottom-up pixel
// convention (spec.md §4.6).
func WritePNG(w io.Writer, snap Snapshot, mode DisplayMode) error {
	rgb := snap.Project(mode)
	img := image.NewRGBA(image.Rect(0, 0, snap.Width, snap.Height))

	for y := 0; y < snap.Height; y++ {
		srcY := snap.Height - 1 - y
		for x := 0; x < snap.Width; x++ {
			srcIdx := (srcY*snap.Width + x) * 3
			dstIdx := img.PixOffset(x, y)
			img.Pix[dstIdx+0] = rgb[srcIdx+0]
			img.Pix[dstIdx+1] = rgb[srcIdx+1]
			img.Pix[dstIdx+2] = rgb[srcIdx+2]
			img.Pix[dstIdx+3] = 255
		}
	}

	return png.Encode(w, img)
}
