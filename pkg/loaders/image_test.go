package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func makeTestImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(0, 1, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestLoadImagePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, makeTestImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage(png): %v", err)
	}
	if data.Width != 2 || data.Height != 2 {
		t.Fatalf("expected a 2x2 image, got %dx%d", data.Width, data.Height)
	}
	red := data.Pixels[0]
	if red.X < 0.99 || red.Y > 0.01 || red.Z > 0.01 {
		t.Fatalf("expected the top-left texel to be pure red, got %+v", red)
	}
}

// TestLoadImageBMPFallback exercises the golang.org/x/image/bmp decoder
// LoadImage falls back to for formats the stdlib image package doesn't
// register on its own.
func TestLoadImageBMPFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, makeTestImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage(bmp): %v", err)
	}
	if data.Width != 2 || data.Height != 2 {
		t.Fatalf("expected a 2x2 image, got %dx%d", data.Width, data.Height)
	}
	blue := data.Pixels[2] // row 1, col 0
	if blue.Z < 0.99 || blue.X > 0.01 {
		t.Fatalf("expected pixel (0,1) to be pure blue, got %+v", blue)
	}
}

func TestLoadImageToBitmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, makeTestImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	data, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	bmpSurface := data.ToBitmap(0)
	if bmpSurface.Width() != 2 || bmpSurface.Height() != 2 {
		t.Fatalf("expected ToBitmap to preserve dimensions, got %dx%d", bmpSurface.Width(), bmpSurface.Height())
	}
}
