package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestColorize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 100})

	shadow := color.NRGBA{255, 0, 0, 128}
	dst := Colorize(src, shadow)

	c0 := dst.NRGBAAt(0, 0)
	if c0 != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("unexpected opaque pixel: %v", c0)
	}

	// 128 * 100 / 255 = 50 (integer division)
	c1 := dst.NRGBAAt(1, 0)
	if c1 != (color.NRGBA{255, 0, 0, 50}) {
		t.Errorf("unexpected translucent pixel: %v", c1)
	}

	// source is untouched
	if src.NRGBAAt(0, 0).R != 10 {
		t.Errorf("source image was modified")
	}
}

func TestHasAlpha(t *testing.T) {
	if !HasAlpha(image.NewNRGBA(image.Rect(0, 0, 1, 1))) {
		t.Errorf("NRGBA not recognized as alpha image")
	}
	if HasAlpha(image.NewGray(image.Rect(0, 0, 1, 1))) {
		t.Errorf("Gray recognized as alpha image")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range rgba.Pix {
		rgba.Pix[i] = 255
	}
	if HasAlpha(rgba) {
		t.Errorf("opaque RGBA recognized as alpha image")
	}
	rgba.SetRGBA(1, 1, color.RGBA{0, 0, 0, 128})
	if !HasAlpha(rgba) {
		t.Errorf("translucent RGBA not recognized as alpha image")
	}

	// opaque truecolor PNGs decode to *image.RGBA
	rgba.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	var buf bytes.Buffer
	err := png.Encode(&buf, rgba)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if HasAlpha(decoded) {
		t.Errorf("opaque PNG recognized as alpha image")
	}

	opaque := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White})
	if HasAlpha(opaque) {
		t.Errorf("opaque palette recognized as alpha image")
	}
	translucent := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Transparent, color.White})
	if !HasAlpha(translucent) {
		t.Errorf("translucent palette not recognized as alpha image")
	}
}

func TestChecksum(t *testing.T) {
	a := Checkerboard(8, 2)
	b := Checkerboard(8, 2)
	if Checksum(a) != Checksum(b) {
		t.Errorf("identical pixels with different checksums")
	}

	c := Clone(a)
	c.Pix[0] = 0
	if Checksum(a) == Checksum(c) {
		t.Errorf("different pixels with same checksum")
	}
	if a.Pix[0] == 0 {
		t.Errorf("clone shares pixel buffer with source")
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 8, 9))
	dst := ToNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 3, 4) {
		t.Errorf("unexpected bounds %v", dst.Bounds())
	}
}

func TestResize(t *testing.T) {
	dst := Resize(Checkerboard(10, 2), 20.4, 4.6)
	if dst.Bounds() != image.Rect(0, 0, 20, 5) {
		t.Errorf("unexpected bounds %v", dst.Bounds())
	}
}
