package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
)

// ToNRGBA creates a copy of the given image as non-premultiplied RGBA.
// The copy always starts at (0, 0).
func ToNRGBA(i image.Image) *image.NRGBA {
	b := i.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), i, b.Min, draw.Src)
	return dst
}

// Clone creates an independent copy of the given image.
func Clone(i *image.NRGBA) *image.NRGBA {
	dst := &image.NRGBA{
		Pix:    make([]uint8, len(i.Pix)),
		Stride: i.Stride,
		Rect:   i.Rect,
	}
	copy(dst.Pix, i.Pix)
	return dst
}

// HasAlpha tells whether the given image has translucent parts.
// Images with an RGBA color model count only if at least one pixel is not
// fully opaque; the png decoder returns RGBA for opaque truecolor files.
// Paletted images count if any palette entry is translucent.
func HasAlpha(i image.Image) bool {
	switch img := i.(type) {
	case *image.Alpha, *image.Alpha16:
		return true
	case *image.NRGBA:
		return !img.Opaque()
	case *image.RGBA:
		return !img.Opaque()
	case *image.NRGBA64:
		return !img.Opaque()
	case *image.RGBA64:
		return !img.Opaque()
	case *image.Paletted:
		for _, c := range img.Palette {
			_, _, _, a := c.RGBA()
			if a != 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Checksum calculates a fast checksum over the raw pixel bytes.
// Images with identical pixels always have the same checksum.
func Checksum(i *image.NRGBA) uint64 {
	return xxhash.Sum64(i.Pix)
}

// Colorize creates a silhouette of the given image.
//
// Every pixel gets the RGB values of c, the alpha channel is the alpha of c
// scaled by the alpha of the source pixel.
func Colorize(i *image.NRGBA, c color.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(i.Rect)
	a := int(c.A)
	b := i.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			srcA := int(i.Pix[i.PixOffset(x, y)+3])
			off := dst.PixOffset(x, y)
			dst.Pix[off+0] = c.R
			dst.Pix[off+1] = c.G
			dst.Pix[off+2] = c.B
			dst.Pix[off+3] = uint8((a * srcA) / 255)
		}
	}
	return dst
}

// Checkerboard creates a square image of the given size with alternating
// light and dark cells.
func Checkerboard(size, cells int) *image.NRGBA {
	light := color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
	dark := color.NRGBA{0x99, 0x99, 0x99, 0xff}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				dst.SetNRGBA(x, y, light)
			} else {
				dst.SetNRGBA(x, y, dark)
			}
		}
	}
	return dst
}

// Resize creates a copy of the given image, scaled to width x height pixels.
func Resize(i image.Image, width, height float64) image.Image {
	w := int(math.Max(1, math.Round(width)))
	h := int(math.Max(1, math.Round(height)))
	size := image.Rect(0, 0, w, h)

	dst := image.NewRGBA(size)
	s := draw.ApproxBiLinear
	s.Scale(dst, size, i, i.Bounds(), draw.Over, nil)
	return dst
}
