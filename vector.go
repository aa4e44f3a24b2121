package labeltool

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Vector is a parsed SVG image together with its source markup.
type Vector struct {
	data []byte
	icon *oksvg.SvgIcon
}

// ParseVector parses SVG markup. The markup must have a non-empty view box.
func ParseVector(data []byte) (*Vector, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("svg has no view box")
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return &Vector{data: buf, icon: icon}, nil
}

// ViewBox is the intrinsic size of the image.
func (v *Vector) ViewBox() (w, h float64) {
	return v.icon.ViewBox.W, v.icon.ViewBox.H
}

// Bytes returns a copy of the SVG markup.
func (v *Vector) Bytes() []byte {
	buf := make([]byte, len(v.data))
	copy(buf, v.data)
	return buf
}

// Clone creates an independent copy by parsing the markup again.
func (v *Vector) Clone() *Vector {
	c, err := ParseVector(v.data)
	if err != nil {
		// already parsed once, cannot fail
		panic(err)
	}
	return c
}

// Rasterize renders the image to a bitmap of w x h pixels.
func (v *Vector) Rasterize(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	v.icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	v.icon.Draw(raster, 1.0)
	return img
}
