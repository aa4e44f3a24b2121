// Package render paints labels and sheet previews to PNG, SVG and PDF.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/logging"
)

const defaultDPI = 300.0

var bgColor = color.White

// Context holds parameters for rendering operations.
//
// A Context can be shared by concurrent renderings.
type Context struct {
	// DPI is the resolution for raster output.
	DPI float64
	// Resources is passed to objects created while rendering.
	Resources *lt.Resources
}

// NewContext sets up a rendering context with the default resolution.
func NewContext(res *lt.Resources) *Context {
	return &Context{
		DPI:       defaultDPI,
		Resources: res,
	}
}

func (c *Context) scale() float64 {
	if c.DPI <= 0 {
		return defaultDPI / 72
	}
	return c.DPI / 72
}

// Label renders a single label as it is designed (not rotated onto the
// sheet) and writes a PNG to w.
func (c *Context) Label(m *lt.Model, rec lt.Record, w io.Writer) error {
	img, err := c.LabelImage(m, rec)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// LabelImage renders a single label as it is designed.
func (c *Context) LabelImage(m *lt.Model, rec lt.Record) (*image.RGBA, error) {
	err := m.Validate()
	if err != nil {
		return nil, err
	}

	s := c.scale()
	dst := newCanvas(m.W().Pt()*s, m.H().Pt()*s)
	renderBackground(dst)

	p := NewPainter(dst, s)
	m.Draw(p, false, rec)
	logging.Debug("Rendered label %dx%d px", dst.Bounds().Dx(), dst.Bounds().Dy())
	return dst, nil
}

// frameImage renders a label in the orientation of the first frame of
// the template, with a transparent background.
func (c *Context) frameImage(m *lt.Model, rec lt.Record) (*image.RGBA, error) {
	tpl := m.Template()
	if tpl == nil || len(tpl.Frames) == 0 {
		return nil, errors.NewValidationError("label has no template")
	}
	size := tpl.Frames[0].Size()

	s := c.scale()
	dst := newCanvas(size.W.Pt()*s, size.H.Pt()*s)
	p := NewPainter(dst, s)
	if m.Rotate() {
		p.Transform(lt.Translation(-m.W().Pt(), 0).Multiply(lt.Rotation(-90)))
	}
	m.Draw(p, false, rec)
	return dst, nil
}

func newCanvas(w, h float64) *image.RGBA {
	pw := int(math.Max(1, math.Ceil(w)))
	ph := int(math.Max(1, math.Ceil(h)))
	return image.NewRGBA(image.Rect(0, 0, pw, ph))
}

// renderBackground fills the complete destination image with the background color (white).
func renderBackground(dst draw.Image) {
	bg := image.NewUniform(bgColor)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}
