package render

import (
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	lt "github.com/akeil/labeltool"
)

// Painter draws labels on a raster image.
//
// Coordinates are in points; the scale maps points to pixels.
type Painter struct {
	gc *draw2dimg.GraphicContext
}

// NewPainter creates a painter for the given image.
// With a scale of 1, one point is one pixel.
func NewPainter(dst *image.RGBA, scale float64) *Painter {
	registerFonts()
	gc := draw2dimg.NewGraphicContext(dst)
	// font sizes are in points, i.e. user units
	gc.SetDPI(72)
	gc.Scale(scale, scale)
	return &Painter{gc: gc}
}

func (p *Painter) Save() {
	p.gc.Save()
}

func (p *Painter) Restore() {
	p.gc.Restore()
}

func (p *Painter) Transform(m lt.Matrix) {
	p.gc.ComposeMatrixTransform(toDraw2D(m))
}

func (p *Painter) Translate(dx, dy float64) {
	p.gc.Translate(dx, dy)
}

func (p *Painter) FillPath(path *draw2d.Path, c color.Color) {
	p.gc.SetFillColor(c)
	p.gc.Fill(path)
}

func (p *Painter) StrokePath(path *draw2d.Path, c color.Color, width float64) {
	p.gc.SetStrokeColor(c)
	p.gc.SetLineWidth(width)
	p.gc.Stroke(path)
}

// setCaps selects flat line ends with sharp corners.
func (p *Painter) setCaps(flat bool) {
	if flat {
		p.gc.SetLineCap(draw2d.ButtCap)
		p.gc.SetLineJoin(draw2d.MiterJoin)
	} else {
		p.gc.SetLineCap(draw2d.RoundCap)
		p.gc.SetLineJoin(draw2d.RoundJoin)
	}
}

func (p *Painter) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() || w <= 0 || h <= 0 {
		return
	}
	p.gc.Save()
	defer p.gc.Restore()
	p.gc.Translate(x, y)
	p.gc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	p.gc.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	p.gc.DrawImage(img)
}

// DrawVector rasterizes the vector image at the current device
// resolution and draws the result.
func (p *Painter) DrawVector(v *lt.Vector, x, y, w, h float64) {
	s := p.deviceScale()
	px := int(math.Ceil(w * s))
	py := int(math.Ceil(h * s))
	if px < 1 || py < 1 {
		return
	}
	p.DrawImage(v.Rasterize(px, py), x, y, w, h)
}

func (p *Painter) FillText(text string, x, y float64, f lt.Font, c color.Color) {
	p.gc.SetFontData(fontData(f))
	p.gc.SetFontSize(f.Size)
	p.gc.SetFillColor(c)
	p.gc.FillStringAt(text, x, y)
}

func (p *Painter) TextExtents(text string, f lt.Font) (float64, float64, float64) {
	return measure(text, f)
}

// deviceScale is the number of pixels per user unit.
func (p *Painter) deviceScale() float64 {
	tr := p.gc.GetMatrixTransform()
	return math.Sqrt(math.Abs(tr.Determinant()))
}

func toDraw2D(m lt.Matrix) draw2d.Matrix {
	return draw2d.Matrix{m.M11, m.M12, m.M21, m.M22, m.Dx, m.Dy}
}
