package labeltool

import (
	"fmt"
	"image"
	"image/color"

	"github.com/llgcode/draw2d"
)

// recorder is a Painter that records the calls it receives.
type recorder struct {
	calls  []string
	images []image.Image
	fills  []color.Color
}

func (r *recorder) add(format string, v ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, v...))
}

func (r *recorder) Save()    { r.add("save") }
func (r *recorder) Restore() { r.add("restore") }

func (r *recorder) Transform(m Matrix) {
	r.add("transform %v", m)
}

func (r *recorder) Translate(dx, dy float64) {
	r.add("translate %v %v", dx, dy)
}

func (r *recorder) FillPath(p *draw2d.Path, c color.Color) {
	r.fills = append(r.fills, c)
	r.add("fill %v", RGBA(c))
}

func (r *recorder) StrokePath(p *draw2d.Path, c color.Color, width float64) {
	r.add("stroke %v %v", RGBA(c), width)
}

func (r *recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.images = append(r.images, img)
	r.add("image %v %v %v %v", x, y, w, h)
}

func (r *recorder) DrawVector(v *Vector, x, y, w, h float64) {
	r.add("vector %v %v %v %v", x, y, w, h)
}

func (r *recorder) FillText(text string, x, y float64, f Font, c color.Color) {
	r.add("text %q %v %v", text, x, y)
}

func (r *recorder) TextExtents(text string, f Font) (float64, float64, float64) {
	// fixed advance of half the font size per rune
	return float64(len([]rune(text))) * f.Size / 2, f.Size * 0.8, f.Size * 0.2
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
