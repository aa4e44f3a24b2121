package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/llgcode/draw2d"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/pkg/preview"
)

const shadowFilterID = "drop-shadow"

// PreviewSVG writes a sheet preview as an SVG document.
// One user unit is one point.
func PreviewSVG(s *preview.Scene, w io.Writer) error {
	cw := &errWriter{w: w}
	canvas := svg.New(cw)

	x := int(math.Floor(s.Rect.X))
	y := int(math.Floor(s.Rect.Y))
	vw := int(math.Ceil(s.Rect.W))
	vh := int(math.Ceil(s.Rect.H))
	canvas.Startview(vw, vh, x, y, vw, vh)

	canvas.Def()
	canvas.Filter(shadowFilterID)
	canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, shadowBlur(s), shadowBlur(s))
	canvas.Fend()
	canvas.DefEnd()

	for _, item := range s.Items {
		if item.Shadow != nil {
			sh := item.Shadow
			d := svgPath(item.Path, item.Matrix)
			canvas.Gtransform(fmt.Sprintf("translate(%v,%v)", num(sh.Offset), num(sh.Offset)))
			canvas.Path(d, fillStyle(sh.Color)+";filter:url(#"+shadowFilterID+")")
			canvas.Gend()
		}

		if item.Text != "" {
			m := item.Matrix
			canvas.Gtransform(fmt.Sprintf("matrix(%v %v %v %v %v %v) translate(0,%v)",
				num(m.M11), num(m.M12), num(m.M21), num(m.M22), num(m.Dx), num(m.Dy), num(item.Top)))
			canvas.Text(0, 0, item.Text, textStyle(item))
			canvas.Gend()
			continue
		}

		canvas.Path(svgPath(item.Path, item.Matrix), shapeStyle(item))
	}

	canvas.End()
	return cw.err
}

func shadowBlur(s *preview.Scene) float64 {
	for _, item := range s.Items {
		if item.Shadow != nil {
			return item.Shadow.Blur / 2
		}
	}
	return 0
}

func shapeStyle(item preview.Item) string {
	parts := make([]string, 0, 4)
	if item.Fill.A != 0 {
		parts = append(parts, fillStyle(item.Fill))
	} else {
		parts = append(parts, "fill:none")
	}
	if item.Stroke.A != 0 && item.LineWidth > 0 {
		c, a := cssColor(item.Stroke)
		parts = append(parts, "stroke:"+c, "stroke-opacity:"+num(a), "stroke-width:"+num(item.LineWidth))
		if item.Cosmetic {
			parts = append(parts, "vector-effect:non-scaling-stroke")
		}
		if item.FlatCap {
			parts = append(parts, "stroke-linecap:butt", "stroke-linejoin:miter")
		}
	}
	return strings.Join(parts, ";")
}

func fillStyle(c color.NRGBA) string {
	css, a := cssColor(c)
	return "fill:" + css + ";fill-opacity:" + num(a)
}

func textStyle(item preview.Item) string {
	weight := "normal"
	if item.Font.Weight.IsBold() {
		weight = "bold"
	}
	return fmt.Sprintf("%v;font-family:%v;font-weight:%v;font-size:%vpx;text-anchor:middle;dominant-baseline:text-before-edge",
		fillStyle(item.Fill), item.Font.Family, weight, num(item.Font.Size))
}

func cssColor(c color.NRGBA) (string, float64) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), float64(c.A) / 255
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// svgPathBuilder creates SVG path data.
type svgPathBuilder struct {
	b strings.Builder
}

func (s *svgPathBuilder) add(cmd string, v ...float64) {
	if s.b.Len() > 0 {
		s.b.WriteByte(' ')
	}
	s.b.WriteString(cmd)
	for _, x := range v {
		s.b.WriteByte(' ')
		s.b.WriteString(num(round(x)))
	}
}

func (s *svgPathBuilder) MoveTo(x, y float64) {
	s.add("M", x, y)
}

func (s *svgPathBuilder) LineTo(x, y float64) {
	s.add("L", x, y)
}

func (s *svgPathBuilder) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.add("C", x1, y1, x2, y2, x, y)
}

func (s *svgPathBuilder) Close() {
	s.add("Z")
}

func svgPath(p *draw2d.Path, m lt.Matrix) string {
	b := &svgPathBuilder{}
	walkPath(p, m, b)
	return b.b.String()
}

// round limits coordinates to 1/1000 point.
func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// errWriter remembers the first write error, svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (c *errWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.err = err
	return n, err
}
