package render

import (
	"math"

	"github.com/llgcode/draw2d"

	lt "github.com/akeil/labeltool"
)

// pathSink receives path segments in page coordinates.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Close()
}

// walkPath transforms every point of p with m and passes the segments
// to sink. Quadratic curves are raised to cubic ones, arcs are
// approximated with cubic segments.
func walkPath(p *draw2d.Path, m lt.Matrix, sink pathSink) {
	var cx, cy float64
	i := 0
	for _, cmp := range p.Components {
		switch cmp {
		case draw2d.MoveToCmp:
			cx, cy = p.Points[i], p.Points[i+1]
			sink.MoveTo(m.Map(cx, cy))
			i += 2
		case draw2d.LineToCmp:
			cx, cy = p.Points[i], p.Points[i+1]
			sink.LineTo(m.Map(cx, cy))
			i += 2
		case draw2d.QuadCurveToCmp:
			qx, qy := p.Points[i], p.Points[i+1]
			x, y := p.Points[i+2], p.Points[i+3]
			c1x, c1y := cx+2.0/3.0*(qx-cx), cy+2.0/3.0*(qy-cy)
			c2x, c2y := x+2.0/3.0*(qx-x), y+2.0/3.0*(qy-y)
			cubicTo(sink, m, c1x, c1y, c2x, c2y, x, y)
			cx, cy = x, y
			i += 4
		case draw2d.CubicCurveToCmp:
			cubicTo(sink, m, p.Points[i], p.Points[i+1], p.Points[i+2], p.Points[i+3], p.Points[i+4], p.Points[i+5])
			cx, cy = p.Points[i+4], p.Points[i+5]
			i += 6
		case draw2d.ArcToCmp:
			cx, cy = arcTo(sink, m, p.Points[i:i+6])
			i += 6
		case draw2d.CloseCmp:
			sink.Close()
		}
	}
}

func cubicTo(sink pathSink, m lt.Matrix, x1, y1, x2, y2, x, y float64) {
	tx1, ty1 := m.Map(x1, y1)
	tx2, ty2 := m.Map(x2, y2)
	tx, ty := m.Map(x, y)
	sink.CubicTo(tx1, ty1, tx2, ty2, tx, ty)
}

// arcTo draws an elliptical arc given as center, radii, start angle and
// sweep. It returns the end point.
func arcTo(sink pathSink, m lt.Matrix, a []float64) (float64, float64) {
	cx, cy, rx, ry, start, sweep := a[0], a[1], a[2], a[3], a[4], a[5]

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	x := cx + rx*math.Cos(start)
	y := cy + ry*math.Sin(start)
	sink.LineTo(m.Map(x, y))

	angle := start
	for s := 0; s < segments; s++ {
		next := angle + step
		x1 := cx + rx*(math.Cos(angle)-k*math.Sin(angle))
		y1 := cy + ry*(math.Sin(angle)+k*math.Cos(angle))
		x = cx + rx*math.Cos(next)
		y = cy + ry*math.Sin(next)
		x2 := x + rx*k*math.Sin(next)
		y2 := y - ry*k*math.Cos(next)
		cubicTo(sink, m, x1, y1, x2, y2, x, y)
		angle = next
	}
	return x, y
}
