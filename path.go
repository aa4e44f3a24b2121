package labeltool

import (
	"github.com/llgcode/draw2d"
)

// kappa is the control point distance for a cubic Bézier quarter circle.
const kappa = 0.5522847498

// RectPath creates a closed rectangle path.
func RectPath(x, y, w, h float64) *draw2d.Path {
	p := &draw2d.Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundRectPath creates a rectangle with rounded corners of radius r.
func RoundRectPath(x, y, w, h, r float64) *draw2d.Path {
	if r <= 0 {
		return RectPath(x, y, w, h)
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	k := r * kappa

	p := &draw2d.Path{}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicCurveTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicCurveTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicCurveTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicCurveTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
	return p
}

// EllipsePath creates an ellipse inscribed in the given rectangle.
func EllipsePath(x, y, w, h float64) *draw2d.Path {
	rx := w / 2
	ry := h / 2
	cx := x + rx
	cy := y + ry
	kx := rx * kappa
	ky := ry * kappa

	p := &draw2d.Path{}
	p.MoveTo(cx+rx, cy)
	p.CubicCurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicCurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicCurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicCurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// LinePath creates an open path for a single segment.
func LinePath(x0, y0, x1, y1 float64) *draw2d.Path {
	p := &draw2d.Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}
