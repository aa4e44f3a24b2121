package labeltool

import (
	"math"

	"github.com/llgcode/draw2d"
)

// Box is a rectangle.
type Box struct {
	object
}

// NewBox creates a box with default properties.
func NewBox() *Box {
	return &Box{object: newObject()}
}

func (b *Box) Kind() Kind {
	return KindBox
}

func (b *Box) Accept(v Visitor) {
	v.VisitBox(b)
}

func (b *Box) Clone() Object {
	return &Box{object: b.cloneBase()}
}

func (b *Box) DrawShadow(p Painter, inEditor bool, rec Record) {
	b.drawShapeShadow(p, b.path(), rec)
}

func (b *Box) DrawObject(p Painter, inEditor bool, rec Record) {
	b.drawShape(p, b.path(), rec)
}

func (b *Box) HoverPath(scale float64) *draw2d.Path {
	return b.boundsPath(scale)
}

func (b *Box) path() *draw2d.Path {
	return RectPath(0, 0, b.w.Pt(), b.h.Pt())
}

// Ellipse is an ellipse inscribed in the object's bounding box.
type Ellipse struct {
	object
}

// NewEllipse creates an ellipse with default properties.
func NewEllipse() *Ellipse {
	return &Ellipse{object: newObject()}
}

func (e *Ellipse) Kind() Kind {
	return KindEllipse
}

func (e *Ellipse) Accept(v Visitor) {
	v.VisitEllipse(e)
}

func (e *Ellipse) Clone() Object {
	return &Ellipse{object: e.cloneBase()}
}

func (e *Ellipse) DrawShadow(p Painter, inEditor bool, rec Record) {
	e.drawShapeShadow(p, e.path(), rec)
}

func (e *Ellipse) DrawObject(p Painter, inEditor bool, rec Record) {
	e.drawShape(p, e.path(), rec)
}

func (e *Ellipse) HoverPath(scale float64) *draw2d.Path {
	d := e.lineWidth.Pt()/2 + hoverSlopPixels/scale
	return EllipsePath(-d, -d, e.w.Pt()+2*d, e.h.Pt()+2*d)
}

func (e *Ellipse) path() *draw2d.Path {
	return EllipsePath(0, 0, e.w.Pt(), e.h.Pt())
}

// Line is a straight line from (0, 0) to (w, h).
// Lines have no fill.
type Line struct {
	object
}

// NewLine creates a line with default properties.
func NewLine() *Line {
	return &Line{object: newObject()}
}

func (l *Line) Kind() Kind {
	return KindLine
}

func (l *Line) Accept(v Visitor) {
	v.VisitLine(l)
}

func (l *Line) Clone() Object {
	return &Line{object: l.cloneBase()}
}

func (l *Line) DrawShadow(p Painter, inEditor bool, rec Record) {
	if l.lineColor.Color(rec).A == 0 {
		return
	}
	p.StrokePath(l.path(), l.shadowPaint(rec), l.lineWidth.Pt())
}

func (l *Line) DrawObject(p Painter, inEditor bool, rec Record) {
	c := l.lineColor.Color(rec)
	if c.A == 0 {
		return
	}
	p.StrokePath(l.path(), c, l.lineWidth.Pt())
}

// HoverPath is a rectangle around the line segment.
func (l *Line) HoverPath(scale float64) *draw2d.Path {
	d := l.lineWidth.Pt()/2 + hoverSlopPixels/scale
	dx := l.w.Pt()
	dy := l.h.Pt()
	length := math.Hypot(dx, dy)
	if length == 0 {
		return RectPath(-d, -d, 2*d, 2*d)
	}

	// unit normal, scaled to the slop distance
	nx := -dy / length * d
	ny := dx / length * d
	// extend beyond the end points
	ex := dx / length * d
	ey := dy / length * d

	p := &draw2d.Path{}
	p.MoveTo(-ex+nx, -ey+ny)
	p.LineTo(dx+ex+nx, dy+ey+ny)
	p.LineTo(dx+ex-nx, dy+ey-ny)
	p.LineTo(-ex-nx, -ey-ny)
	p.Close()
	return p
}

func (l *Line) path() *draw2d.Path {
	return LinePath(0, 0, l.w.Pt(), l.h.Pt())
}
