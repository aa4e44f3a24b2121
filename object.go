package labeltool

import (
	"image/color"

	"github.com/llgcode/draw2d"
)

// Kind identifies the type of a placed object.
type Kind int

const (
	KindBox Kind = iota
	KindEllipse
	KindLine
	KindImage
	KindText
	KindBarcode
)

var kindNames = map[Kind]string{
	KindBox:     "box",
	KindEllipse: "ellipse",
	KindLine:    "line",
	KindImage:   "image",
	KindText:    "text",
	KindBarcode: "barcode",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Visitor has one method for each kind of object.
//
// Code that needs to handle every object type (e.g. a file writer)
// implements Visitor; adding a new kind then breaks the build until
// every visitor handles it.
type Visitor interface {
	VisitBox(*Box)
	VisitEllipse(*Ellipse)
	VisitLine(*Line)
	VisitImage(*Image)
	VisitText(*Text)
	VisitBarcode(*Barcode)
}

// Object is a single item placed on a label.
//
// All objects share position, size, transform, line, fill and shadow
// properties. Setters notify subscribers once for each actual change;
// setting a property to its current value does nothing.
//
// The set of object types is closed, see Visitor.
type Object interface {
	Kind() Kind
	Accept(v Visitor)
	// Clone creates an independent deep copy without subscribers.
	Clone() Object

	X0() Distance
	Y0() Distance
	SetPosition(x0, y0 Distance)
	W() Distance
	H() Distance
	Size() Size
	SetSize(w, h Distance)
	Matrix() Matrix
	SetMatrix(m Matrix)

	LineWidth() Distance
	SetLineWidth(w Distance)
	LineColorNode() TextNode
	SetLineColorNode(n TextNode)
	FillColorNode() TextNode
	SetFillColorNode(n TextNode)

	Shadow() bool
	SetShadow(enabled bool)
	ShadowX() Distance
	ShadowY() Distance
	SetShadowOffset(x, y Distance)
	ShadowColorNode() TextNode
	SetShadowColorNode(n TextNode)
	ShadowOpacity() float64
	SetShadowOpacity(o float64)

	// DrawShadow paints the silhouette of the object.
	// The caller has already applied the shadow offset.
	DrawShadow(p Painter, inEditor bool, rec Record)
	// DrawObject paints the object itself in local coordinates.
	DrawObject(p Painter, inEditor bool, rec Record)
	// HoverPath is the outline used for hit testing, in local coordinates.
	HoverPath(scale float64) *draw2d.Path

	Subscribe(fn func()) func()

	// release drops owned asset buffers when the object is removed.
	release()
}

// Draw paints the given object, including its shadow, at its position.
func Draw(p Painter, o Object, inEditor bool, rec Record) {
	p.Save()
	defer p.Restore()

	p.Translate(o.X0().Pt(), o.Y0().Pt())

	if o.Shadow() {
		p.Save()
		p.Translate(o.ShadowX().Pt(), o.ShadowY().Pt())
		p.Transform(o.Matrix())
		o.DrawShadow(p, inEditor, rec)
		p.Restore()
	}

	p.Transform(o.Matrix())
	o.DrawObject(p, inEditor, rec)
}

const (
	defaultLineWidth     = 1.0
	defaultShadowOffset  = 1.3
	defaultShadowOpacity = 0.5
	hoverSlopPixels      = 2.0
)

// object holds the properties common to all kinds of objects.
type object struct {
	notifier
	x0            Distance
	y0            Distance
	w             Distance
	h             Distance
	matrix        Matrix
	lineWidth     Distance
	lineColor     TextNode
	fillColor     TextNode
	shadow        bool
	shadowX       Distance
	shadowY       Distance
	shadowColor   TextNode
	shadowOpacity float64
}

func newObject() object {
	return object{
		w:             Pt(72),
		h:             Pt(72),
		matrix:        Identity(),
		lineWidth:     Pt(defaultLineWidth),
		lineColor:     ColorNode(color.Black),
		fillColor:     ColorNode(color.Transparent),
		shadowX:       Pt(defaultShadowOffset),
		shadowY:       Pt(defaultShadowOffset),
		shadowColor:   ColorNode(color.Black),
		shadowOpacity: defaultShadowOpacity,
	}
}

// cloneBase copies all properties, but not the subscribers.
func (o *object) cloneBase() object {
	c := *o
	c.notifier = notifier{}
	return c
}

func (o *object) release() {}

func (o *object) X0() Distance {
	return o.x0
}

func (o *object) Y0() Distance {
	return o.y0
}

func (o *object) SetPosition(x0, y0 Distance) {
	if o.x0 == x0 && o.y0 == y0 {
		return
	}
	o.x0 = x0
	o.y0 = y0
	o.emit()
}

func (o *object) W() Distance {
	return o.w
}

func (o *object) H() Distance {
	return o.h
}

func (o *object) Size() Size {
	return Size{W: o.w, H: o.h}
}

// SetSize sets width and height. Negative values are treated as zero.
func (o *object) SetSize(w, h Distance) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if o.w == w && o.h == h {
		return
	}
	o.w = w
	o.h = h
	o.emit()
}

func (o *object) Matrix() Matrix {
	return o.matrix
}

func (o *object) SetMatrix(m Matrix) {
	if o.matrix == m {
		return
	}
	o.matrix = m
	o.emit()
}

func (o *object) LineWidth() Distance {
	return o.lineWidth
}

func (o *object) SetLineWidth(w Distance) {
	if o.lineWidth == w {
		return
	}
	o.lineWidth = w
	o.emit()
}

func (o *object) LineColorNode() TextNode {
	return o.lineColor
}

func (o *object) SetLineColorNode(n TextNode) {
	if o.lineColor == n {
		return
	}
	o.lineColor = n
	o.emit()
}

func (o *object) FillColorNode() TextNode {
	return o.fillColor
}

func (o *object) SetFillColorNode(n TextNode) {
	if o.fillColor == n {
		return
	}
	o.fillColor = n
	o.emit()
}

func (o *object) Shadow() bool {
	return o.shadow
}

func (o *object) SetShadow(enabled bool) {
	if o.shadow == enabled {
		return
	}
	o.shadow = enabled
	o.emit()
}

func (o *object) ShadowX() Distance {
	return o.shadowX
}

func (o *object) ShadowY() Distance {
	return o.shadowY
}

func (o *object) SetShadowOffset(x, y Distance) {
	if o.shadowX == x && o.shadowY == y {
		return
	}
	o.shadowX = x
	o.shadowY = y
	o.emit()
}

func (o *object) ShadowColorNode() TextNode {
	return o.shadowColor
}

func (o *object) SetShadowColorNode(n TextNode) {
	if o.shadowColor == n {
		return
	}
	o.shadowColor = n
	o.emit()
}

func (o *object) ShadowOpacity() float64 {
	return o.shadowOpacity
}

// SetShadowOpacity sets the shadow opacity, clamped to 0.0..1.0.
func (o *object) SetShadowOpacity(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	if o.shadowOpacity == v {
		return
	}
	o.shadowOpacity = v
	o.emit()
}

// shadowPaint is the shadow color with the shadow opacity applied.
func (o *object) shadowPaint(rec Record) color.NRGBA {
	return withOpacity(o.shadowColor.Color(rec), o.shadowOpacity)
}

// boundsPath is the bounding rectangle, grown by half the line width and
// a few pixels of slop at the given view scale.
func (o *object) boundsPath(scale float64) *draw2d.Path {
	d := o.lineWidth.Pt()/2 + hoverSlopPixels/scale
	return RectPath(-d, -d, o.w.Pt()+2*d, o.h.Pt()+2*d)
}

// drawShape paints a closed outline with the fill and line colors.
func (o *object) drawShape(p Painter, path *draw2d.Path, rec Record) {
	fill := o.fillColor.Color(rec)
	line := o.lineColor.Color(rec)

	if fill.A != 0 {
		p.FillPath(path, fill)
	}
	if line.A != 0 && o.lineWidth > 0 {
		p.StrokePath(path, line, o.lineWidth.Pt())
	}
}

// drawShapeShadow paints the shadow for a closed outline.
// Only the visible parts (fill and/or line) cast a shadow.
func (o *object) drawShapeShadow(p Painter, path *draw2d.Path, rec Record) {
	fill := o.fillColor.Color(rec)
	line := o.lineColor.Color(rec)
	shadow := o.shadowPaint(rec)

	if fill.A != 0 {
		p.FillPath(path, shadow)
	}
	if line.A != 0 && o.lineWidth > 0 {
		p.StrokePath(path, shadow, o.lineWidth.Pt())
	}
}
