package labeltool

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d"

	"github.com/akeil/labeltool/internal/logging"
)

// BarcodeRenderer creates barcode symbols.
// Symbol encoding is not part of this package.
type BarcodeRenderer interface {
	// Render creates the symbol for data in the named style,
	// sized to w x h points.
	Render(style, data string, showText, checksum bool, w, h float64) (image.Image, error)
}

const defaultBarcodeStyle = "code39"

var barcodePlaceholderFill = color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}

// Barcode is a barcode symbol.
type Barcode struct {
	object
	res       *Resources
	style     string
	dataNode  TextNode
	showText  bool
	checksum  bool
	colorNode TextNode
}

// NewBarcode creates a barcode object. Symbols are created with the
// BarcodeRenderer from res.
func NewBarcode(res *Resources) *Barcode {
	return &Barcode{
		object:    newObject(),
		res:       res,
		style:     defaultBarcodeStyle,
		showText:  true,
		checksum:  true,
		colorNode: ColorNode(color.Black),
	}
}

func (b *Barcode) Kind() Kind {
	return KindBarcode
}

func (b *Barcode) Accept(v Visitor) {
	v.VisitBarcode(b)
}

func (b *Barcode) Clone() Object {
	c := *b
	c.object = b.cloneBase()
	return &c
}

// Style is the name of the barcode symbology, e.g. "code39".
func (b *Barcode) Style() string {
	return b.style
}

func (b *Barcode) SetStyle(s string) {
	if b.style == s {
		return
	}
	b.style = s
	b.emit()
}

func (b *Barcode) DataNode() TextNode {
	return b.dataNode
}

func (b *Barcode) SetDataNode(n TextNode) {
	if b.dataNode == n {
		return
	}
	b.dataNode = n
	b.emit()
}

func (b *Barcode) ShowText() bool {
	return b.showText
}

func (b *Barcode) SetShowText(show bool) {
	if b.showText == show {
		return
	}
	b.showText = show
	b.emit()
}

func (b *Barcode) Checksum() bool {
	return b.checksum
}

func (b *Barcode) SetChecksum(checksum bool) {
	if b.checksum == checksum {
		return
	}
	b.checksum = checksum
	b.emit()
}

func (b *Barcode) BarcodeColorNode() TextNode {
	return b.colorNode
}

func (b *Barcode) SetBarcodeColorNode(n TextNode) {
	if b.colorNode == n {
		return
	}
	b.colorNode = n
	b.emit()
}

func (b *Barcode) DrawShadow(p Painter, inEditor bool, rec Record) {
	p.FillPath(RectPath(0, 0, b.w.Pt(), b.h.Pt()), b.shadowPaint(rec))
}

func (b *Barcode) DrawObject(p Painter, inEditor bool, rec Record) {
	symbol := b.symbol(inEditor, rec)
	if symbol != nil {
		p.DrawImage(symbol, 0, 0, b.w.Pt(), b.h.Pt())
		return
	}

	if inEditor {
		outline := RectPath(0, 0, b.w.Pt(), b.h.Pt())
		p.FillPath(outline, barcodePlaceholderFill)
		p.StrokePath(outline, b.colorNode.Color(rec), 1)
		f := Font{Family: defaultFontFamily, Size: defaultFontSize}
		_, ascent, _ := p.TextExtents(b.style, f)
		p.FillText(b.style, 2, 2+ascent, f, b.colorNode.Color(rec))
	}
}

func (b *Barcode) HoverPath(scale float64) *draw2d.Path {
	return b.boundsPath(scale)
}

func (b *Barcode) symbol(inEditor bool, rec Record) image.Image {
	r := b.res.barcodes()
	if r == nil {
		return nil
	}
	if b.dataNode.IsField() && rec == nil {
		// nothing to encode until we have a record
		return nil
	}
	data := b.dataNode.Resolve(rec)
	if data == "" {
		return nil
	}

	img, err := r.Render(b.style, data, b.showText, b.checksum, b.w.Pt(), b.h.Pt())
	if err != nil {
		logging.Warning("Failed to create %v barcode for %q: %v", b.style, data, err)
		return nil
	}
	return img
}
