package labeltool

import (
	"image/color"
	"strings"

	"github.com/llgcode/draw2d"
)

// HAlign is the horizontal alignment of text.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var hAlignNames = map[HAlign]string{
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
	AlignJustify: "justify",
}

func (a HAlign) String() string {
	return hAlignNames[a]
}

// ParseHAlign reads an alignment name; unknown names are AlignLeft.
func ParseHAlign(s string) HAlign {
	for a, name := range hAlignNames {
		if name == s {
			return a
		}
	}
	return AlignLeft
}

// VAlign is the vertical alignment of text.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

var vAlignNames = map[VAlign]string{
	AlignTop:    "top",
	AlignMiddle: "middle",
	AlignBottom: "bottom",
}

func (a VAlign) String() string {
	return vAlignNames[a]
}

// ParseVAlign reads an alignment name; unknown names are AlignTop.
func ParseVAlign(s string) VAlign {
	for a, name := range vAlignNames {
		if name == s {
			return a
		}
	}
	return AlignTop
}

const (
	defaultFontFamily  = "Sans"
	defaultFontSize    = 10.0
	defaultLineSpacing = 1.0
)

// Text is a block of one or more paragraphs.
//
// The text can contain merge fields written as "${field}" which are
// replaced with values from the merge record when drawing.
type Text struct {
	object
	text        string
	colorNode   TextNode
	font        Font
	lineSpacing float64
	hAlign      HAlign
	vAlign      VAlign
}

// NewText creates an empty text object with default font settings.
func NewText() *Text {
	return &Text{
		object:      newObject(),
		colorNode:   ColorNode(color.Black),
		font:        Font{Family: defaultFontFamily, Size: defaultFontSize},
		lineSpacing: defaultLineSpacing,
	}
}

func (t *Text) Kind() Kind {
	return KindText
}

func (t *Text) Accept(v Visitor) {
	v.VisitText(t)
}

func (t *Text) Clone() Object {
	c := *t
	c.object = t.cloneBase()
	return &c
}

func (t *Text) Text() string {
	return t.text
}

func (t *Text) SetText(s string) {
	if t.text == s {
		return
	}
	t.text = s
	t.emit()
}

// Paragraphs splits the raw text into paragraphs.
func (t *Text) Paragraphs() []string {
	return strings.Split(t.text, "\n")
}

func (t *Text) TextColorNode() TextNode {
	return t.colorNode
}

func (t *Text) SetTextColorNode(n TextNode) {
	if t.colorNode == n {
		return
	}
	t.colorNode = n
	t.emit()
}

// Font returns all font settings.
func (t *Text) Font() Font {
	return t.font
}

func (t *Text) SetFontFamily(family string) {
	if t.font.Family == family {
		return
	}
	t.font.Family = family
	t.emit()
}

func (t *Text) SetFontSize(size float64) {
	if t.font.Size == size {
		return
	}
	t.font.Size = size
	t.emit()
}

func (t *Text) SetFontWeight(w FontWeight) {
	if t.font.Weight == w {
		return
	}
	t.font.Weight = w
	t.emit()
}

func (t *Text) SetFontItalic(italic bool) {
	if t.font.Italic == italic {
		return
	}
	t.font.Italic = italic
	t.emit()
}

func (t *Text) SetFontUnderline(underline bool) {
	if t.font.Underline == underline {
		return
	}
	t.font.Underline = underline
	t.emit()
}

func (t *Text) LineSpacing() float64 {
	return t.lineSpacing
}

func (t *Text) SetLineSpacing(s float64) {
	if t.lineSpacing == s {
		return
	}
	t.lineSpacing = s
	t.emit()
}

func (t *Text) HAlign() HAlign {
	return t.hAlign
}

func (t *Text) SetHAlign(a HAlign) {
	if t.hAlign == a {
		return
	}
	t.hAlign = a
	t.emit()
}

func (t *Text) VAlign() VAlign {
	return t.vAlign
}

func (t *Text) SetVAlign(a VAlign) {
	if t.vAlign == a {
		return
	}
	t.vAlign = a
	t.emit()
}

func (t *Text) DrawShadow(p Painter, inEditor bool, rec Record) {
	if t.colorNode.Color(rec).A == 0 {
		return
	}
	t.drawText(p, t.shadowPaint(rec), inEditor, rec)
}

func (t *Text) DrawObject(p Painter, inEditor bool, rec Record) {
	t.drawText(p, t.colorNode.Color(rec), inEditor, rec)
}

func (t *Text) HoverPath(scale float64) *draw2d.Path {
	return t.boundsPath(scale)
}

func (t *Text) drawText(p Painter, c color.Color, inEditor bool, rec Record) {
	text := t.text
	// without a record, the editor shows the field names
	if !(inEditor && rec == nil) {
		text = ExpandFields(text, rec)
	}
	lines := strings.Split(text, "\n")

	lineHeight := t.font.Size * t.lineSpacing
	total := lineHeight * float64(len(lines))

	var y float64
	switch t.vAlign {
	case AlignMiddle:
		y = (t.h.Pt() - total) / 2
	case AlignBottom:
		y = t.h.Pt() - total
	}

	for _, line := range lines {
		width, ascent, descent := p.TextExtents(line, t.font)

		var x float64
		switch t.hAlign {
		case AlignCenter:
			x = (t.w.Pt() - width) / 2
		case AlignRight:
			x = t.w.Pt() - width
		}

		baseline := y + ascent
		p.FillText(line, x, baseline, t.font, c)

		if t.font.Underline && width > 0 {
			uy := baseline + descent/2
			p.StrokePath(LinePath(x, uy, x+width, uy), c, t.font.Size/14)
		}

		y += lineHeight
	}
}

// ExpandFields replaces "${field}" markers in s with values from rec.
// Unknown fields are replaced with "".
func ExpandFields(s string, rec Record) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		key := s[start+2 : start+end]
		b.WriteString(rec.Value(key))
		s = s[start+end+1:]
	}
	b.WriteString(s)
	return b.String()
}
