package labeltool

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter counts change notifications.
type counter struct {
	n int
}

func (c *counter) inc() {
	c.n++
}

func allKinds() []Object {
	return []Object{
		NewBox(),
		NewEllipse(),
		NewLine(),
		NewImage(nil),
		NewText(),
		NewBarcode(nil),
	}
}

func TestSettersNotifyOnChangeOnly(t *testing.T) {
	for _, o := range allKinds() {
		c := &counter{}
		o.Subscribe(c.inc)

		o.SetPosition(Pt(10), Pt(20))
		assert.Equal(t, 1, c.n, o.Kind().String())
		o.SetPosition(Pt(10), Pt(20))
		assert.Equal(t, 1, c.n, o.Kind().String())

		o.SetSize(Pt(100), Pt(50))
		o.SetSize(Pt(100), Pt(50))
		assert.Equal(t, 2, c.n, o.Kind().String())

		o.SetMatrix(Identity())
		assert.Equal(t, 2, c.n, "identity is the default")
		o.SetMatrix(Rotation(30))
		assert.Equal(t, 3, c.n)

		o.SetLineWidth(o.LineWidth())
		o.SetLineColorNode(o.LineColorNode())
		o.SetFillColorNode(o.FillColorNode())
		o.SetShadow(o.Shadow())
		o.SetShadowOffset(o.ShadowX(), o.ShadowY())
		o.SetShadowColorNode(o.ShadowColorNode())
		o.SetShadowOpacity(o.ShadowOpacity())
		assert.Equal(t, 3, c.n, "no-op setters must not notify")

		o.SetLineColorNode(Field("color"))
		o.SetShadow(true)
		o.SetShadowOpacity(0.25)
		assert.Equal(t, 6, c.n)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBox()
	c := &counter{}
	cancel := b.Subscribe(c.inc)
	b.SetLineWidth(Pt(3))
	cancel()
	b.SetLineWidth(Pt(4))
	assert.Equal(t, 1, c.n)
}

func TestSizeIsNeverNegative(t *testing.T) {
	b := NewBox()
	b.SetSize(Pt(-5), Pt(10))
	assert.Equal(t, Pt(0), b.W())
	assert.Equal(t, Pt(10), b.H())
}

func TestTextSetters(t *testing.T) {
	txt := NewText()
	c := &counter{}
	txt.Subscribe(c.inc)

	txt.SetText("Hello\nWorld")
	txt.SetText("Hello\nWorld")
	txt.SetFontFamily("Serif")
	txt.SetFontSize(12)
	txt.SetFontSize(12)
	txt.SetFontWeight(WeightBold)
	txt.SetFontItalic(true)
	txt.SetFontUnderline(true)
	txt.SetLineSpacing(1.5)
	txt.SetHAlign(AlignCenter)
	txt.SetVAlign(AlignBottom)
	txt.SetVAlign(AlignBottom)
	txt.SetTextColorNode(Field("ink"))

	assert.Equal(t, 10, c.n)
	assert.Equal(t, []string{"Hello", "World"}, txt.Paragraphs())
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewText()
	src.SetPosition(Pt(1), Pt(2))
	src.SetSize(Pt(30), Pt(40))
	src.SetText("${name}")
	src.SetFontSize(14)
	src.SetShadow(true)
	src.SetFillColorNode(ColorNode(color.NRGBA{1, 2, 3, 4}))

	c := &counter{}
	src.Subscribe(c.inc)

	clone := src.Clone().(*Text)
	assert.Equal(t, src.X0(), clone.X0())
	assert.Equal(t, src.Size(), clone.Size())
	assert.Equal(t, src.Text(), clone.Text())
	assert.Equal(t, src.Font(), clone.Font())
	assert.Equal(t, src.Shadow(), clone.Shadow())
	assert.Equal(t, src.FillColorNode(), clone.FillColorNode())

	// changing the clone neither changes nor notifies the source
	clone.SetText("other")
	clone.SetSize(Pt(1), Pt(1))
	assert.Equal(t, "${name}", src.Text())
	assert.Equal(t, Pt(30), src.W())
	assert.Equal(t, 0, c.n)
}

func TestCloneAllKinds(t *testing.T) {
	for _, o := range allKinds() {
		o.SetPosition(Pt(5), Pt(6))
		o.SetLineWidth(Pt(2))
		clone := o.Clone()
		require.Equal(t, o.Kind(), clone.Kind())
		assert.Equal(t, o.X0(), clone.X0())
		assert.Equal(t, o.LineWidth(), clone.LineWidth())
		assert.NotSame(t, o, clone)
	}
}

func TestDrawShadowOnlyWhenEnabled(t *testing.T) {
	b := NewBox()
	b.SetSize(Pt(100), Pt(50))
	b.SetFillColorNode(ColorNode(color.Black))

	r := &recorder{}
	Draw(r, b, false, nil)
	// fill + stroke, no shadow
	assert.Equal(t, 1, r.count("fill"))
	assert.Equal(t, 1, r.count("stroke"))

	b.SetShadow(true)
	b.SetShadowColorNode(ColorNode(color.NRGBA{255, 0, 0, 255}))
	b.SetShadowOpacity(0.5)

	r = &recorder{}
	Draw(r, b, false, nil)
	assert.Equal(t, 2, r.count("fill"))
	// the shadow comes first, red at half opacity
	assert.Equal(t, uint32(0xff000080), RGBA(r.fills[0]))
	assert.Equal(t, uint32(0x000000ff), RGBA(r.fills[1]))
}

func TestLineHoverPath(t *testing.T) {
	l := NewLine()
	l.SetSize(Pt(100), Pt(0))
	p := l.HoverPath(1)
	// closed quad: 4 points of 2 coordinates each
	assert.Len(t, p.Points, 8)

	l.SetSize(0, 0)
	assert.NotNil(t, l.HoverPath(2))
}

func TestTextLayout(t *testing.T) {
	txt := NewText()
	txt.SetSize(Pt(100), Pt(40))
	txt.SetFontSize(10)
	txt.SetText("ab\n${name}")
	txt.SetHAlign(AlignRight)

	r := &recorder{}
	txt.DrawObject(r, false, Record{"name": "Bob"})

	// width per rune is 5pt, ascent 8pt, line height 10pt
	assert.Equal(t, []string{
		`text "ab" 90 8`,
		`text "Bob" 85 18`,
	}, r.calls)

	// the editor shows field names without a record
	r = &recorder{}
	txt.DrawObject(r, true, nil)
	assert.Equal(t, `text "${name}" 65 18`, r.calls[1])
}

func TestExpandFields(t *testing.T) {
	rec := Record{"first": "Ada", "last": "Lovelace"}
	assert.Equal(t, "Ada Lovelace", ExpandFields("${first} ${last}", rec))
	assert.Equal(t, "Dear !", ExpandFields("Dear ${missing}!", rec))
	assert.Equal(t, "open ${brace", ExpandFields("open ${brace", rec))
	assert.Equal(t, "$5", ExpandFields("$5", rec))
}

type fakeBarcodes struct {
	calls int
}

func (f *fakeBarcodes) Render(style, data string, showText, checksum bool, w, h float64) (image.Image, error) {
	f.calls++
	return image.NewGray(image.Rect(0, 0, 10, 10)), nil
}

func TestBarcodeDelegatesSymbol(t *testing.T) {
	res := NewResources(nil)
	fb := &fakeBarcodes{}
	res.Barcodes = fb

	b := NewBarcode(res)
	b.SetDataNode(Field("sku"))

	// no record, editor: placeholder
	r := &recorder{}
	b.DrawObject(r, true, nil)
	assert.Equal(t, 0, fb.calls)
	assert.Equal(t, 1, r.count("text"))

	r = &recorder{}
	b.DrawObject(r, false, Record{"sku": "12345"})
	assert.Equal(t, 1, fb.calls)
	assert.Equal(t, 1, r.count("image"))
}
