// Package labelfile reads and writes label documents in the glabels XML
// format (version 4.0).
//
// A document holds the template, the placed objects, the merge source and
// the embedded image data:
//
//	<Glabels-document version="4.0">
//	  <Template .../>
//	  <Objects id="0" rotate="0">
//	    <Object-box x="10pt" y="10pt" w="100pt" h="50pt" .../>
//	  </Objects>
//	  <Merge type="Text/Comma" src="addresses.csv"/>
//	  <Data>
//	    <File name="logo.png" mimetype="image/png" encoding="base64">...</File>
//	  </Data>
//	</Glabels-document>
package labelfile

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"io"

	"github.com/beevik/etree"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/fs"
	"github.com/akeil/labeltool/internal/logging"
)

// Encoder writes label documents.
type Encoder struct {
	// Units is used for all lengths; the default is points.
	Units lt.Units
}

var defaultEncoder = &Encoder{Units: lt.UnitsPt}

// Marshal serializes a label with lengths in points.
func Marshal(m *lt.Model) ([]byte, error) {
	return defaultEncoder.Marshal(m)
}

// Write serializes a label to w with lengths in points.
func Write(w io.Writer, m *lt.Model) error {
	return defaultEncoder.Write(w, m)
}

// WriteFile saves a label with lengths in points.
func WriteFile(path string, m *lt.Model) error {
	return defaultEncoder.WriteFile(path, m)
}

// MarshalObjects serializes a selection of objects, e.g. for the
// clipboard.
func MarshalObjects(objects []lt.Object) ([]byte, error) {
	return defaultEncoder.MarshalObjects(objects)
}

// Marshal serializes the complete label document.
func (e *Encoder) Marshal(m *lt.Model) ([]byte, error) {
	var buf bytes.Buffer
	err := e.Write(&buf, m)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the complete label document to w.
func (e *Encoder) Write(w io.Writer, m *lt.Model) error {
	doc, err := e.document(m)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// WriteFile saves the label document to path.
//
// The document is created in memory first; if the file cannot be created,
// nothing is written and an error is returned. An existing file is only
// replaced once the complete document was written.
func (e *Encoder) WriteFile(path string, m *lt.Model) error {
	doc, err := e.document(m)
	if err != nil {
		return err
	}

	err = fs.WriteFile(path, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "cannot write file %q", path)
	}
	logging.Info("Saved label to %q", path)
	return nil
}

// MarshalObjects serializes a selection of objects.
// The result has a Glabels-objects root with the Data before the Objects.
func (e *Encoder) MarshalObjects(objects []lt.Object) ([]byte, error) {
	doc := newDocument(tagObjects)
	root := doc.Root()

	err := e.writeData(root, objects)
	if err != nil {
		return nil, err
	}
	e.writeObjects(root, objects, false)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func (e *Encoder) document(m *lt.Model) (*etree.Document, error) {
	if m.Template() == nil {
		return nil, errors.NewValidationError("label has no template")
	}

	doc := newDocument(tagDocument)
	root := doc.Root()

	writeTemplate(root, m.Template(), e.Units)
	e.writeObjects(root, m.Objects(), m.Rotate())

	if src := m.Merge(); !src.IsNone() {
		el := root.CreateElement(tagMerge)
		el.CreateAttr("type", src.Type)
		el.CreateAttr("src", src.Source)
	}

	err := e.writeData(root, m.Objects())
	if err != nil {
		return nil, err
	}

	doc.Indent(2)
	return doc, nil
}

func newDocument(rootTag string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr("version", formatVersion)
	return doc
}

func (e *Encoder) writeObjects(parent *etree.Element, objects []lt.Object, rotate bool) {
	el := parent.CreateElement(tagList)
	a := attrWriter{el, e.Units}
	a.str("id", "0")
	a.bool("rotate", rotate)

	v := &objectWriter{parent: el, units: e.Units}
	for _, o := range objects {
		o.Accept(v)
	}
}

// writeData embeds every literal-named image once.
func (e *Encoder) writeData(parent *etree.Element, objects []lt.Object) error {
	el := parent.CreateElement(tagData)
	cache := lt.NewDataCache(objects)

	for _, name := range cache.ImageNames() {
		img, _ := cache.Image(name)
		var buf bytes.Buffer
		err := png.Encode(&buf, img)
		if err != nil {
			return errors.Wrap(err, "failed to encode image %q", name)
		}

		f := el.CreateElement(tagFile)
		f.CreateAttr("name", name)
		f.CreateAttr("mimetype", mimePNG)
		f.CreateAttr("encoding", encodingBase64)
		f.CreateText(base64.StdEncoding.EncodeToString(buf.Bytes()))
	}

	for _, name := range cache.SVGNames() {
		svg, _ := cache.SVG(name)
		f := el.CreateElement(tagFile)
		f.CreateAttr("name", name)
		f.CreateAttr("mimetype", mimeSVG)
		f.CreateAttr("encoding", encodingCDATA)
		f.CreateCData(string(svg))
	}

	return nil
}

// objectWriter creates one element per object.
type objectWriter struct {
	parent *etree.Element
	units  lt.Units
}

func (w *objectWriter) start(tag string, o lt.Object) attrWriter {
	a := attrWriter{w.parent.CreateElement(tag), w.units}
	a.length("x", o.X0())
	a.length("y", o.Y0())
	return a
}

func (w *objectWriter) size(a attrWriter, o lt.Object) {
	a.length("w", o.W())
	a.length("h", o.H())
}

func (w *objectWriter) line(a attrWriter, o lt.Object) {
	a.length("line_width", o.LineWidth())
	a.colorNode("line_color", o.LineColorNode())
}

func (w *objectWriter) fill(a attrWriter, o lt.Object) {
	a.colorNode("fill_color", o.FillColorNode())
}

func (w *objectWriter) affine(a attrWriter, o lt.Object) {
	m := o.Matrix()
	a.float("a0", m.M11)
	a.float("a1", m.M12)
	a.float("a2", m.M21)
	a.float("a3", m.M22)
	a.float("a4", m.Dx)
	a.float("a5", m.Dy)
}

// shadow attributes are only written if the shadow is enabled.
func (w *objectWriter) shadow(a attrWriter, o lt.Object) {
	if !o.Shadow() {
		return
	}
	a.bool("shadow", true)
	a.length("shadow_x", o.ShadowX())
	a.length("shadow_y", o.ShadowY())
	a.colorNode("shadow_color", o.ShadowColorNode())
	a.float("shadow_opacity", o.ShadowOpacity())
}

func (w *objectWriter) VisitBox(b *lt.Box) {
	a := w.start(tagBox, b)
	w.size(a, b)
	w.line(a, b)
	w.fill(a, b)
	w.affine(a, b)
	w.shadow(a, b)
}

func (w *objectWriter) VisitEllipse(e *lt.Ellipse) {
	a := w.start(tagEllipse, e)
	w.size(a, e)
	w.line(a, e)
	w.fill(a, e)
	w.affine(a, e)
	w.shadow(a, e)
}

func (w *objectWriter) VisitLine(l *lt.Line) {
	a := w.start(tagLine, l)
	a.length("dx", l.W())
	a.length("dy", l.H())
	w.line(a, l)
	w.affine(a, l)
	w.shadow(a, l)
}

func (w *objectWriter) VisitImage(i *lt.Image) {
	a := w.start(tagImage, i)
	w.size(a, i)
	a.textNode("src", i.FilenameNode())
	w.affine(a, i)
	w.shadow(a, i)
}

func (w *objectWriter) VisitText(t *lt.Text) {
	a := w.start(tagText, t)
	w.size(a, t)
	a.colorNode("color", t.TextColorNode())

	f := t.Font()
	a.str("font_family", f.Family)
	a.float("font_size", f.Size)
	a.str("font_weight", f.Weight.String())
	a.bool("font_italic", f.Italic)
	a.bool("font_underline", f.Underline)

	a.float("line_spacing", t.LineSpacing())
	a.str("align", t.HAlign().String())
	a.str("valign", t.VAlign().String())

	w.affine(a, t)
	w.shadow(a, t)

	for _, p := range t.Paragraphs() {
		a.el.CreateElement(tagPara).SetText(p)
	}
}

func (w *objectWriter) VisitBarcode(b *lt.Barcode) {
	a := w.start(tagBarcode, b)
	w.size(a, b)
	a.str("style", b.Style())
	a.textNode("data", b.DataNode())
	a.bool("text", b.ShowText())
	a.bool("checksum", b.Checksum())
	a.colorNode("color", b.BarcodeColorNode())
	w.affine(a, b)
	w.shadow(a, b)
}
