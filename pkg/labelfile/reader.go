package labelfile

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/logging"
)

// ReadFile loads a label document from path.
// Image files referenced by the label are loaded through res.
func ReadFile(path string, res *lt.Resources) (*lt.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open label %q", path)
	}
	defer f.Close()

	m, err := Read(f, res)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read label %q", path)
	}
	logging.Debug("Loaded label %q with %d objects", path, len(m.Objects()))
	return m, nil
}

// Read parses a label document.
//
// The returned model is not marked as modified.
func Read(r io.Reader, res *lt.Resources) (*lt.Model, error) {
	root, err := readRoot(r, tagDocument)
	if err != nil {
		return nil, err
	}

	tel := root.SelectElement(tagTemplate)
	if tel == nil {
		return nil, errors.NewValidationError("label has no template")
	}
	tpl, err := readTemplate(tel)
	if err != nil {
		return nil, err
	}

	m := lt.NewModel(tpl)

	if mel := root.SelectElement(tagMerge); mel != nil {
		m.SetMerge(&lt.MergeSource{
			Type:   mel.SelectAttrValue("type", lt.NoMerge),
			Source: mel.SelectAttrValue("src", ""),
		})
	}

	files, err := readData(root.SelectElement(tagData))
	if err != nil {
		return nil, err
	}

	if oel := root.SelectElement(tagList); oel != nil {
		a := &attrReader{el: oel}
		m.SetRotate(a.bool("rotate", false))

		objects, err := readObjects(oel, files, res)
		if err != nil {
			return nil, err
		}
		for _, o := range objects {
			m.Add(o)
		}
	}

	m.ClearModified()
	return m, nil
}

// UnmarshalObjects parses a selection of objects written with
// MarshalObjects.
func UnmarshalObjects(data []byte, res *lt.Resources) ([]lt.Object, error) {
	root, err := readRoot(bytes.NewReader(data), tagObjects)
	if err != nil {
		return nil, err
	}

	files, err := readData(root.SelectElement(tagData))
	if err != nil {
		return nil, err
	}

	oel := root.SelectElement(tagList)
	if oel == nil {
		return make([]lt.Object, 0), nil
	}
	return readObjects(oel, files, res)
}

func readRoot(r io.Reader, tag string) (*etree.Element, error) {
	doc := etree.NewDocument()
	_, err := doc.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}

	root := doc.Root()
	if root == nil || root.Tag != tag {
		return nil, errors.NewValidationError("expected %v document", tag)
	}
	if v := root.SelectAttrValue("version", ""); v != formatVersion {
		logging.Warning("Unexpected document version %q", v)
	}
	return root, nil
}

// embedded holds the decoded contents of the Data element.
type embedded struct {
	images map[string]image.Image
	svgs   map[string][]byte
}

func readData(el *etree.Element) (*embedded, error) {
	files := &embedded{
		images: make(map[string]image.Image),
		svgs:   make(map[string][]byte),
	}
	if el == nil {
		return files, nil
	}

	for _, f := range el.SelectElements(tagFile) {
		name := f.SelectAttrValue("name", "")
		mimetype := f.SelectAttrValue("mimetype", "")
		encoding := f.SelectAttrValue("encoding", "")

		switch {
		case mimetype == mimePNG && encoding == encodingBase64:
			data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(f.Text()))
			if err != nil {
				return nil, errors.Wrap(err, "invalid data for %q", name)
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				return nil, errors.Wrap(err, "invalid image for %q", name)
			}
			files.images[name] = img
		case mimetype == mimeSVG && encoding == encodingCDATA:
			files.svgs[name] = []byte(f.Text())
		default:
			logging.Warning("Skip embedded file %q with type %q and encoding %q", name, mimetype, encoding)
		}
	}

	return files, nil
}

func readObjects(el *etree.Element, files *embedded, res *lt.Resources) ([]lt.Object, error) {
	var err error
	objects := make([]lt.Object, 0)

	for _, child := range el.ChildElements() {
		a := &attrReader{el: child}
		var o lt.Object

		switch child.Tag {
		case tagBox:
			o = readBox(a)
		case tagEllipse:
			o = readEllipse(a)
		case tagLine:
			o = readLine(a)
		case tagImage:
			o = readImage(a, files, res)
		case tagText:
			o = readText(a)
		case tagBarcode:
			o = readBarcode(a, res)
		default:
			logging.Warning("Skip unknown object %q", child.Tag)
			continue
		}

		readCommon(a, o)
		err = multierr.Append(err, a.err)
		objects = append(objects, o)
	}

	if err != nil {
		return nil, errors.NewValidationError("invalid objects: %v", err)
	}
	return objects, nil
}

// readCommon reads position, transform and shadow.
func readCommon(a *attrReader, o lt.Object) {
	o.SetPosition(a.length("x", 0), a.length("y", 0))

	m := o.Matrix()
	o.SetMatrix(lt.Matrix{
		M11: a.float("a0", m.M11),
		M12: a.float("a1", m.M12),
		M21: a.float("a2", m.M21),
		M22: a.float("a3", m.M22),
		Dx:  a.float("a4", m.Dx),
		Dy:  a.float("a5", m.Dy),
	})

	if !a.bool("shadow", false) {
		return
	}
	o.SetShadow(true)
	o.SetShadowOffset(a.length("shadow_x", o.ShadowX()), a.length("shadow_y", o.ShadowY()))
	o.SetShadowColorNode(a.colorNode("shadow_color", o.ShadowColorNode()))
	o.SetShadowOpacity(a.float("shadow_opacity", o.ShadowOpacity()))
}

func readSize(a *attrReader, o lt.Object) {
	o.SetSize(a.length("w", o.W()), a.length("h", o.H()))
}

func readLineAttrs(a *attrReader, o lt.Object) {
	o.SetLineWidth(a.length("line_width", o.LineWidth()))
	o.SetLineColorNode(a.colorNode("line_color", o.LineColorNode()))
}

func readBox(a *attrReader) lt.Object {
	b := lt.NewBox()
	readSize(a, b)
	readLineAttrs(a, b)
	b.SetFillColorNode(a.colorNode("fill_color", b.FillColorNode()))
	return b
}

func readEllipse(a *attrReader) lt.Object {
	e := lt.NewEllipse()
	readSize(a, e)
	readLineAttrs(a, e)
	e.SetFillColorNode(a.colorNode("fill_color", e.FillColorNode()))
	return e
}

func readLine(a *attrReader) lt.Object {
	l := lt.NewLine()
	l.SetSize(a.length("dx", 0), a.length("dy", 0))
	readLineAttrs(a, l)
	return l
}

// readImage restores embedded data by name; other sources are loaded
// from storage. The saved size always wins over the fitted size.
func readImage(a *attrReader, files *embedded, res *lt.Resources) lt.Object {
	i := lt.NewImage(res)
	src := a.textNode("src")

	if !src.IsField() {
		name := src.Data()
		if img, ok := files.images[name]; ok {
			i.SetNamedImage(name, img)
		} else if svg, ok := files.svgs[name]; ok {
			i.SetSVG(name, svg)
		}
	}
	if i.State() == lt.ImageEmpty {
		i.SetFilenameNode(src)
	}

	readSize(a, i)
	return i
}

func readText(a *attrReader) lt.Object {
	t := lt.NewText()
	readSize(a, t)
	t.SetTextColorNode(a.colorNode("color", t.TextColorNode()))

	f := t.Font()
	t.SetFontFamily(a.str("font_family", f.Family))
	t.SetFontSize(a.float("font_size", f.Size))
	t.SetFontWeight(lt.ParseFontWeight(a.str("font_weight", f.Weight.String())))
	t.SetFontItalic(a.bool("font_italic", f.Italic))
	t.SetFontUnderline(a.bool("font_underline", f.Underline))

	t.SetLineSpacing(a.float("line_spacing", t.LineSpacing()))
	t.SetHAlign(lt.ParseHAlign(a.str("align", t.HAlign().String())))
	t.SetVAlign(lt.ParseVAlign(a.str("valign", t.VAlign().String())))

	paras := make([]string, 0)
	for _, p := range a.el.SelectElements(tagPara) {
		paras = append(paras, p.Text())
	}
	t.SetText(strings.Join(paras, "\n"))
	return t
}

func readBarcode(a *attrReader, res *lt.Resources) lt.Object {
	b := lt.NewBarcode(res)
	readSize(a, b)
	b.SetStyle(a.str("style", b.Style()))
	b.SetDataNode(a.textNode("data"))
	b.SetShowText(a.bool("text", b.ShowText()))
	b.SetChecksum(a.bool("checksum", b.Checksum()))
	b.SetBarcodeColorNode(a.colorNode("color", b.BarcodeColorNode()))
	return b
}
