package labelfile

import (
	"io"

	"github.com/beevik/etree"
	"go.uber.org/multierr"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
)

func writeTemplate(parent *etree.Element, t *lt.Template, u lt.Units) {
	el := parent.CreateElement(tagTemplate)
	a := attrWriter{el, u}
	a.str("brand", t.Brand)
	a.str("part", t.Part)
	a.str("size", t.PaperID)
	a.length("width", t.PageWidth)
	a.length("height", t.PageHeight)
	a.str("description", t.Description)

	for _, f := range t.Frames {
		writeFrame(el, f, u)
	}
}

func writeFrame(parent *etree.Element, f lt.Frame, u lt.Units) {
	var el *etree.Element
	switch f.Shape {
	case lt.ShapeRound:
		el = parent.CreateElement(tagFrameRound)
		a := attrWriter{el, u}
		a.str("id", f.ID)
		a.length("radius", f.R)
		a.length("waste", f.XWaste)
	case lt.ShapeEllipse:
		el = parent.CreateElement(tagFrameEllipse)
		a := attrWriter{el, u}
		a.str("id", f.ID)
		a.length("width", f.W)
		a.length("height", f.H)
		a.length("waste", f.XWaste)
	default:
		el = parent.CreateElement(tagFrameRect)
		a := attrWriter{el, u}
		a.str("id", f.ID)
		a.length("width", f.W)
		a.length("height", f.H)
		a.length("round", f.R)
		a.length("x_waste", f.XWaste)
		a.length("y_waste", f.YWaste)
	}

	for _, l := range f.Layouts {
		a := attrWriter{el.CreateElement(tagLayout), u}
		a.int("nx", l.NX)
		a.int("ny", l.NY)
		a.length("x0", l.X0)
		a.length("y0", l.Y0)
		a.length("dx", l.DX)
		a.length("dy", l.DY)
	}
}

// ReadTemplate reads a template description.
//
// The input is either a single Template element, a collection of
// templates (the first one is used) or a label document.
func ReadTemplate(r io.Reader) (*lt.Template, error) {
	doc := etree.NewDocument()
	_, err := doc.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse template")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.NewValidationError("empty template document")
	}
	el := root
	if root.Tag != tagTemplate {
		el = root.SelectElement(tagTemplate)
	}
	if el == nil {
		return nil, errors.NewNotFound("no template in %v", root.Tag)
	}

	t, err := readTemplate(el)
	if err != nil {
		return nil, err
	}
	return t, t.Validate()
}

func readTemplate(el *etree.Element) (*lt.Template, error) {
	a := &attrReader{el: el}
	t := &lt.Template{
		Brand:       a.str("brand", ""),
		Part:        a.str("part", ""),
		Description: a.str("description", ""),
		PaperID:     a.str("size", ""),
		PageWidth:   a.length("width", 0),
		PageHeight:  a.length("height", 0),
		Frames:      make([]lt.Frame, 0),
	}
	err := a.err

	for _, child := range el.ChildElements() {
		var f lt.Frame
		fa := &attrReader{el: child}
		switch child.Tag {
		case tagFrameRect:
			f = lt.Frame{
				Shape:  lt.ShapeRect,
				W:      fa.length("width", 0),
				H:      fa.length("height", 0),
				R:      fa.length("round", 0),
				XWaste: fa.length("x_waste", 0),
				YWaste: fa.length("y_waste", 0),
			}
		case tagFrameRound:
			f = lt.Frame{
				Shape:  lt.ShapeRound,
				R:      fa.length("radius", 0),
				XWaste: fa.length("waste", 0),
			}
			f.YWaste = f.XWaste
		case tagFrameEllipse:
			f = lt.Frame{
				Shape:  lt.ShapeEllipse,
				W:      fa.length("width", 0),
				H:      fa.length("height", 0),
				XWaste: fa.length("waste", 0),
			}
			f.YWaste = f.XWaste
		default:
			continue
		}
		f.ID = fa.str("id", "0")
		layouts, lerr := readLayouts(child)
		f.Layouts = layouts
		err = multierr.Combine(err, fa.err, lerr)
		t.Frames = append(t.Frames, f)
	}

	if err != nil {
		return nil, errors.NewValidationError("invalid template %q: %v", t.Name(), err)
	}
	return t, nil
}

func readLayouts(el *etree.Element) ([]lt.Layout, error) {
	var err error
	layouts := make([]lt.Layout, 0)
	for _, child := range el.SelectElements(tagLayout) {
		a := &attrReader{el: child}
		layouts = append(layouts, lt.Layout{
			NX: a.int("nx", 1),
			NY: a.int("ny", 1),
			X0: a.length("x0", 0),
			Y0: a.length("y0", 0),
			DX: a.length("dx", 0),
			DY: a.length("dy", 0),
		})
		err = multierr.Append(err, a.err)
	}
	return layouts, err
}
