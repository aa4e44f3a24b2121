package labelfile

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/multierr"

	lt "github.com/akeil/labeltool"
)

const formatVersion = "4.0"

// Element names.
const (
	tagDocument = "Glabels-document"
	tagObjects  = "Glabels-objects"
	tagTemplate = "Template"
	tagLayout   = "Layout"
	tagList     = "Objects"
	tagBox      = "Object-box"
	tagEllipse  = "Object-ellipse"
	tagLine     = "Object-line"
	tagImage    = "Object-image"
	tagText     = "Object-text"
	tagBarcode  = "Object-barcode"
	tagPara     = "p"
	tagMerge    = "Merge"
	tagData     = "Data"
	tagFile     = "File"

	tagFrameRect    = "Label-rectangle"
	tagFrameRound   = "Label-round"
	tagFrameEllipse = "Label-ellipse"
)

const (
	mimePNG        = "image/png"
	mimeSVG        = "image/svg+xml"
	encodingBase64 = "base64"
	encodingCDATA  = "cdata"
)

// attrWriter sets typed attributes on an element.
type attrWriter struct {
	el    *etree.Element
	units lt.Units
}

func (a attrWriter) str(key, value string) {
	a.el.CreateAttr(key, value)
}

func (a attrWriter) length(key string, d lt.Distance) {
	a.el.CreateAttr(key, lt.FormatDistance(d, a.units))
}

func (a attrWriter) float(key string, v float64) {
	a.el.CreateAttr(key, strconv.FormatFloat(v, 'g', -1, 64))
}

func (a attrWriter) int(key string, v int) {
	a.el.CreateAttr(key, strconv.Itoa(v))
}

func (a attrWriter) bool(key string, v bool) {
	if v {
		a.el.CreateAttr(key, "1")
	} else {
		a.el.CreateAttr(key, "0")
	}
}

func (a attrWriter) color(key string, c uint32) {
	a.el.CreateAttr(key, fmt.Sprintf("0x%08X", c))
}

// colorNode writes either key with the literal color or key_field with
// the field name.
func (a attrWriter) colorNode(key string, n lt.TextNode) {
	if n.IsField() {
		a.str(key+"_field", n.Key())
		return
	}
	a.color(key, lt.RGBA(n.Color(nil)))
}

// textNode writes either key with the literal text or key_field with
// the field name.
func (a attrWriter) textNode(key string, n lt.TextNode) {
	if n.IsField() {
		a.str(key+"_field", n.Key())
		return
	}
	a.str(key, n.Data())
}

// attrReader reads typed attributes from an element.
// Malformed values are collected in err; the default is used instead.
type attrReader struct {
	el  *etree.Element
	err error
}

func (a *attrReader) has(key string) bool {
	return a.el.SelectAttr(key) != nil
}

func (a *attrReader) str(key, dflt string) string {
	return a.el.SelectAttrValue(key, dflt)
}

func (a *attrReader) fail(key, value string, err error) {
	a.err = multierr.Append(a.err, fmt.Errorf("%v: invalid %v %q: %w", a.el.Tag, key, value, err))
}

func (a *attrReader) length(key string, dflt lt.Distance) lt.Distance {
	s := a.el.SelectAttrValue(key, "")
	if s == "" {
		return dflt
	}
	d, err := lt.ParseDistance(s)
	if err != nil {
		a.fail(key, s, err)
		return dflt
	}
	return d
}

func (a *attrReader) float(key string, dflt float64) float64 {
	s := a.el.SelectAttrValue(key, "")
	if s == "" {
		return dflt
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		a.fail(key, s, err)
		return dflt
	}
	return v
}

func (a *attrReader) int(key string, dflt int) int {
	s := a.el.SelectAttrValue(key, "")
	if s == "" {
		return dflt
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		a.fail(key, s, err)
		return dflt
	}
	return v
}

func (a *attrReader) bool(key string, dflt bool) bool {
	switch a.el.SelectAttrValue(key, "") {
	case "":
		return dflt
	case "1", "true", "True", "TRUE":
		return true
	case "0", "false", "False", "FALSE":
		return false
	default:
		a.fail(key, a.el.SelectAttrValue(key, ""), fmt.Errorf("not a boolean"))
		return dflt
	}
}

// colorNode reads key or key_field. dflt is used if neither is present.
func (a *attrReader) colorNode(key string, dflt lt.TextNode) lt.TextNode {
	if field := a.str(key+"_field", ""); field != "" {
		return lt.Field(field)
	}
	s := a.str(key, "")
	if s == "" {
		return dflt
	}
	c, err := lt.ParseColor(s)
	if err != nil {
		a.fail(key, s, err)
		return dflt
	}
	return lt.ColorNode(c)
}

// textNode reads key or key_field.
func (a *attrReader) textNode(key string) lt.TextNode {
	if field := a.str(key+"_field", ""); field != "" {
		return lt.Field(field)
	}
	return lt.Literal(a.str(key, ""))
}
