package labeltool

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d"
)

// Painter is the drawing surface that objects paint on.
//
// Coordinates are in points. Implementations live in pkg/render;
// the document model only issues drawing calls.
type Painter interface {
	Save()
	Restore()
	// Transform composes the given matrix with the current transform.
	Transform(m Matrix)
	Translate(dx, dy float64)

	FillPath(p *draw2d.Path, c color.Color)
	StrokePath(p *draw2d.Path, c color.Color, width float64)

	// DrawImage paints the image scaled into the given rectangle.
	DrawImage(img image.Image, x, y, w, h float64)
	// DrawVector paints a vector image scaled into the given rectangle.
	DrawVector(v *Vector, x, y, w, h float64)

	// FillText paints a single line of text with its baseline at y.
	FillText(text string, x, y float64, f Font, c color.Color)
	// TextExtents measures a single line of text.
	TextExtents(text string, f Font) (width, ascent, descent float64)
}

// FontWeight is the boldness of a font.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightLight
	WeightDemiBold
	WeightBold
	WeightBlack
)

var weightNames = map[FontWeight]string{
	WeightLight:    "light",
	WeightNormal:   "normal",
	WeightDemiBold: "demibold",
	WeightBold:     "bold",
	WeightBlack:    "black",
}

func (w FontWeight) String() string {
	return weightNames[w]
}

// IsBold tells if this weight should use a bold face.
func (w FontWeight) IsBold() bool {
	return w >= WeightDemiBold
}

// ParseFontWeight reads a weight name; unknown names are WeightNormal.
func ParseFontWeight(s string) FontWeight {
	for w, name := range weightNames {
		if name == s {
			return w
		}
	}
	return WeightNormal
}

// Font selects the face and size for text.
type Font struct {
	Family    string
	Size      float64
	Weight    FontWeight
	Italic    bool
	Underline bool
}
