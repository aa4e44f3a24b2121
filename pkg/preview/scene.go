// Package preview lays out a sheet of labels for display.
//
// The preview shows the paper, the outline of every label and an arrow
// with the word "Up" on the first label that tells which way the label
// design is oriented.
package preview

import (
	"image/color"
	"math"

	"github.com/llgcode/draw2d"

	lt "github.com/akeil/labeltool"
)

var (
	paperColor        = color.NRGBA{255, 255, 255, 255}
	paperOutlineColor = color.NRGBA{0, 0, 0, 255}
	shadowColor       = color.NRGBA{64, 64, 64, 255}
	labelColor        = color.NRGBA{255, 255, 255, 255}
	labelOutlineColor = color.NRGBA{128, 128, 255, 255}
	arrowColor        = color.NRGBA{192, 192, 255, 128}
	upColor           = color.NRGBA{192, 192, 255, 128}
)

const (
	paperOutlineWidthPixels = 1.0
	shadowOffsetPixels      = 3.0
	shadowRadiusPixels      = 12.0
	labelOutlineWidthPixels = 2.0

	arrowScale   = 0.35
	upScale      = 0.15
	upFontFamily = "Sans"
	upText       = "Up"

	// margin around the paper, relative to the page size
	sceneMargin = 0.05
)

// ItemKind tells what a scene item shows.
type ItemKind int

const (
	ItemPaper ItemKind = iota
	ItemLabel
	ItemArrow
	ItemText
)

var itemNames = map[ItemKind]string{
	ItemPaper: "paper",
	ItemLabel: "label",
	ItemArrow: "arrow",
	ItemText:  "text",
}

func (k ItemKind) String() string {
	return itemNames[k]
}

// Rect is an axis aligned rectangle in points.
type Rect struct {
	X, Y, W, H float64
}

// DropShadow is a blurred shadow behind an item.
// Offset and Blur are in device pixels.
type DropShadow struct {
	Color  color.NRGBA
	Offset float64
	Blur   float64
}

// Item is a single element of the scene.
//
// Path and text are in local coordinates; Matrix maps them to the page.
// A transparent Fill or Stroke means "no fill" or "no outline".
type Item struct {
	Kind   ItemKind
	Matrix lt.Matrix
	Path   *draw2d.Path
	Fill   color.NRGBA
	Stroke color.NRGBA
	// LineWidth is in points, or in device pixels if Cosmetic is set.
	LineWidth float64
	Cosmetic  bool
	// FlatCap selects flat line ends with miter joins.
	FlatCap bool
	Shadow  *DropShadow

	// Text is drawn centered on x=0 with the top of the text at y=Top.
	Text string
	Font lt.Font
	Top  float64
}

// Scene is the laid-out preview of a template.
type Scene struct {
	// Rect is the visible area, the page plus a margin.
	Rect  Rect
	Items []Item
}

// Count returns the number of items of the given kind.
func (s *Scene) Count(k ItemKind) int {
	n := 0
	for _, item := range s.Items {
		if item.Kind == k {
			n++
		}
	}
	return n
}

// Build lays out the preview for a template.
//
// With rotate set, the arrow and the "Up" text are turned by -90 degrees.
// The result depends only on the arguments; a nil template gives an
// empty scene.
func Build(tpl *lt.Template, rotate bool) *Scene {
	s := &Scene{Items: make([]Item, 0)}
	if tpl == nil {
		return s
	}

	pw := tpl.PageWidth.Pt()
	ph := tpl.PageHeight.Pt()
	mx := sceneMargin * pw
	my := sceneMargin * ph
	s.Rect = Rect{X: -mx, Y: -my, W: pw + 2*mx, H: ph + 2*my}

	s.addPaper(pw, ph)
	s.addLabels(tpl)
	s.addArrow(tpl, rotate)
	return s
}

func (s *Scene) addPaper(pw, ph float64) {
	s.Items = append(s.Items, Item{
		Kind:      ItemPaper,
		Matrix:    lt.Identity(),
		Path:      lt.RectPath(0, 0, pw, ph),
		Fill:      paperColor,
		Stroke:    paperOutlineColor,
		LineWidth: paperOutlineWidthPixels,
		Cosmetic:  true,
		Shadow: &DropShadow{
			Color:  shadowColor,
			Offset: shadowOffsetPixels,
			Blur:   shadowRadiusPixels,
		},
	})
}

func (s *Scene) addLabels(tpl *lt.Template) {
	for _, f := range tpl.Frames {
		for _, o := range f.Origins() {
			s.Items = append(s.Items, Item{
				Kind:      ItemLabel,
				Matrix:    lt.Translation(o.X.Pt(), o.Y.Pt()),
				Path:      f.Path(),
				Fill:      labelColor,
				Stroke:    labelOutlineColor,
				LineWidth: labelOutlineWidthPixels,
				Cosmetic:  true,
			})
		}
	}
}

// addArrow marks the top of the first label.
func (s *Scene) addArrow(tpl *lt.Template, rotate bool) {
	if len(tpl.Frames) == 0 {
		return
	}
	f := tpl.Frames[0]
	origins := f.Origins()
	if len(origins) == 0 {
		return
	}

	size := f.Size()
	w := size.W.Pt()
	h := size.H.Pt()
	minWH := math.Min(w, h)
	a := minWH * arrowScale

	path := &draw2d.Path{}
	path.MoveTo(0, a/3)
	path.LineTo(0, -a)
	path.MoveTo(-a/2, -a/2)
	path.LineTo(0, -a)
	path.LineTo(a/2, -a/2)

	m := lt.Translation(origins[0].X.Pt()+w/2, origins[0].Y.Pt()+h/2)
	if rotate {
		m = lt.Rotation(-90).Multiply(m)
	}

	s.Items = append(s.Items, Item{
		Kind:      ItemArrow,
		Matrix:    m,
		Path:      path,
		Stroke:    arrowColor,
		LineWidth: 0.25 * a,
		FlatCap:   true,
	})

	s.Items = append(s.Items, Item{
		Kind:   ItemText,
		Matrix: m,
		Fill:   upColor,
		Text:   upText,
		Font: lt.Font{
			Family: upFontFamily,
			Size:   minWH * upScale,
			Weight: lt.WeightBold,
		},
		Top: minWH / 8,
	})
}
