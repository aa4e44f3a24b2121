package labeltool

import (
	"sort"

	"github.com/llgcode/draw2d"
	"go.uber.org/multierr"

	"github.com/akeil/labeltool/internal/errors"
)

// FrameShape is the die-cut shape of a label.
type FrameShape int

const (
	ShapeRect FrameShape = iota
	ShapeRound
	ShapeEllipse
)

// Layout places a frame nx times horizontally and ny times vertically,
// starting at x0,y0 with steps dx,dy.
type Layout struct {
	NX int
	NY int
	X0 Distance
	Y0 Distance
	DX Distance
	DY Distance
}

// Frame is one label shape on a sheet and every place it is printed at.
type Frame struct {
	ID    string
	Shape FrameShape
	// W and H are the size of rectangle and ellipse frames.
	W Distance
	H Distance
	// R is the corner radius for ShapeRect or the radius for ShapeRound.
	R       Distance
	XWaste  Distance
	YWaste  Distance
	Layouts []Layout
}

// Size is the bounding box of the frame.
func (f Frame) Size() Size {
	if f.Shape == ShapeRound {
		return Size{W: 2 * f.R, H: 2 * f.R}
	}
	return Size{W: f.W, H: f.H}
}

// Path creates the outline of the frame, relative to its origin.
func (f Frame) Path() *draw2d.Path {
	s := f.Size()
	w := s.W.Pt()
	h := s.H.Pt()
	switch f.Shape {
	case ShapeRound, ShapeEllipse:
		return EllipsePath(0, 0, w, h)
	default:
		return RoundRectPath(0, 0, w, h, f.R.Pt())
	}
}

// Origins lists the top-left corner of every place this frame is stamped
// at, sorted top to bottom and left to right.
func (f Frame) Origins() []Point {
	seen := make(map[Point]bool)
	origins := make([]Point, 0)
	for _, l := range f.Layouts {
		for iy := 0; iy < l.NY; iy++ {
			for ix := 0; ix < l.NX; ix++ {
				p := Point{
					X: l.X0 + Distance(ix)*l.DX,
					Y: l.Y0 + Distance(iy)*l.DY,
				}
				if seen[p] {
					continue
				}
				seen[p] = true
				origins = append(origins, p)
			}
		}
	}

	sort.SliceStable(origins, func(i, j int) bool {
		return origins[i].Less(origins[j])
	})
	return origins
}

// Validate checks that the frame has a size and at least one origin.
func (f Frame) Validate() error {
	var err error
	s := f.Size()
	if s.W <= 0 || s.H <= 0 {
		err = multierr.Append(err, errors.NewValidationError("frame %q has no size", f.ID))
	}
	if len(f.Origins()) == 0 {
		err = multierr.Append(err, errors.NewValidationError("frame %q has no layout", f.ID))
	}
	return err
}

// Template describes a sheet of labels.
type Template struct {
	Brand       string
	Part        string
	Description string
	// PaperID names a standard paper size ("A4", "US-Letter") or "other".
	PaperID    string
	PageWidth  Distance
	PageHeight Distance
	Frames     []Frame
}

// Name is the brand and part number, e.g. "Avery 5160".
func (t *Template) Name() string {
	if t.Brand == "" {
		return t.Part
	}
	return t.Brand + " " + t.Part
}

// Validate checks the page size and all frames.
// All problems are reported together.
func (t *Template) Validate() error {
	var err error
	if t.PageWidth <= 0 || t.PageHeight <= 0 {
		err = multierr.Append(err, errors.NewValidationError("template %q has no page size", t.Name()))
	}
	if len(t.Frames) == 0 {
		err = multierr.Append(err, errors.NewValidationError("template %q has no frames", t.Name()))
	}
	for _, f := range t.Frames {
		err = multierr.Append(err, f.Validate())
	}
	return err
}
