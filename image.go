package labeltool

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/llgcode/draw2d"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/akeil/labeltool/internal/imaging"
	"github.com/akeil/labeltool/internal/logging"
)

// ImageState tells what kind of asset an Image object holds.
type ImageState int

const (
	ImageEmpty ImageState = iota
	ImageRaster
	ImageVector
)

var stateNames = map[ImageState]string{
	ImageEmpty:  "empty",
	ImageRaster: "raster",
	ImageVector: "vector",
}

func (s ImageState) String() string {
	return stateNames[s]
}

// defaultNaturalSize is used when there is no image data.
const defaultNaturalSize = 72.0

// imageAsset is the decoded content of an Image object.
// An Image holds at most one asset; nil means "empty".
type imageAsset interface {
	state() ImageState
	natural() Size
	clone() imageAsset
}

type rasterAsset struct {
	img   *image.NRGBA
	alpha bool
}

func (r *rasterAsset) state() ImageState {
	return ImageRaster
}

// natural size assumes 72 DPI, i.e. 1 pixel == 1 point.
func (r *rasterAsset) natural() Size {
	b := r.img.Bounds()
	return Size{W: Pt(float64(b.Dx())), H: Pt(float64(b.Dy()))}
}

func (r *rasterAsset) clone() imageAsset {
	return &rasterAsset{img: imaging.Clone(r.img), alpha: r.alpha}
}

type vectorAsset struct {
	vec *Vector
}

func (v *vectorAsset) state() ImageState {
	return ImageVector
}

func (v *vectorAsset) natural() Size {
	w, h := v.vec.ViewBox()
	return Size{W: Pt(w), H: Pt(h)}
}

func (v *vectorAsset) clone() imageAsset {
	return &vectorAsset{vec: v.vec.Clone()}
}

func newRasterAsset(img image.Image) *rasterAsset {
	return &rasterAsset{
		img:   imaging.ToNRGBA(img),
		alpha: imaging.HasAlpha(img),
	}
}

// Image is a raster or vector (SVG) image.
//
// The image source is a TextNode: a literal path is loaded immediately,
// a field reference is resolved against the merge record when drawing.
type Image struct {
	object
	res          *Resources
	filenameNode TextNode
	asset        imageAsset
}

// NewImage creates an empty image object.
// Image files are loaded from the Storage in res.
func NewImage(res *Resources) *Image {
	return &Image{
		object: newObject(),
		res:    res,
	}
}

func (i *Image) Kind() Kind {
	return KindImage
}

func (i *Image) Accept(v Visitor) {
	v.VisitImage(i)
}

func (i *Image) Clone() Object {
	c := &Image{
		object:       i.cloneBase(),
		res:          i.res,
		filenameNode: i.filenameNode,
	}
	if i.asset != nil {
		c.asset = i.asset.clone()
	}
	return c
}

func (i *Image) release() {
	i.asset = nil
}

// State tells whether the object holds a raster image, a vector image
// or nothing.
func (i *Image) State() ImageState {
	if i.asset == nil {
		return ImageEmpty
	}
	return i.asset.state()
}

// Image returns the decoded raster image, or nil.
func (i *Image) Image() *image.NRGBA {
	if r, ok := i.asset.(*rasterAsset); ok {
		return r.img
	}
	return nil
}

// HasAlpha tells if the raster image came with an alpha channel.
func (i *Image) HasAlpha() bool {
	if r, ok := i.asset.(*rasterAsset); ok {
		return r.alpha
	}
	return false
}

// Vector returns the parsed SVG image, or nil.
func (i *Image) Vector() *Vector {
	if v, ok := i.asset.(*vectorAsset); ok {
		return v.vec
	}
	return nil
}

// SVG returns the SVG markup, or nil.
func (i *Image) SVG() []byte {
	if v := i.Vector(); v != nil {
		return v.Bytes()
	}
	return nil
}

func (i *Image) FilenameNode() TextNode {
	return i.filenameNode
}

// SetFilenameNode sets the image source and loads a literal path
// from storage. Problems loading the file leave the object empty.
func (i *Image) SetFilenameNode(n TextNode) {
	if i.filenameNode == n {
		return
	}
	i.filenameNode = n
	i.load()
	i.emit()
}

// SetImage sets the raster image directly.
//
// The filename becomes a synthetic name derived from the pixel content,
// so the same pixels always get the same name.
func (i *Image) SetImage(img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	r := newRasterAsset(img)
	name := fmt.Sprintf("%%image_%d%%", imaging.Checksum(r.img))
	if i.hasRaster(name, r.img) {
		return
	}
	i.asset = r
	i.filenameNode = Literal(name)
	i.emit()
}

// SetNamedImage sets the raster image directly under the given name.
func (i *Image) SetNamedImage(name string, img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	r := newRasterAsset(img)
	if i.hasRaster(name, r.img) {
		return
	}
	i.asset = r
	i.filenameNode = Literal(name)
	i.emit()
}

// SetSVG sets a vector image from SVG markup under the given name.
// Invalid markup leaves the object unchanged.
func (i *Image) SetSVG(name string, data []byte) {
	if len(data) == 0 {
		return
	}
	if i.filenameNode == Literal(name) && bytes.Equal(i.SVG(), data) {
		return
	}
	v, err := ParseVector(data)
	if err != nil {
		logging.Warning("Invalid SVG data for %q: %v", name, err)
		return
	}
	i.asset = &vectorAsset{vec: v}
	i.filenameNode = Literal(name)
	i.emit()
}

// hasRaster tells if the object already holds the given pixels under
// the given name.
func (i *Image) hasRaster(name string, img *image.NRGBA) bool {
	cur := i.Image()
	if cur == nil || i.filenameNode != Literal(name) {
		return false
	}
	return cur.Rect == img.Rect && imaging.Checksum(cur) == imaging.Checksum(img)
}

// NaturalSize is the intrinsic size of the image,
// or 72x72 points if there is no image.
func (i *Image) NaturalSize() Size {
	if i.asset == nil {
		return Size{W: Pt(defaultNaturalSize), H: Pt(defaultNaturalSize)}
	}
	return i.asset.natural()
}

func (i *Image) DrawShadow(p Painter, inEditor bool, rec Record) {
	c := i.shadowPaint(rec)
	rect := RectPath(0, 0, i.w.Pt(), i.h.Pt())

	// the editor shows the placeholder, which casts a plain shadow
	if inEditor && (i.filenameNode.IsField() || i.asset == nil) {
		p.FillPath(rect, c)
		return
	}

	a := i.assetFor(inEditor, rec)
	if r, ok := a.(*rasterAsset); ok && r.alpha {
		p.DrawImage(imaging.Colorize(r.img, c), 0, 0, i.w.Pt(), i.h.Pt())
		return
	}
	if a != nil {
		p.FillPath(rect, c)
	}
}

func (i *Image) DrawObject(p Painter, inEditor bool, rec Record) {
	w := i.w.Pt()
	h := i.h.Pt()

	if inEditor && (i.filenameNode.IsField() || i.asset == nil) {
		if ph := i.res.placeholder(); ph != nil {
			p.DrawImage(ph, 0, 0, w, h)
		}
		return
	}

	switch a := i.assetFor(inEditor, rec).(type) {
	case *rasterAsset:
		p.DrawImage(a.img, 0, 0, w, h)
	case *vectorAsset:
		p.DrawVector(a.vec, 0, 0, w, h)
	}
}

func (i *Image) HoverPath(scale float64) *draw2d.Path {
	return RectPath(0, 0, i.w.Pt(), i.h.Pt())
}

// assetFor returns the asset to draw. Field references are resolved
// against rec and loaded for this call only; the editor never loads them.
func (i *Image) assetFor(inEditor bool, rec Record) imageAsset {
	if !i.filenameNode.IsField() {
		return i.asset
	}
	if inEditor {
		return nil
	}

	path := i.filenameNode.Resolve(rec)
	if path == "" {
		return nil
	}
	a, err := loadAsset(i.res.storage(), path)
	if err != nil {
		logging.Warning("Cannot load image %q for field %q: %v", path, i.filenameNode.Key(), err)
		return nil
	}
	return a
}

// load replaces the current asset with the file named by the filename
// node and fits the object size to the image's aspect ratio.
func (i *Image) load() {
	i.asset = nil

	if i.filenameNode.IsField() {
		return
	}
	path := i.filenameNode.Data()
	if path == "" {
		return
	}

	a, err := loadAsset(i.res.storage(), path)
	if err != nil {
		logging.Warning("Cannot load image %q: %v", path, err)
		return
	}
	i.asset = a
	i.fitAspect(a.natural())
}

// fitAspect shrinks one side of the bounding box so that it has the
// aspect ratio of the given natural size.
func (i *Image) fitAspect(n Size) {
	if n.W <= 0 || n.H <= 0 {
		return
	}
	aspect := float64(n.H) / float64(n.W)
	if float64(i.h) > float64(i.w)*aspect {
		i.h = Distance(float64(i.w) * aspect)
	} else {
		i.w = Distance(float64(i.h) / aspect)
	}
}

func loadAsset(s Storage, path string) (imageAsset, error) {
	if s == nil {
		return nil, fmt.Errorf("no storage for %q", path)
	}
	data, err := s.ReadAsset(path)
	if err != nil {
		return nil, err
	}

	if isSVG(path) {
		v, err := ParseVector(data)
		if err != nil {
			return nil, err
		}
		return &vectorAsset{vec: v}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty %v image", format)
	}
	logging.Debug("Decoded %v image %q", format, path)
	return newRasterAsset(img), nil
}

func isSVG(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".svg" || ext == ".SVG"
}
