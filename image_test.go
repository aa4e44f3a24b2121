package labeltool

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">
<rect x="0" y="0" width="100" height="50" fill="#ff0000"/>
</svg>`

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// opaqueImage has no alpha channel.
func opaqueImage(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testResources(t *testing.T) *Resources {
	return NewResources(NewMemoryStorage(map[string][]byte{
		"wide.png":   encodePNG(t, solidImage(200, 100, color.NRGBA{0, 0, 255, 255})),
		"gray.png":   encodePNG(t, opaqueImage(40, 80)),
		"cutout.png": encodePNG(t, solidImage(20, 10, color.NRGBA{0, 0, 255, 200})),
		"logo.svg":   []byte(testSVG),
		"broken.png": []byte("not an image"),
	}))
}

func TestLoadFitsAspect(t *testing.T) {
	img := NewImage(testResources(t))
	img.SetSize(Pt(50), Pt(50))
	img.SetFilenameNode(Literal("wide.png"))

	require.Equal(t, ImageRaster, img.State())
	assert.Equal(t, Pt(50), img.W())
	assert.Equal(t, Pt(25), img.H())
	assert.Equal(t, Size{W: Pt(200), H: Pt(100)}, img.NaturalSize())
	// opaque truecolor PNG
	assert.False(t, img.HasAlpha())

	img.SetFilenameNode(Literal("cutout.png"))
	require.Equal(t, ImageRaster, img.State())
	assert.True(t, img.HasAlpha())
}

func TestLoadFitProperty(t *testing.T) {
	sizes := [][2]float64{{50, 50}, {10, 300}, {300, 10}, {72, 72}, {1, 1}}
	for _, name := range []string{"wide.png", "gray.png", "logo.svg"} {
		for _, s := range sizes {
			img := NewImage(testResources(t))
			img.SetSize(Pt(s[0]), Pt(s[1]))
			img.SetFilenameNode(Literal(name))
			require.NotEqual(t, ImageEmpty, img.State(), name)

			n := img.NaturalSize()
			want := float64(n.H) / float64(n.W)
			got := float64(img.H()) / float64(img.W())
			assert.InDelta(t, want, got, 1e-9, "%v into %v", name, s)

			before := math.Min(s[0], s[1])
			after := math.Min(img.W().Pt(), img.H().Pt())
			assert.LessOrEqual(t, after, before+1e-9)
		}
	}
}

func TestLoadVector(t *testing.T) {
	img := NewImage(testResources(t))
	img.SetSize(Pt(40), Pt(40))
	img.SetFilenameNode(Literal("logo.svg"))

	require.Equal(t, ImageVector, img.State())
	assert.Nil(t, img.Image())
	assert.Equal(t, []byte(testSVG), img.SVG())
	assert.Equal(t, Pt(40), img.W())
	assert.Equal(t, Pt(20), img.H())
}

func TestLoadFailures(t *testing.T) {
	for _, name := range []string{"missing.png", "broken.png"} {
		img := NewImage(testResources(t))
		img.SetFilenameNode(Literal("wide.png"))
		require.Equal(t, ImageRaster, img.State())

		img.SetFilenameNode(Literal(name))
		assert.Equal(t, ImageEmpty, img.State(), name)
		assert.Equal(t, Size{W: Pt(72), H: Pt(72)}, img.NaturalSize())
		assert.Equal(t, Literal(name), img.FilenameNode())
	}
}

func TestFieldSourceIsNotLoaded(t *testing.T) {
	img := NewImage(testResources(t))
	img.SetFilenameNode(Field("photo"))
	assert.Equal(t, ImageEmpty, img.State())

	// drawn with a record, the field is resolved
	r := &recorder{}
	img.DrawObject(r, false, Record{"photo": "gray.png"})
	assert.Equal(t, 1, r.count("image"))
	assert.Equal(t, ImageEmpty, img.State())

	// in the editor, the placeholder is shown
	r = &recorder{}
	img.DrawObject(r, true, Record{"photo": "gray.png"})
	require.Len(t, r.images, 1)
	assert.Equal(t, testResources(t).Placeholder.Bounds(), r.images[0].Bounds())
}

func TestSetFilenameNotifiesOnce(t *testing.T) {
	img := NewImage(testResources(t))
	c := &counter{}
	img.Subscribe(c.inc)

	img.SetFilenameNode(Literal("wide.png"))
	img.SetFilenameNode(Literal("wide.png"))
	assert.Equal(t, 1, c.n)
}

func TestSetImageName(t *testing.T) {
	a := NewImage(nil)
	b := NewImage(nil)
	c := NewImage(nil)
	a.SetImage(solidImage(4, 4, color.White))
	b.SetImage(solidImage(4, 4, color.White))
	c.SetImage(solidImage(4, 4, color.Black))

	assert.Regexp(t, `^%image_\d+%$`, a.FilenameNode().Data())
	assert.Equal(t, a.FilenameNode(), b.FilenameNode())
	assert.NotEqual(t, a.FilenameNode(), c.FilenameNode())
	assert.False(t, a.FilenameNode().IsField())
}

func TestSetSVGInvalid(t *testing.T) {
	img := NewImage(nil)
	img.SetSVG("logo.svg", []byte(testSVG))
	require.Equal(t, ImageVector, img.State())

	img.SetSVG("bad.svg", []byte("<svg"))
	assert.Equal(t, ImageVector, img.State())
	assert.Equal(t, "logo.svg", img.FilenameNode().Data())
}

func TestShadowUsesSilhouette(t *testing.T) {
	res := testResources(t)

	img := NewImage(res)
	img.SetFilenameNode(Literal("cutout.png"))
	r := &recorder{}
	img.DrawShadow(r, false, nil)
	require.Len(t, r.images, 1)
	assert.Equal(t, 0, r.count("fill"))

	// shadow alpha (128) scaled by the source alpha (200)
	sil := r.images[0].(*image.NRGBA)
	assert.Equal(t, color.NRGBA{0, 0, 0, 100}, sil.NRGBAAt(5, 5))

	// no alpha: a rectangle
	for _, name := range []string{"gray.png", "wide.png"} {
		img = NewImage(res)
		img.SetFilenameNode(Literal(name))
		r = &recorder{}
		img.DrawShadow(r, false, nil)
		assert.Len(t, r.images, 0, name)
		assert.Equal(t, 1, r.count("fill"), name)
	}

	// empty, outside the editor: nothing
	img = NewImage(res)
	r = &recorder{}
	img.DrawShadow(r, false, nil)
	assert.Empty(t, r.calls)
}

func TestEditorShadowForFieldImage(t *testing.T) {
	img := NewImage(testResources(t))
	img.SetFilenameNode(Field("pic"))
	rec := Record{"pic": "cutout.png"}

	// the editor shows the placeholder with a plain shadow
	r := &recorder{}
	img.DrawObject(r, true, rec)
	img.DrawShadow(r, true, rec)
	require.Len(t, r.calls, 2)
	assert.Equal(t, "image 0 0 72 72", r.calls[0])
	assert.Regexp(t, `^fill `, r.calls[1])
	assert.Len(t, r.images, 1)

	// printed, the field is resolved and casts a silhouette
	r = &recorder{}
	img.DrawShadow(r, false, rec)
	assert.Equal(t, 0, r.count("fill"))
	assert.Len(t, r.images, 1)
}

func TestSetContentNotifiesOnChange(t *testing.T) {
	src := solidImage(4, 4, color.White)
	img := NewImage(nil)
	img.SetImage(src)
	name := img.FilenameNode().Data()

	c := &counter{}
	img.Subscribe(c.inc)

	img.SetImage(src)
	img.SetImage(solidImage(4, 4, color.White))
	img.SetNamedImage(name, src)
	assert.Equal(t, 0, c.n)

	// same pixels, other name
	img.SetNamedImage("white.png", src)
	assert.Equal(t, 1, c.n)
	// same name, other pixels
	img.SetNamedImage("white.png", solidImage(4, 4, color.Black))
	assert.Equal(t, 2, c.n)
	// same bytes, other shape
	img.SetNamedImage("white.png", solidImage(2, 8, color.Black))
	assert.Equal(t, 3, c.n)

	img.SetSVG("a.svg", []byte(testSVG))
	img.SetSVG("a.svg", []byte(testSVG))
	assert.Equal(t, 4, c.n)
	img.SetSVG("b.svg", []byte(testSVG))
	assert.Equal(t, 5, c.n)
}

func TestImageCloneIsIndependent(t *testing.T) {
	img := NewImage(testResources(t))
	img.SetFilenameNode(Literal("wide.png"))

	clone := img.Clone().(*Image)
	require.Equal(t, ImageRaster, clone.State())
	clone.Image().Pix[0] = 42
	assert.NotEqual(t, uint8(42), img.Image().Pix[0])

	vec := NewImage(nil)
	vec.SetSVG("logo.svg", []byte(testSVG))
	vclone := vec.Clone().(*Image)
	assert.NotSame(t, vec.Vector(), vclone.Vector())
	assert.Equal(t, vec.SVG(), vclone.SVG())
}

func TestDrawVector(t *testing.T) {
	img := NewImage(nil)
	img.SetSVG("logo.svg", []byte(testSVG))
	img.SetSize(Pt(100), Pt(50))

	r := &recorder{}
	img.DrawObject(r, false, nil)
	assert.Equal(t, []string{"vector 0 0 100 50"}, r.calls)
}
