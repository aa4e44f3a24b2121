package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/akeil/labeltool/internal/imaging"
	"github.com/akeil/labeltool/pkg/preview"
)

// PreviewPNG renders a sheet preview that is widthPx pixels wide and
// writes a PNG to w.
func PreviewPNG(s *preview.Scene, widthPx int, w io.Writer) error {
	return png.Encode(w, PreviewImage(s, widthPx))
}

// PreviewImage renders a sheet preview that is widthPx pixels wide.
// The background is transparent.
func PreviewImage(s *preview.Scene, widthPx int) *image.RGBA {
	if s.Rect.W <= 0 || s.Rect.H <= 0 || widthPx <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	scale := float64(widthPx) / s.Rect.W
	dst := newCanvas(s.Rect.W*scale, s.Rect.H*scale)

	for _, item := range s.Items {
		if item.Shadow != nil {
			drawDropShadow(dst, s.Rect, scale, item)
		}

		p := NewPainter(dst, scale)
		p.Translate(-s.Rect.X, -s.Rect.Y)
		p.Transform(item.Matrix)
		drawItem(p, item, scale)
	}
	return dst
}

func drawItem(p *Painter, item preview.Item, scale float64) {
	if item.Text != "" {
		width, ascent, _ := p.TextExtents(item.Text, item.Font)
		p.FillText(item.Text, -width/2, item.Top+ascent, item.Font, item.Fill)
		return
	}

	if item.Fill.A != 0 {
		p.FillPath(item.Path, item.Fill)
	}
	if item.Stroke.A != 0 && item.LineWidth > 0 {
		width := item.LineWidth
		if item.Cosmetic {
			width /= scale
		}
		p.setCaps(item.FlatCap)
		p.StrokePath(item.Path, item.Stroke, width)
	}
}

// drawDropShadow paints a blurred copy of the item's outline, offset
// to the lower right.
func drawDropShadow(dst *image.RGBA, view preview.Rect, scale float64, item preview.Item) {
	sh := item.Shadow
	b := dst.Bounds()

	mask := image.NewRGBA(b)
	p := NewPainter(mask, scale)
	p.Translate(-view.X+sh.Offset/scale, -view.Y+sh.Offset/scale)
	p.Transform(item.Matrix)
	p.FillPath(item.Path, sh.Color)

	blurred := blur(mask, sh.Blur)
	draw.Draw(dst, b, blurred, b.Min, draw.Over)
}

// blur softens an image by scaling it down and up again.
func blur(img *image.RGBA, radius float64) image.Image {
	if radius < 2 {
		return img
	}
	b := img.Bounds()
	f := radius / 2
	small := imaging.Resize(img, math.Max(1, float64(b.Dx())/f), math.Max(1, float64(b.Dy())/f))
	return imaging.Resize(small, float64(b.Dx()), float64(b.Dy()))
}
