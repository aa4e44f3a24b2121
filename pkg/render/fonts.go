package render

import (
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/logging"
)

// All text is set in the Go fonts. Families are mapped to the
// proportional or the monospaced variant.
const fontName = "go"

var (
	fontsOnce sync.Once
	fonts     map[draw2d.FontData]*truetype.Font
)

// registerFonts parses the embedded fonts and registers them with draw2d.
func registerFonts() {
	fontsOnce.Do(func() {
		fonts = make(map[draw2d.FontData]*truetype.Font)
		faces := []struct {
			family draw2d.FontFamily
			style  draw2d.FontStyle
			ttf    []byte
		}{
			{draw2d.FontFamilySans, draw2d.FontStyleNormal, goregular.TTF},
			{draw2d.FontFamilySans, draw2d.FontStyleBold, gobold.TTF},
			{draw2d.FontFamilySans, draw2d.FontStyleItalic, goitalic.TTF},
			{draw2d.FontFamilySans, draw2d.FontStyleBold | draw2d.FontStyleItalic, gobolditalic.TTF},
			{draw2d.FontFamilyMono, draw2d.FontStyleNormal, gomono.TTF},
			{draw2d.FontFamilyMono, draw2d.FontStyleBold, gomonobold.TTF},
			{draw2d.FontFamilyMono, draw2d.FontStyleItalic, gomonoitalic.TTF},
			{draw2d.FontFamilyMono, draw2d.FontStyleBold | draw2d.FontStyleItalic, gomonobolditalic.TTF},
		}

		for _, f := range faces {
			ttf, err := truetype.Parse(f.ttf)
			if err != nil {
				// embedded fonts are known to be valid
				panic(err)
			}
			fd := draw2d.FontData{Name: fontName, Family: f.family, Style: f.style}
			fonts[fd] = ttf
			draw2d.RegisterFont(fd, ttf)
		}
		logging.Debug("Registered %d fonts", len(fonts))
	})
}

// fontData selects the registered font for a label font.
func fontData(f lt.Font) draw2d.FontData {
	fd := draw2d.FontData{
		Name:   fontName,
		Family: draw2d.FontFamilySans,
		Style:  draw2d.FontStyleNormal,
	}

	family := strings.ToLower(f.Family)
	if strings.Contains(family, "mono") || strings.Contains(family, "courier") {
		fd.Family = draw2d.FontFamilyMono
	}
	if f.Weight.IsBold() {
		fd.Style |= draw2d.FontStyleBold
	}
	if f.Italic {
		fd.Style |= draw2d.FontStyleItalic
	}
	return fd
}

// measure returns the advance width, ascent and descent of a line of
// text in points.
func measure(text string, f lt.Font) (float64, float64, float64) {
	registerFonts()
	ttf := fonts[fontData(f)]
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	m := face.Metrics()
	width := font.MeasureString(face, text)
	return fromFixed(width), fromFixed(m.Ascent), fromFixed(m.Descent)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
