package render

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"math"
	"runtime"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/llgcode/draw2d"
	"golang.org/x/sync/errgroup"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/logging"
	"github.com/akeil/labeltool/pkg/preview"
)

var outlineColor = color.NRGBA{192, 192, 192, 255}

const outlineWidth = 0.5

func setupPDF(tpl *lt.Template) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: tpl.PageWidth.Pt(),
			Ht: tpl.PageHeight.Pt(),
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("labeltool", true)
	pdf.SetTitle(tpl.Name(), true)
	return pdf
}

// PreviewPDF draws a sheet preview as vector graphics on a single page.
func PreviewPDF(s *preview.Scene, tpl *lt.Template, w io.Writer) error {
	pdf := setupPDF(tpl)
	pdf.AddPage()

	for _, item := range s.Items {
		if item.Shadow != nil {
			sh := item.Shadow
			m := item.Matrix.Multiply(lt.Translation(sh.Offset, sh.Offset))
			pdfFill(pdf, sh.Color)
			pdfShape(pdf, item.Path, m, "F")
		}

		if item.Text != "" {
			pdfText(pdf, item)
			continue
		}

		style := ""
		if item.Fill.A != 0 {
			pdfFill(pdf, item.Fill)
			style += "F"
		}
		if item.Stroke.A != 0 && item.LineWidth > 0 {
			pdfStroke(pdf, item.Stroke, item.LineWidth, item.FlatCap)
			style += "D"
		}
		if style != "" {
			pdfShape(pdf, item.Path, item.Matrix, style)
		}
	}

	return pdf.Output(w)
}

// SheetPDF prints labels onto sheets.
//
// Each record fills one label; new pages are added as needed. Without
// records, a single sheet is filled with copies of the label. With
// outlines set, the outline of every label is drawn as well.
func (c *Context) SheetPDF(m *lt.Model, records []lt.Record, outlines bool, w io.Writer) error {
	err := m.Validate()
	if err != nil {
		return err
	}
	tpl := m.Template()
	frame := tpl.Frames[0]
	origins := frame.Origins()
	size := frame.Size()

	if len(records) == 0 {
		records = make([]lt.Record, len(origins))
	}

	images, err := c.renderFrames(m, records)
	if err != nil {
		return err
	}

	pdf := setupPDF(tpl)
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	for i, data := range images {
		idx := i % len(origins)
		if idx == 0 {
			pdf.AddPage()
			if outlines {
				drawOutlines(pdf, frame)
			}
		}

		name := uuid.New().String()
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		o := origins[idx]
		pdf.ImageOptions(name, o.X.Pt(), o.Y.Pt(), size.W.Pt(), size.H.Pt(), false, opts, 0, "")
	}

	logging.Debug("Printed %d labels on %d pages", len(images), pdf.PageCount())
	return pdf.Output(w)
}

// renderFrames renders one PNG for each record, concurrently.
func (c *Context) renderFrames(m *lt.Model, records []lt.Record) ([][]byte, error) {
	images := make([][]byte, len(records))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range records {
		i := i
		g.Go(func() error {
			img, err := c.frameImage(m, records[i])
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			err = png.Encode(&buf, img)
			if err != nil {
				return err
			}
			images[i] = buf.Bytes()
			return nil
		})
	}

	return images, g.Wait()
}

func drawOutlines(pdf *gofpdf.Fpdf, f lt.Frame) {
	pdfStroke(pdf, outlineColor, outlineWidth, false)
	for _, o := range f.Origins() {
		pdfShape(pdf, f.Path(), lt.Translation(o.X.Pt(), o.Y.Pt()), "D")
	}
}

func pdfFill(pdf *gofpdf.Fpdf, c color.NRGBA) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func pdfStroke(pdf *gofpdf.Fpdf, c color.NRGBA, width float64, flat bool) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(float64(c.A)/255, "Normal")
	pdf.SetLineWidth(width)
	if flat {
		pdf.SetLineCapStyle("butt")
		pdf.SetLineJoinStyle("miter")
	} else {
		pdf.SetLineCapStyle("round")
		pdf.SetLineJoinStyle("round")
	}
}

func pdfShape(pdf *gofpdf.Fpdf, p *draw2d.Path, m lt.Matrix, style string) {
	walkPath(p, m, &pdfPath{pdf})
	pdf.DrawPath(style)
}

// pdfText draws centered text, rotated with the item.
func pdfText(pdf *gofpdf.Fpdf, item preview.Item) {
	style := ""
	if item.Font.Weight.IsBold() {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, item.Font.Size)
	pdf.SetTextColor(int(item.Fill.R), int(item.Fill.G), int(item.Fill.B))
	pdf.SetAlpha(float64(item.Fill.A)/255, "Normal")

	_, ascent, _ := measure(item.Text, item.Font)
	x, y := item.Matrix.Map(0, item.Top+ascent)
	width := pdf.GetStringWidth(item.Text)

	angle := math.Atan2(item.Matrix.M12, item.Matrix.M11) * 180 / math.Pi
	pdf.TransformBegin()
	pdf.TransformRotate(-angle, x, y)
	pdf.Text(x-width/2, y, item.Text)
	pdf.TransformEnd()
}

// pdfPath forwards path segments to the PDF.
type pdfPath struct {
	pdf *gofpdf.Fpdf
}

func (p *pdfPath) MoveTo(x, y float64) {
	p.pdf.MoveTo(x, y)
}

func (p *pdfPath) LineTo(x, y float64) {
	p.pdf.LineTo(x, y)
}

func (p *pdfPath) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.pdf.CurveBezierCubicTo(x1, y1, x2, y2, x, y)
}

func (p *pdfPath) Close() {
	p.pdf.ClosePath()
}
