package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/logging"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	dataDir  string
	logLevel string
}

func (s settings) resources() *lt.Resources {
	return lt.NewResources(lt.NewFilesystemStorage(s.dataDir))
}

func main() {
	app := kingpin.New("labeltool", "Label design tool")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error, none)").
		Envar("LABELTOOL_LOG").Default("warning").StringVar(&s.logLevel)
	app.Flag("data", "Directory for image files referenced by labels").
		Envar("LABELTOOL_DATA").Default(".").StringVar(&s.dataDir)

	ls := app.Command("ls", "List the objects of a label").Default()
	var (
		lsPath = ls.Arg("label", "Label file").Required().String()
	)

	pv := app.Command("preview", "Show the sheet layout of a template")
	var (
		pvPath   = pv.Arg("template", "Template or label file").Required().String()
		pvOut    = pv.Flag("output", "Output file(s), .png, .svg or .pdf").Short('o').Required().Strings()
		pvRotate = pv.Flag("rotate", "Rotate the label design").Short('r').Bool()
		pvWidth  = pv.Flag("width", "Width of PNG output in pixels").Short('w').Default("600").Int()
	)

	rn := app.Command("render", "Render a single label to PNG")
	var (
		rnPath   = rn.Arg("label", "Label file").Required().String()
		rnOut    = rn.Flag("output", "Output file").Short('o').Required().String()
		rnRecord = rn.Flag("record", "Merge record to use, starting at 1").Short('n').Int()
		rnDPI    = rn.Flag("dpi", "Resolution").Default("300").Float()
	)

	pr := app.Command("print", "Print labels to a PDF sheet")
	var (
		prPath     = pr.Arg("label", "Label file").Required().String()
		prOut      = pr.Flag("output", "Output file").Short('o').Required().String()
		prOutlines = pr.Flag("outlines", "Draw label outlines").Bool()
		prDPI      = pr.Flag("dpi", "Resolution").Default("300").Float()
	)

	rs := app.Command("resave", "Read a label and write it again")
	var (
		rsPath  = rs.Arg("label", "Label file").Required().String()
		rsOut   = rs.Arg("output", "Output file").Required().String()
		rsUnits = rs.Flag("units", "Units for lengths (pt, in, mm, cm, pc)").Short('u').Default("pt").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	lt.SetLogLevel(s.logLevel)
	defer logging.Sync()

	var err error
	switch command {
	case "ls":
		err = doLs(s, *lsPath)
	case "preview":
		err = doPreview(*pvPath, *pvOut, *pvRotate, *pvWidth)
	case "render":
		err = doRender(s, *rnPath, *rnOut, *rnRecord, *rnDPI)
	case "print":
		err = doPrint(s, *prPath, *prOut, *prOutlines, *prDPI)
	case "resave":
		err = doResave(s, *rsPath, *rsOut, *rsUnits)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
