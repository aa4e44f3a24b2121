package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/pkg/labelfile"
	"github.com/akeil/labeltool/pkg/preview"
	"github.com/akeil/labeltool/pkg/render"
)

var previewFormats = []string{".png", ".svg", ".pdf"}

func doPreview(path string, outputs []string, rotate bool, width int) error {
	err := checkOutFormat(outputs)
	if err != nil {
		return err
	}

	tpl, err := readTemplate(path)
	if err != nil {
		return err
	}
	scene := preview.Build(tpl, rotate)

	var group errgroup.Group
	for _, out := range outputs {
		out := out
		group.Go(func() error {
			return writePreview(scene, tpl, out, width)
		})
	}
	return group.Wait()
}

func readTemplate(path string) (*lt.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return labelfile.ReadTemplate(f)
}

func checkOutFormat(outputs []string) error {
	for _, out := range outputs {
		ext := strings.ToLower(filepath.Ext(out))
		if !supported(ext) {
			return fmt.Errorf("unsupported output format %q, choose one of %v", out, strings.Join(previewFormats, ", "))
		}
	}
	return nil
}

func supported(ext string) bool {
	for _, f := range previewFormats {
		if f == ext {
			return true
		}
	}
	return false
}

func writePreview(scene *preview.Scene, tpl *lt.Template, out string, width int) error {
	f, err := os.Create(out)
	if err != nil {
		fmt.Printf("%v Failed to create %q: %v\n", crossmark, out, err)
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(out)) {
	case ".svg":
		err = render.PreviewSVG(scene, f)
	case ".pdf":
		err = render.PreviewPDF(scene, tpl, f)
	default:
		err = render.PreviewPNG(scene, width, f)
	}
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, out, err)
		return err
	}

	fmt.Printf("%v preview of %q saved as %q.\n", checkmark, tpl.Name(), out)
	return nil
}
