package main

import (
	"fmt"
	"os"
	"path/filepath"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/pkg/labelfile"
	"github.com/akeil/labeltool/pkg/merge"
	"github.com/akeil/labeltool/pkg/render"
)

func doRender(s settings, path, out string, record int, dpi float64) error {
	m, err := labelfile.ReadFile(path, s.resources())
	if err != nil {
		return err
	}

	var rec lt.Record
	if record > 0 {
		records, err := readRecords(m, path)
		if err != nil {
			return err
		}
		if record > len(records) {
			return fmt.Errorf("record %d out of range, merge source has %d records", record, len(records))
		}
		rec = records[record-1]
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("%v render %q\n", ellipsis, path)
	rc := render.NewContext(s.resources())
	rc.DPI = dpi
	err = rc.Label(m, rec, f)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, path, err)
		return err
	}

	fmt.Printf("%v label %q saved as %q.\n", checkmark, path, out)
	return nil
}

func doPrint(s settings, path, out string, outlines bool, dpi float64) error {
	m, err := labelfile.ReadFile(path, s.resources())
	if err != nil {
		return err
	}

	var records []lt.Record
	if !m.Merge().IsNone() {
		records, err = readRecords(m, path)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("%v print %q\n", ellipsis, path)
	rc := render.NewContext(s.resources())
	rc.DPI = dpi
	err = rc.SheetPDF(m, records, outlines, f)
	if err != nil {
		fmt.Printf("%v Failed to print %q: %v\n", crossmark, path, err)
		return err
	}

	fmt.Printf("%v labels from %q saved as %q.\n", checkmark, path, out)
	return nil
}

// readRecords reads the merge data of a label.
// Relative merge paths are taken relative to the label file.
func readRecords(m *lt.Model, path string) ([]lt.Record, error) {
	src, err := merge.Open(m.Merge(), filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return src.Records()
}
