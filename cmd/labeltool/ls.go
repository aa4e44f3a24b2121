package main

import (
	"fmt"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/pkg/labelfile"
)

func doLs(s settings, path string) error {
	m, err := labelfile.ReadFile(path, s.resources())
	if err != nil {
		return err
	}

	tpl := m.Template()
	fmt.Printf("%v (%v x %v pt)", tpl.Name(), fmtPt(m.W()), fmtPt(m.H()))
	if m.Rotate() {
		fmt.Print(" rotated")
	}
	fmt.Println()
	if !m.Merge().IsNone() {
		fmt.Printf("Merge: %v %q\n", m.Merge().Type, m.Merge().Source)
	}
	fmt.Println("--------------------")

	if len(m.Objects()) == 0 {
		fmt.Println("No objects.")
		return nil
	}

	for _, o := range m.Objects() {
		fmt.Printf("%-8v %7v,%-7v %7v x %-7v %v\n",
			o.Kind(), fmtPt(o.X0()), fmtPt(o.Y0()), fmtPt(o.W()), fmtPt(o.H()), describe(o))
	}
	return nil
}

func fmtPt(d lt.Distance) string {
	return fmt.Sprintf("%.1f", d.Pt())
}

// describe tells the content of text, image and barcode objects.
func describe(o lt.Object) string {
	switch v := o.(type) {
	case *lt.Text:
		return fmt.Sprintf("%q", v.Text())
	case *lt.Image:
		return v.FilenameNode().String()
	case *lt.Barcode:
		return fmt.Sprintf("%v %v", v.Style(), v.DataNode())
	default:
		return ""
	}
}
