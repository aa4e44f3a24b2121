package main

import (
	"fmt"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/pkg/labelfile"
)

func doResave(s settings, path, out, units string) error {
	u, err := lt.ParseUnits(units)
	if err != nil {
		return err
	}

	m, err := labelfile.ReadFile(path, s.resources())
	if err != nil {
		return err
	}

	enc := &labelfile.Encoder{Units: u}
	err = enc.WriteFile(out, m)
	if err != nil {
		return err
	}

	fmt.Printf("%v %q saved as %q.\n", checkmark, path, out)
	return nil
}
