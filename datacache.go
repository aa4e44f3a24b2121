package labeltool

import (
	"image"
)

// DataCache collects the image data that is embedded in a label file.
//
// Images are keyed by their literal filename; objects with the same name
// share one entry and the first image seen for a name is kept. Images
// that come from a merge field are not collected.
type DataCache struct {
	images     map[string]*image.NRGBA
	svgs       map[string][]byte
	imageNames []string
	svgNames   []string
}

// NewDataCache collects image data from the given objects.
func NewDataCache(objects []Object) *DataCache {
	d := &DataCache{
		images:     make(map[string]*image.NRGBA),
		svgs:       make(map[string][]byte),
		imageNames: make([]string, 0),
		svgNames:   make([]string, 0),
	}

	for _, o := range objects {
		img, ok := o.(*Image)
		if !ok || img.FilenameNode().IsField() {
			continue
		}
		name := img.FilenameNode().Data()

		switch img.State() {
		case ImageRaster:
			d.addImage(name, img.Image())
		case ImageVector:
			d.addSVG(name, img.SVG())
		}
	}

	return d
}

func (d *DataCache) addImage(name string, img *image.NRGBA) {
	if _, ok := d.images[name]; ok {
		return
	}
	d.images[name] = img
	d.imageNames = append(d.imageNames, name)
}

func (d *DataCache) addSVG(name string, data []byte) {
	if _, ok := d.svgs[name]; ok {
		return
	}
	d.svgs[name] = data
	d.svgNames = append(d.svgNames, name)
}

// ImageNames lists the names of raster images in the order they were
// first seen.
func (d *DataCache) ImageNames() []string {
	return d.imageNames
}

// SVGNames lists the names of vector images in the order they were
// first seen.
func (d *DataCache) SVGNames() []string {
	return d.svgNames
}

// Image returns the raster image with the given name.
func (d *DataCache) Image(name string) (*image.NRGBA, bool) {
	img, ok := d.images[name]
	return img, ok
}

// SVG returns the SVG markup with the given name.
func (d *DataCache) SVG(name string) ([]byte, bool) {
	data, ok := d.svgs[name]
	return data, ok
}
