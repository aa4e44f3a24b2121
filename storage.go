package labeltool

import (
	"image"
	"os"
	"path/filepath"

	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/imaging"
)

// Storage gives access to external asset files (images, SVGs).
type Storage interface {
	// ReadAsset reads the complete contents of the asset at path.
	ReadAsset(path string) ([]byte, error)
}

type fsStorage struct {
	Base string
}

// NewFilesystemStorage creates a storage that reads assets from the local
// filesystem. Relative paths are resolved against base.
func NewFilesystemStorage(base string) Storage {
	return &fsStorage{base}
}

func (f *fsStorage) ReadAsset(path string) ([]byte, error) {
	if !filepath.IsAbs(path) && f.Base != "" {
		path = filepath.Join(f.Base, path)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound("no asset at %q", path)
	}
	return data, err
}

type memStorage struct {
	files map[string][]byte
}

// NewMemoryStorage creates a storage backed by the given map of
// path -> content.
func NewMemoryStorage(files map[string][]byte) Storage {
	return &memStorage{files}
}

func (m *memStorage) ReadAsset(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errors.NewNotFound("no asset at %q", path)
	}
	return data, nil
}

// Resources holds shared, read-only things that objects need for loading
// and drawing. Create one instance on startup and pass it to NewImage and
// NewBarcode.
type Resources struct {
	// Storage is used to load image files. May be nil.
	Storage Storage
	// Placeholder is shown in the editor for missing images.
	// It must not be modified.
	Placeholder image.Image
	// Barcodes creates barcode symbols. May be nil.
	Barcodes BarcodeRenderer
}

// NewResources sets up resources with a checkerboard placeholder image.
func NewResources(s Storage) *Resources {
	return &Resources{
		Storage:     s,
		Placeholder: imaging.Checkerboard(64, 8),
	}
}

func (r *Resources) storage() Storage {
	if r == nil {
		return nil
	}
	return r.Storage
}

func (r *Resources) placeholder() image.Image {
	if r == nil {
		return nil
	}
	return r.Placeholder
}

func (r *Resources) barcodes() BarcodeRenderer {
	if r == nil {
		return nil
	}
	return r.Barcodes
}
