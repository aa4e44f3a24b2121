package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/labeltool/internal/logging"
)

// WriteFile creates the file at path with the content produced by write.
//
// The content goes to a temporary file in the same directory, which is
// moved to path when write succeeds. If the temporary file cannot be
// created, write is not called and path is left untouched.
func WriteFile(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	err = write(tmp)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		removeTemp(tmpPath)
		return err
	}

	err = Move(tmpPath, path)
	if err != nil {
		removeTemp(tmpPath)
	}
	return err
}

func removeTemp(path string) {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logging.Warning("Failed to remove temporary file %v: %v", path, err)
	}
}

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	closeErr := w.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}
	return nil
}
