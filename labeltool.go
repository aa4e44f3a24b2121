// Package labeltool is the document model for label designs.
//
// A label design (Model) is a list of placed objects on a label Template.
// Objects are boxes, ellipses, lines, images, text and barcodes. Colors,
// texts and image sources can be literal values or references to fields
// of a merge record.
package labeltool

import (
	"strings"

	"github.com/akeil/labeltool/internal/logging"
)

// SetLogLevel sets the log level by name
// ("debug", "info", "warning", "error" or "none").
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(strings.ToLower(level)))
}
