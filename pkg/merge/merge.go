// Package merge reads merge records from delimited text files.
//
// Supported source types are "Text/Comma", "Text/Tab", "Text/Colon" and
// "Text/Semicolon". With the "/Line1Keys" suffix, the first line holds the
// field names; otherwise fields are named by their column number,
// starting at "1".
package merge

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
	"github.com/akeil/labeltool/internal/logging"
)

const line1Keys = "/Line1Keys"

var delimiters = map[string]rune{
	"Text/Comma":     ',',
	"Text/Tab":       '\t',
	"Text/Colon":     ':',
	"Text/Semicolon": ';',
}

// Types lists all supported source type ids.
func Types() []string {
	types := make([]string, 0, 2*len(delimiters)+1)
	types = append(types, lt.NoMerge)
	for _, base := range []string{"Text/Comma", "Text/Tab", "Text/Colon", "Text/Semicolon"} {
		types = append(types, base, base+line1Keys)
	}
	return types
}

// Format describes how a text source is split into records.
type Format struct {
	Delimiter rune
	// HeaderKeys means the first line holds the field names.
	HeaderKeys bool
}

// ParseType looks up the format for a source type id.
func ParseType(typ string) (Format, error) {
	base := strings.TrimSuffix(typ, line1Keys)
	d, ok := delimiters[base]
	if !ok {
		return Format{}, errors.NewNotFound("unsupported merge type %q", typ)
	}
	return Format{Delimiter: d, HeaderKeys: base != typ}, nil
}

// Source reads the records of a merge source from a file.
type Source struct {
	Path   string
	Format Format
}

// Open prepares reading from the given merge source.
// Relative paths are resolved against base.
func Open(src *lt.MergeSource, base string) (*Source, error) {
	if src.IsNone() {
		return nil, errors.NewValidationError("no merge source")
	}
	f, err := ParseType(src.Type)
	if err != nil {
		return nil, err
	}

	path := src.Source
	if !filepath.IsAbs(path) && base != "" {
		path = filepath.Join(base, path)
	}
	return &Source{Path: path, Format: f}, nil
}

// Records reads all records from the source file.
func (s *Source) Records() ([]lt.Record, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound("merge source %q does not exist", s.Path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Read(f, s.Format)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read merge source %q", s.Path)
	}
	logging.Debug("Read %d records from %q", len(records), s.Path)
	return records, nil
}

// Read parses delimited text into records.
// Empty lines are skipped; rows may have different numbers of fields.
func Read(r io.Reader, f Format) ([]lt.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var keys []string
	records := make([]lt.Record, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if f.HeaderKeys && keys == nil {
			keys = make([]string, len(row))
			for i, k := range row {
				keys[i] = strings.TrimSpace(k)
			}
			continue
		}

		rec := make(lt.Record, len(row))
		for i, v := range row {
			rec[key(keys, i)] = v
		}
		records = append(records, rec)
	}

	return records, nil
}

// key is the field name for column i.
// Columns without a header name are numbered.
func key(keys []string, i int) string {
	if i < len(keys) && keys[i] != "" {
		return keys[i]
	}
	return strconv.Itoa(i + 1)
}
