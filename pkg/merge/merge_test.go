package merge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lt "github.com/akeil/labeltool"
	"github.com/akeil/labeltool/internal/errors"
)

func TestParseType(t *testing.T) {
	f, err := ParseType("Text/Semicolon/Line1Keys")
	require.NoError(t, err)
	assert.Equal(t, ';', f.Delimiter)
	assert.True(t, f.HeaderKeys)

	f, err = ParseType("Text/Tab")
	require.NoError(t, err)
	assert.Equal(t, '\t', f.Delimiter)
	assert.False(t, f.HeaderKeys)

	_, err = ParseType("ebook/vCard")
	assert.True(t, errors.IsNotFound(err))

	for _, typ := range Types()[1:] {
		_, err := ParseType(typ)
		assert.NoError(t, err, typ)
	}
}

func TestReadNumberedKeys(t *testing.T) {
	in := "Ada,Lovelace\n\nAlan,Turing,London\n"
	records, err := Read(strings.NewReader(in), Format{Delimiter: ','})
	require.NoError(t, err)
	assert.Equal(t, []lt.Record{
		{"1": "Ada", "2": "Lovelace"},
		{"1": "Alan", "2": "Turing", "3": "London"},
	}, records)
}

func TestReadHeaderKeys(t *testing.T) {
	in := "first;last\nGrace;Hopper;extra\n\"Quoted; name\";X\n"
	records, err := Read(strings.NewReader(in), Format{Delimiter: ';', HeaderKeys: true})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Grace", records[0].Value("first"))
	assert.Equal(t, "extra", records[0].Value("3"))
	assert.Equal(t, "Quoted; name", records[1].Value("first"))
	assert.Equal(t, "", records[1].Value("missing"))
}

func TestOpenAndRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.tsv"), []byte("name\tcity\nEmmy\tErlangen\n"), 0644))

	src, err := Open(&lt.MergeSource{Type: "Text/Tab/Line1Keys", Source: "people.tsv"}, dir)
	require.NoError(t, err)
	records, err := src.Records()
	require.NoError(t, err)
	assert.Equal(t, []lt.Record{{"name": "Emmy", "city": "Erlangen"}}, records)

	_, err = Open(&lt.MergeSource{Type: lt.NoMerge}, dir)
	assert.Error(t, err)

	src, err = Open(&lt.MergeSource{Type: "Text/Comma", Source: "missing.csv"}, dir)
	require.NoError(t, err)
	_, err = src.Records()
	assert.True(t, errors.IsNotFound(err))
}
