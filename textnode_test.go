package labeltool

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextNodeResolve(t *testing.T) {
	rec := Record{"name": "Alice"}

	lit := Literal("Hello")
	assert.False(t, lit.IsField())
	assert.Equal(t, "Hello", lit.Resolve(rec))
	assert.Equal(t, "Hello", lit.Resolve(nil))

	f := Field("name")
	assert.True(t, f.IsField())
	assert.Equal(t, "name", f.Key())
	assert.Equal(t, "name", f.Data())
	assert.Equal(t, "Alice", f.Resolve(rec))

	// absent fields are not an error
	assert.Equal(t, "", Field("missing").Resolve(rec))
	assert.Equal(t, "", f.Resolve(nil))
}

func TestTextNodeEqual(t *testing.T) {
	assert.True(t, Literal("a").Equal(Literal("a")))
	assert.False(t, Literal("a").Equal(Field("a")))
	assert.False(t, Field("a").Equal(Field("b")))
}

func TestTextNodeColor(t *testing.T) {
	n := Literal("0x336699FF")
	assert.Equal(t, color.NRGBA{0x33, 0x66, 0x99, 0xff}, n.Color(nil))

	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, Literal("#ff0000").Color(nil))
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0x80}, Literal("#0000ff80").Color(nil))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, Literal("red").Color(nil))

	// parse failure -> opaque black
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, Literal("not a color").Color(nil))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, Field("c").Color(nil))

	rec := Record{"c": "0x00FF00FF"}
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, Field("c").Color(rec))
}

func TestColorNode(t *testing.T) {
	n := ColorNode(color.NRGBA{0x33, 0x66, 0x99, 0xff})
	assert.False(t, n.IsField())
	assert.Equal(t, "0x336699FF", n.Data())
	assert.Equal(t, uint32(0x336699ff), RGBA(n.Color(nil)))
}
