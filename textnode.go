package labeltool

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var defaultColor = color.NRGBA{0, 0, 0, 255}

// TextNode is either a literal value or a reference to a merge field.
//
// TextNodes are values; edit an object property by replacing the node.
type TextNode struct {
	field bool
	data  string
}

// Literal creates a node with a constant value.
func Literal(s string) TextNode {
	return TextNode{data: s}
}

// Field creates a node that refers to the merge field with the given key.
func Field(key string) TextNode {
	return TextNode{field: true, data: key}
}

// ColorNode creates a literal node for the given color.
func ColorNode(c color.Color) TextNode {
	return Literal(fmt.Sprintf("0x%08X", RGBA(c)))
}

// IsField tells if this node refers to a merge field.
func (t TextNode) IsField() bool {
	return t.field
}

// Data is the literal text or the field key.
func (t TextNode) Data() string {
	return t.data
}

// Key is the name of the merge field. Not meaningful for literals.
func (t TextNode) Key() string {
	if !t.field {
		return ""
	}
	return t.data
}

// Equal tells if both nodes are of the same kind with the same data.
func (t TextNode) Equal(other TextNode) bool {
	return t == other
}

// Resolve returns the literal text, or the value of the field in the given
// record. A field that is missing from the record resolves to "".
func (t TextNode) Resolve(rec Record) string {
	if t.field {
		return rec.Value(t.data)
	}
	return t.data
}

// Color resolves the node and parses the result as a color.
// Unparseable values yield opaque black.
func (t TextNode) Color(rec Record) color.NRGBA {
	c, err := ParseColor(t.Resolve(rec))
	if err != nil {
		return defaultColor
	}
	return c
}

func (t TextNode) String() string {
	if t.field {
		return "${" + t.data + "}"
	}
	return t.data
}

// ParseColor reads a color from "0xRRGGBBAA", "#RRGGBB", "#RRGGBBAA"
// or a CSS color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return defaultColor, fmt.Errorf("invalid color %q", s)
		}
		return FromRGBA(uint32(v)), nil
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return defaultColor, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return defaultColor, fmt.Errorf("invalid color %q", s)
		}
		return FromRGBA(uint32(v)), nil
	}

	named, ok := colornames.Map[lower]
	if !ok {
		return defaultColor, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{named.R, named.G, named.B, named.A}, nil
}

// RGBA packs a color into 0xRRGGBBAA (non-premultiplied).
func RGBA(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// FromRGBA unpacks a 0xRRGGBBAA value.
func FromRGBA(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// withOpacity scales the alpha channel of c by opacity (0.0..1.0).
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
