package labeltool

import (
	"fmt"
	"strconv"
	"strings"
)

// Distance is a physical length, stored in points (1/72 inch).
type Distance float64

const (
	ptPerIn = 72.0
	ptPerMm = 72.0 / 25.4
	ptPerCm = 72.0 / 2.54
	ptPerPc = 12.0
)

func Pt(v float64) Distance { return Distance(v) }
func In(v float64) Distance { return Distance(v * ptPerIn) }
func Mm(v float64) Distance { return Distance(v * ptPerMm) }
func Cm(v float64) Distance { return Distance(v * ptPerCm) }
func Pc(v float64) Distance { return Distance(v * ptPerPc) }

// Pt returns the distance in points.
func (d Distance) Pt() float64 {
	return float64(d)
}

// In returns the distance in the given units.
func (d Distance) In(u Units) float64 {
	return float64(d) / u.perUnit()
}

// Units is a unit of length.
type Units int

const (
	UnitsPt Units = iota
	UnitsIn
	UnitsMm
	UnitsCm
	UnitsPc
)

var unitIDs = map[Units]string{
	UnitsPt: "pt",
	UnitsIn: "in",
	UnitsMm: "mm",
	UnitsCm: "cm",
	UnitsPc: "pc",
}

// ID is the short name used in files, e.g. "mm".
func (u Units) ID() string {
	return unitIDs[u]
}

func (u Units) String() string {
	return u.ID()
}

func (u Units) perUnit() float64 {
	switch u {
	case UnitsIn:
		return ptPerIn
	case UnitsMm:
		return ptPerMm
	case UnitsCm:
		return ptPerCm
	case UnitsPc:
		return ptPerPc
	default:
		return 1.0
	}
}

// ParseUnits looks up units by their ID.
func ParseUnits(s string) (Units, error) {
	for u, id := range unitIDs {
		if id == s {
			return u, nil
		}
	}
	return UnitsPt, fmt.Errorf("invalid units %q", s)
}

// ParseDistance parses a length like "12.5mm" or "36pt".
// A plain number is interpreted as points.
func ParseDistance(s string) (Distance, error) {
	s = strings.TrimSpace(s)
	num := s
	u := UnitsPt
	for unit, id := range unitIDs {
		if strings.HasSuffix(s, id) {
			num = strings.TrimSpace(strings.TrimSuffix(s, id))
			u = unit
			break
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	return Distance(v * u.perUnit()), nil
}

// FormatDistance formats a distance in the given units, e.g. "12.5mm".
func FormatDistance(d Distance, u Units) string {
	return strconv.FormatFloat(d.In(u), 'g', -1, 64) + u.ID()
}

func minDistance(a, b Distance) Distance {
	if a < b {
		return a
	}
	return b
}

// Size is the width and height of something.
type Size struct {
	W Distance
	H Distance
}

// Point is a position on a page or label.
type Point struct {
	X Distance
	Y Distance
}

// Less orders points top to bottom, then left to right.
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}
