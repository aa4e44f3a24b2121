package labeltool

import (
	"math"
)

// Matrix is a 2D affine transformation.
//
//  M11  M12  0
//  M21  M22  0
//  Dx   Dy   1
//
// A point is transformed as
//
//  x' = M11*x + M21*y + Dx
//  y' = M12*x + M22*y + Dy
type Matrix struct {
	M11, M12, M21, M22, Dx, Dy float64
}

// Identity returns the transform that does nothing.
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// Translation moves by dx, dy.
func Translation(dx, dy float64) Matrix {
	return Matrix{M11: 1, M22: 1, Dx: dx, Dy: dy}
}

// Rotation rotates by the given angle in degrees.
// Positive angles rotate clockwise on a y-down page.
func Rotation(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Matrix{M11: cos, M12: sin, M21: -sin, M22: cos}
}

// Scaling scales by sx, sy.
func Scaling(sx, sy float64) Matrix {
	return Matrix{M11: sx, M22: sy}
}

// Multiply combines two transforms; the result applies m first, then o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		M11: m.M11*o.M11 + m.M12*o.M21,
		M12: m.M11*o.M12 + m.M12*o.M22,
		M21: m.M21*o.M11 + m.M22*o.M21,
		M22: m.M21*o.M12 + m.M22*o.M22,
		Dx:  m.Dx*o.M11 + m.Dy*o.M21 + o.Dx,
		Dy:  m.Dx*o.M12 + m.Dy*o.M22 + o.Dy,
	}
}

// Map applies the transform to the given x,y point.
func (m Matrix) Map(x, y float64) (float64, float64) {
	tx := m.M11*x + m.M21*y + m.Dx
	ty := m.M12*x + m.M22*y + m.Dy
	return tx, ty
}

// IsIdentity tells if this matrix is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
