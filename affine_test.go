package labeltool

import (
	"math"
	"testing"
)

func TestRotation(t *testing.T) {
	x := 1.0
	y := 2.0

	rot := Rotation(90)
	tx, ty := rot.Map(x, y)

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// translating around the point itself should result in the origin
	m := Translation(-x, -y).Multiply(rot)
	tx, ty = m.Map(x, y)

	if math.Round(tx) != 0 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 0 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// scale first, then move
	m := Scaling(2, 3).Multiply(Translation(10, 20))
	tx, ty := m.Map(1, 1)
	if tx != 12 || ty != 23 {
		t.Errorf("unexpected result: %v, %v", tx, ty)
	}

	if !Identity().Multiply(Identity()).IsIdentity() {
		t.Errorf("identity * identity is not identity")
	}
}
