package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTranslateIgnoredForVectors(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformVector(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformVector: got %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))

	y := m.TransformVector(UnitY)
	if abs(y.X) > 0.001 || abs(y.Y) > 0.001 || abs(y.Z-1) > 0.001 {
		t.Errorf("RotateX 90 of +Y: got %v, want (0, 0, 1)", y)
	}
	z := m.TransformVector(UnitZ)
	if abs(z.X) > 0.001 || abs(z.Y+1) > 0.001 || abs(z.Z) > 0.001 {
		t.Errorf("RotateX 90 of +Z: got %v, want (0, -1, 0)", z)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	got := m.TransformVector(UnitX)
	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("RotateZ 90 of +X: got %v, want (0, 1, 0)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale applied after translation: (p + t) * s
	m := UniformScale(2).Mul(Translate(Vec3{1, 0, 0}))
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{4, 2, 2}
	if got != want {
		t.Errorf("Scale*Translate: got %v, want %v", got, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
