package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{-100, -85},
		{0, 0},
		{85, 85},
		{90, 85},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -85, 85); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	got := WrapAngle(5*2*3.141592653589793 + 1)
	if d := got - 1; d > 1e-9 || d < -1e-9 {
		t.Errorf("WrapAngle = %v, want 1", got)
	}
}
