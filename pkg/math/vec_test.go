package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Wrap(t *testing.T) {
	tests := []struct {
		in   Vec2
		want Vec2
	}{
		{Vec2{0.25, 0.75}, Vec2{0.25, 0.75}},
		{Vec2{1.25, -0.25}, Vec2{0.25, 0.75}},
		{Vec2{-2, 3}, Vec2{0, 0}},
		{Vec2{1, 1}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		got := tt.in.Wrap()
		if got != tt.want {
			t.Errorf("Vec2%v.Wrap() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Scale(t *testing.T) {
	v := Vec3{2, 4, 6}
	got := v.Scale(0.5)
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Vec3.Scale() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}
	if zero.Normalize() != zero {
		t.Error("normalizing the zero vector should return zero")
	}
}
