// Package math provides the small vector types used for texture coordinates
// and color accumulation.
package math

import gomath "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return gomath.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Wrap returns v with both components wrapped into [0,1).
// Negative components wrap to a non-negative result.
func (v Vec2) Wrap() Vec2 {
	return Vec2{v.X - gomath.Floor(v.X), v.Y - gomath.Floor(v.Y)}
}
