package layout

import "math"

// Vec is a 2D vector. Methods return new values; Vec is never mutated.
type Vec struct {
	X, Y float64
}

// Add returns v + u.
func (v Vec) Add(u Vec) Vec { return Vec{v.X + u.X, v.Y + u.Y} }

// Sub returns v - u.
func (v Vec) Sub(u Vec) Vec { return Vec{v.X - u.X, v.Y - u.Y} }

// Scale returns v scaled by d.
func (v Vec) Scale(d float64) Vec { return Vec{v.X * d, v.Y * d} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dir returns the component-wise sign vector of v: each component is -1, 0,
// or +1. This is the coarse direction used by the force simulation.
func (v Vec) Dir() Vec {
	var d Vec
	if v.X != 0 {
		d.X = v.X / math.Abs(v.X)
	}
	if v.Y != 0 {
		d.Y = v.Y / math.Abs(v.Y)
	}
	return d
}

// ClampLen limits each component's magnitude to max, preserving sign.
func (v Vec) ClampLen(max float64) Vec {
	return Vec{
		X: math.Copysign(math.Min(math.Abs(v.X), max), v.X),
		Y: math.Copysign(math.Min(math.Abs(v.Y), max), v.Y),
	}
}
