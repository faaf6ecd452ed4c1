package core

import "math"

// Vec2 is a 2D velocity or displacement in play-field units per tick.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// WithLength rescales v to the given length.
// A zero vector has no direction and is returned unchanged.
func (v Vec2) WithLength(length float64) Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}
