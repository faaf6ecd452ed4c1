// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in play-field units.
// Position may be fractional between frames; size is fixed per entity type.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.CenterX(), r.CenterY()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// WithinVertical reports whether other's vertical span lies inside r's.
func (r Rect) WithinVertical(other Rect) bool {
	return other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Inset shrinks the rectangle by margin on every side.
func (r Rect) Inset(margin float64) Rect {
	return Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
}

// Body is the geometry capability shared by every entity on the field.
type Body interface {
	Bounds() Rect
}

// Overlaps reports whether two bodies intersect.
func Overlaps(a, b Body) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
