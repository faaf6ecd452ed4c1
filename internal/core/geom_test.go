package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%v, %v), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectInsetAndWithin(t *testing.T) {
	window := NewRect(0, 0, 900, 600)
	area := window.Inset(20)

	if area != NewRect(20, 20, 860, 560) {
		t.Errorf("Inset(20) = %+v", area)
	}
	if !area.WithinVertical(NewRect(0, 20, 10, 560)) {
		t.Error("rect spanning the full height should be within")
	}
	if area.WithinVertical(NewRect(0, 19.5, 10, 10)) {
		t.Error("rect poking above the top should not be within")
	}
}

type box struct{ r Rect }

func (b box) Bounds() Rect { return b.r }

func TestOverlaps(t *testing.T) {
	a := box{NewRect(0, 0, 10, 10)}
	b := box{NewRect(5, 5, 10, 10)}
	c := box{NewRect(10, 0, 10, 10)}

	if !Overlaps(a, b) {
		t.Error("Overlaps(a, b) should be true")
	}
	if Overlaps(a, c) {
		t.Error("Overlaps(a, c) should be false for touching bodies")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestVec2WithLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}

	scaled := v.WithLength(10)
	if math.Abs(scaled.X-6) > 1e-9 || math.Abs(scaled.Y-8) > 1e-9 {
		t.Errorf("WithLength(10) = %+v, expected (6, 8)", scaled)
	}

	zero := Vec2{}
	if zero.WithLength(6) != zero {
		t.Error("WithLength on zero vector should return it unchanged")
	}
}
