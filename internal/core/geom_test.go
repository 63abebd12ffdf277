package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
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
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 16, 32),
			b:        NewRect(0, 31.7, 16, 16),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 16, 32)
	b := NewRect(10, 24, 16, 16)

	overlap, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected rects to intersect")
	}
	want := NewRect(10, 24, 6, 8)
	if overlap != want {
		t.Errorf("Intersection() = %+v, expected %+v", overlap, want)
	}

	if _, ok := a.Intersection(NewRect(16, 0, 4, 4)); ok {
		t.Error("touching rects should not report an intersection")
	}
}

func TestRectExpandTranslate(t *testing.T) {
	r := NewRect(48, 32, 32, 32).Expand(10)
	if r != NewRect(38, 22, 52, 52) {
		t.Errorf("Expand() = %+v", r)
	}

	moved := NewRect(0, 0, 4, 4).Translate(mgl64.Vec2{3, -2})
	if moved.X != 3 || moved.Y != -2 {
		t.Errorf("Translate() = %+v, expected origin (3, -2)", moved)
	}

	c := NewRect(0, 0, 16, 32).Center()
	if c.X() != 8 || c.Y() != 16 {
		t.Errorf("Center() = %v, expected (8, 16)", c)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(8.5, 0, 8); got != 8 {
		t.Errorf("ClampF(8.5, 0, 8) = %v, expected 8", got)
	}
}
