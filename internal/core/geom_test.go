package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"one cell", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"collapses to zero", NewRect(2, 2, 3, 3), 2, NewRect(4, 4, 0, 0)},
		{"no inset", NewRect(1, 2, 3, 4), 0, NewRect(1, 2, 3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name                 string
		outerW, outerH, w, h int
		expected             Rect
	}{
		{"fits", 80, 24, 9, 9, NewRect(35, 7, 9, 9)},
		{"exact", 9, 9, 9, 9, NewRect(0, 0, 9, 9)},
		{"too large", 5, 5, 9, 9, NewRect(0, 0, 9, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
