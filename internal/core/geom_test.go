package core

import "testing"

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
			name:     "touching edges count as intersecting",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners count as intersecting",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "bucket and drop sharing an edge region",
			a:        NewRect(0, 0, 100, 50),
			b:        NewRect(50, 0, 20, 20),
			expected: true,
		},
		{
			name:     "drop just past the right edge",
			a:        NewRect(0, 0, 100, 50),
			b:        NewRect(100.5, 0, 20, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %g, expected 40", r.Right())
	}
	if r.Top() != 60 {
		t.Errorf("Top() = %g, expected 60", r.Top())
	}
	if cx, cy := r.Center(); cx != 25 || cy != 40 {
		t.Errorf("Center() = (%g, %g), expected (25, 40)", cx, cy)
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
		{"bottom-left corner", 10, 10, true},
		{"top-right corner (inclusive)", 30, 25, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside below", 15, 5, false},
		{"outside above", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%g, %g) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"below range", -5, 0, 700, 0},
		{"above range", 800, 0, 700, 700},
		{"inside range", 350, 0, 700, 350},
		{"at lower bound", 0, 0, 700, 0},
		{"at upper bound", 700, 0, 700, 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.val, tc.min, tc.max)
			if got != tc.expected {
				t.Errorf("Clamp(%g, %g, %g) = %g, expected %g", tc.val, tc.min, tc.max, got, tc.expected)
			}

			// Clamping is idempotent: a second application is a no-op.
			if again := Clamp(got, tc.min, tc.max); again != got {
				t.Errorf("Clamp applied twice = %g, expected %g", again, got)
			}
		})
	}
}
