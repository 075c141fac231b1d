// pkg/physics/rect_test.go
package physics

import "testing"

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name     string
		a        Rect
		b        Rect
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 2, 2),
			expected: true,
		},
		{
			name:     "disjoint_horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "disjoint_vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 30, 10, 10),
			expected: false,
		},
		{
			name:     "touching_edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			// Overlap is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRect_CenterOn(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	moved := r.CenterOn(Vector2D{X: 50, Y: 60})

	if moved.X != 45 || moved.Y != 50 {
		t.Errorf("CenterOn() top-left = (%v, %v), expected (45, 50)", moved.X, moved.Y)
	}
	if c := moved.Center(); c.X != 50 || c.Y != 60 {
		t.Errorf("Center() after CenterOn = %v, expected (50, 60)", c)
	}
	if moved.W != r.W || moved.H != r.H {
		t.Errorf("CenterOn() changed dimensions: %v", moved)
	}
}

func TestRect_MoveTo(t *testing.T) {
	r := NewRect(5, 5, 8, 8)
	moved := r.MoveTo(Vector2D{X: 100, Y: 200})

	if moved.X != 100 || moved.Y != 200 || moved.W != 8 || moved.H != 8 {
		t.Errorf("MoveTo() = %v, expected {100 200 8 8}", moved)
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 10, 10)

	tests := []struct {
		name     string
		p        Vector2D
		expected bool
	}{
		{name: "inside", p: Vector2D{X: 15, Y: 15}, expected: true},
		{name: "top_left_corner", p: Vector2D{X: 10, Y: 10}, expected: true},
		{name: "bottom_right_corner", p: Vector2D{X: 20, Y: 20}, expected: false},
		{name: "outside", p: Vector2D{X: 0, Y: 0}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}
