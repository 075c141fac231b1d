// pkg/physics/rect.go
package physics

// Rect is an axis-aligned bounding box. X and Y are the pixel
// coordinates of the top-left corner, relative to the top-left corner
// of the game surface at (0, 0). Collision detection between game
// elements uses these boxes verbatim.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given top-left position and dimensions
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2D {
	return Vector2D{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MoveTo returns a copy of the rectangle with its top-left corner at the
// given position
func (r Rect) MoveTo(pos Vector2D) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: r.W, H: r.H}
}

// CenterOn returns a copy of the rectangle repositioned so that its center
// is at the given point
func (r Rect) CenterOn(center Vector2D) Rect {
	return Rect{X: center.X - r.W/2, Y: center.Y - r.H/2, W: r.W, H: r.H}
}

// TopLeft returns the position of the top-left corner
func (r Rect) TopLeft() Vector2D {
	return Vector2D{X: r.X, Y: r.Y}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point is inside this rectangle
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
