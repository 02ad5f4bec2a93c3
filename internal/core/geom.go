// Package core provides fundamental types shared by every game in the
// collection. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether this rectangle overlaps another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle is a circular hitbox. The bird in the flappy game uses one, so
// collision against pipes is circle-vs-rect rather than box-vs-box.
type Circle struct {
	X, Y int // Center position
	R    int // Radius
}

// NewCircle creates a circle with the given center and radius.
func NewCircle(x, y, r int) Circle {
	return Circle{X: x, Y: y, R: r}
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// The closest point on the rectangle to the circle center is found by
// clamping, then compared against the radius.
func (c Circle) IntersectsRect(r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	cx := Clamp(c.X, r.X, r.Right()-1)
	cy := Clamp(c.Y, r.Y, r.Bottom()-1)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
