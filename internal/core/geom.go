// Package core provides fundamental types and utilities shared by the game and its hosts.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
// The world origin is the bottom-left corner, so Y grows upwards.
type Rect struct {
	X, Y float64 // Bottom-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Overlaps returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	// No overlap if one rect is completely to the left, right, below, or above
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
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
