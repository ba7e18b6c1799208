// Package core provides fundamental types and utilities for tagstorm.
// It contains no external dependencies on Bubble Tea so the simulation stays
// pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Box3 is an axis-aligned bounding box in world space.
// A box whose Max is below its Min on any axis is empty. Flat boxes
// (zero extent on an axis) are not empty; they just have zero volume.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBox returns a box that contains nothing and intersects nothing.
func EmptyBox() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// NewBox3FromCenter creates a box from a center point and full size dimensions.
func NewBox3FromCenter(center, size mgl64.Vec3) Box3 {
	half := size.Mul(0.5)
	return Box3{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// IsEmpty reports whether the box has no extent at all.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Size returns the extent along each axis. Empty boxes have zero size.
func (b Box3) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Volume returns the box volume, 0 for empty or flat boxes.
func (b Box3) Volume() float64 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// Center returns the midpoint of the box.
func (b Box3) Center() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset mgl64.Vec3) Box3 {
	if b.IsEmpty() {
		return b
	}
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// ExpandByScalar grows the box by amount on every side.
func (b Box3) ExpandByScalar(amount float64) Box3 {
	if b.IsEmpty() {
		return b
	}
	grow := mgl64.Vec3{amount, amount, amount}
	return Box3{Min: b.Min.Sub(grow), Max: b.Max.Add(grow)}
}

// Intersects reports whether two boxes share any point. Touching faces count.
func (b Box3) Intersects(other Box3) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	for i := 0; i < 3; i++ {
		if b.Max[i] < other.Min[i] || b.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}

// Intersect returns the common region of two boxes, or an empty box.
func (b Box3) Intersect(other Box3) Box3 {
	var out Box3
	for i := 0; i < 3; i++ {
		out.Min[i] = math.Max(b.Min[i], other.Min[i])
		out.Max[i] = math.Min(b.Max[i], other.Max[i])
	}
	if out.IsEmpty() {
		return EmptyBox()
	}
	return out
}

// AxisOverlap returns how far the boxes overlap along each axis.
// Negative components mean the boxes are separated on that axis.
func (b Box3) AxisOverlap(other Box3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		out[i] = math.Min(b.Max[i], other.Max[i]) - math.Max(b.Min[i], other.Min[i])
	}
	return out
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 interpolates linearly between two points.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
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
