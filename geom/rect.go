// SPDX-License-Identifier: MIT
// Package geom: axis-aligned rectangle value type.
//
// Rect edges are normalized at construction (X0 <= X1, Y0 <= Y1), so every
// downstream computation can assume ordered bounds. Intersect clamps to the
// begin edges rather than going negative, so a miss collapses to an empty
// rect sitting on the boundary instead of producing inverted extents.

package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle spanning [X0, X1]×[Y0, Y1].
type Rect struct {
	X0, X1, Y0, Y1 float64
}

// NewRect builds a rect from two x bounds and two y bounds in any order;
// the constructor sorts each pair so the invariants X0<=X1, Y0<=Y1 hold.
// Complexity: O(1).
func NewRect(x0, x1, y0, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		X1: math.Max(x0, x1),
		Y0: math.Min(y0, y1),
		Y1: math.Max(y0, y1),
	}
}

// RectFromDims builds the rect [0, d.W]×[0, d.H] anchored at the origin.
// Complexity: O(1).
func RectFromDims(d Dims) Rect {
	return NewRect(0, d.W, 0, d.H)
}

// Offset returns the rect's minimum corner (X0, Y0).
// Complexity: O(1).
func (r Rect) Offset() Vec2 {
	return Vec2{X: r.X0, Y: r.Y0}
}

// W returns the rect width.
// Complexity: O(1).
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the rect height.
// Complexity: O(1).
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Dims returns the rect extents as a width/height pair.
// Complexity: O(1).
func (r Rect) Dims() Dims {
	return Dims{W: r.W(), H: r.H()}
}

// Center returns the rect midpoint.
// Complexity: O(1).
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Intersect returns the overlap of r and other. When the rects do not
// overlap on an axis, that axis collapses to a zero-width span clamped at
// the begin edge, never an inverted range.
// Complexity: O(1).
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X0, other.X0)
	x1 := math.Max(math.Min(r.X1, other.X1), x0) // clamp: no inverted span
	y0 := math.Max(r.Y0, other.Y0)
	y1 := math.Max(math.Min(r.Y1, other.Y1), y0) // clamp: no inverted span

	return Rect{X0: x0, X1: x1, Y0: y0, Y1: y1}
}

// Translate returns r shifted by v.
// Complexity: O(1).
func (r Rect) Translate(v Vec2) Rect {
	return Rect{X0: r.X0 + v.X, X1: r.X1 + v.X, Y0: r.Y0 + v.Y, Y1: r.Y1 + v.Y}
}

// Scale returns r with all four edges multiplied by f.
// Complexity: O(1).
func (r Rect) Scale(f float64) Rect {
	return NewRect(r.X0*f, r.X1*f, r.Y0*f, r.Y1*f)
}

// Empty reports whether the rect has zero area.
// Complexity: O(1).
func (r Rect) Empty() bool {
	return r.W() == 0 || r.H() == 0
}

// String implements fmt.Stringer as "(x0,x1;y0,y1)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g;%g,%g)", r.X0, r.X1, r.Y0, r.Y1)
}
