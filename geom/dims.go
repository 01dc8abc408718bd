// SPDX-License-Identifier: MIT
// Package geom: width/height value type.

package geom

import "fmt"

// Dims is a width/height pair, e.g. the size of a view or a page.
type Dims struct {
	W, H float64
}

// Mul returns the dims scaled by f on both axes.
// Complexity: O(1).
func (d Dims) Mul(f float64) Dims {
	return Dims{W: d.W * f, H: d.H * f}
}

// Div returns the dims scaled by 1/f on both axes.
// Complexity: O(1).
func (d Dims) Div(f float64) Dims {
	return Dims{W: d.W / f, H: d.H / f}
}

// Center returns the midpoint of a rectangle of this size anchored at the
// origin.
// Complexity: O(1).
func (d Dims) Center() Vec2 {
	return Vec2{X: d.W / 2, Y: d.H / 2}
}

// String implements fmt.Stringer as "w×h".
func (d Dims) String() string {
	return fmt.Sprintf("%g×%g", d.W, d.H)
}
