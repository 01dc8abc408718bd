// SPDX-License-Identifier: MIT
// Package geom: 2D vector value type.

package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector (or point) with float64 components.
type Vec2 struct {
	X, Y float64
}

// Splat returns the vector (v, v); handy for uniform offsets.
// Complexity: O(1).
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns the component-wise sum v + o.
// Complexity: O(1).
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
// Complexity: O(1).
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by f.
// Complexity: O(1).
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Div returns v scaled by 1/f. Division by zero follows IEEE-754 (±Inf/NaN
// components), matching the package-wide propagation policy.
// Complexity: O(1).
func (v Vec2) Div(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Neg returns the component-wise negation of v.
// Complexity: O(1).
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Max returns the component-wise maximum of v and o.
// Complexity: O(1).
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y)}
}

// String implements fmt.Stringer as "(x,y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
