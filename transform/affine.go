// SPDX-License-Identifier: MIT
// Package transform: homogeneous affine transform builders.
//
// Every builder returns a fresh 3×3 Dense whose bottom row is exactly
// [0, 0, 1]. Builders never fail: shapes are compile-time constants and
// non-finite inputs propagate into entries per IEEE-754.

package transform

import (
	"math"

	"github.com/hirgon/planar/matrix"
)

// affineDim is the order of a homogeneous 2D transform matrix.
const affineDim = 3

// radPerDeg converts degrees to radians.
const radPerDeg = math.Pi / 180

// identity3 allocates a fresh 3×3 identity.
// The constructor cannot fail for a positive constant size; a failure here is
// a programmer error, hence the panic.
func identity3() *matrix.Dense {
	id, err := matrix.NewIdentity(affineDim)
	if err != nil {
		panic(err)
	}
	return id
}

// RotationDeg returns the homogeneous rotation about the origin by angleDeg
// degrees, counter-clockwise for positive angles (right-handed, y-up):
//
//	[ c -s  0 ]
//	[ s  c  0 ]
//	[ 0  0  1 ]
//
// Any real angle is accepted, including negatives and values beyond ±360.
// NaN/±Inf angles produce NaN entries, never an error.
// Complexity: O(1).
func RotationDeg(angleDeg float64) *matrix.Dense {
	// Degrees to radians, then the two trig values.
	theta := angleDeg * radPerDeg
	c, s := math.Cos(theta), math.Sin(theta)

	// Overwrite the top-left 2×2 block of the identity.
	rot := identity3()
	_ = rot.Set(0, 0, c)  // cos on the main diagonal
	_ = rot.Set(0, 1, -s) // -sin above it: CCW-positive convention
	_ = rot.Set(1, 0, s)  // sin below the diagonal
	_ = rot.Set(1, 1, c)  // cos on the main diagonal

	return rot
}

// Translation returns the homogeneous translation by (x, y):
//
//	[ 1  0  x ]
//	[ 0  1  y ]
//	[ 0  0  1 ]
//
// Complexity: O(1).
func Translation(x, y float64) *matrix.Dense {
	tr := identity3()
	_ = tr.Set(0, 2, x) // x offset in the last column
	_ = tr.Set(1, 2, y) // y offset in the last column

	return tr
}

// Scaling returns the homogeneous anisotropic scaling by (sx, sy):
//
//	[ sx  0  0 ]
//	[  0 sy  0 ]
//	[  0  0  1 ]
//
// Complexity: O(1).
func Scaling(sx, sy float64) *matrix.Dense {
	sc := identity3()
	_ = sc.Set(0, 0, sx) // x axis factor
	_ = sc.Set(1, 1, sy) // y axis factor

	return sc
}

// UniformScaling returns Scaling(s, s), the zoom transform used by the view
// package.
// Complexity: O(1).
func UniformScaling(s float64) *matrix.Dense {
	return Scaling(s, s)
}
