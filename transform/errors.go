// SPDX-License-Identifier: MIT
// Package transform: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// transform package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package transform

import "errors"

var (
	// ErrParseToken is returned by ParsePoints when a whitespace-delimited
	// token cannot be converted to a floating-point number. The wrapping
	// error names the offending token; match with errors.Is.
	ErrParseToken = errors.New("transform: token is not a number")

	// ErrNotAffine indicates that a matrix handed to Apply/ApplyPoints/
	// Compose is not a 3×3 homogeneous transform.
	ErrNotAffine = errors.New("transform: matrix is not a 3×3 affine transform")

	// ErrBadPoints indicates that a coordinate matrix is not 2×N
	// (row 0 = x values, row 1 = y values).
	ErrBadPoints = errors.New("transform: coordinate matrix is not 2×N")
)
