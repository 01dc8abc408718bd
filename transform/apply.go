// SPDX-License-Identifier: MIT
// Package transform: applying and composing homogeneous transforms.
//
// Purpose:
//   - Push single points and whole 2×N coordinate matrices through a 3×3
//     transform, and chain transforms by matrix product.
//
// Determinism & Policy:
//   - All products delegate to the matrix kernels; loop orders and numeric
//     policy are theirs. Results are fresh; operands are never mutated.

package transform

import (
	"fmt"

	"github.com/hirgon/planar/matrix"
)

// homogeneousW is the constant third component of an affine point (x, y, 1).
const homogeneousW = 1.0

// validateAffine checks that t is a non-nil 3×3 matrix.
// Returns ErrNilMatrix or ErrNotAffine as plain sentinels for uniform
// wrapping at call sites.
func validateAffine(t matrix.Matrix) error {
	if err := matrix.ValidateNotNil(t); err != nil {
		return err
	}
	if t.Rows() != affineDim || t.Cols() != affineDim {
		return ErrNotAffine
	}

	return nil
}

// Apply multiplies the transform t by the homogeneous column (x, y, 1) and
// returns the transformed point (x', y').
//
// The bottom row of a transform built by this package is exactly [0, 0, 1],
// so the result needs no perspective divide; Apply assumes that invariant
// and ignores the third output component.
//
// Errors: ErrNilMatrix, ErrNotAffine.
// Complexity: O(1).
func Apply(t matrix.Matrix, x, y float64) (float64, float64, error) {
	// Validate the transform shape.
	if err := validateAffine(t); err != nil {
		return 0, 0, fmt.Errorf("Apply: %w", err)
	}

	// One matrix-vector product against the homogeneous column.
	out, err := matrix.MatVec(t, []float64{x, y, homogeneousW})
	if err != nil {
		return 0, 0, fmt.Errorf("Apply: %w", err) // unreachable after validateAffine
	}

	return out[0], out[1], nil
}

// ApplyPoints pushes every column of a 2×N coordinate matrix through the
// transform t and returns a fresh 2×N result in the same column order.
//
// Implementation:
//   - Stage 1 (Validate): t must be 3×3, pts must be 2×N.
//   - Stage 2 (Execute): per-column Apply with a fixed j order.
//
// Errors: ErrNilMatrix, ErrNotAffine, ErrBadPoints.
// Complexity: O(N).
func ApplyPoints(t matrix.Matrix, pts matrix.Matrix) (*matrix.Dense, error) {
	// Validate the transform shape.
	if err := validateAffine(t); err != nil {
		return nil, fmt.Errorf("ApplyPoints: %w", err)
	}
	// Validate the coordinate matrix shape.
	if err := matrix.ValidateNotNil(pts); err != nil {
		return nil, fmt.Errorf("ApplyPoints: %w", err)
	}
	if pts.Rows() != coordRows {
		return nil, fmt.Errorf("ApplyPoints: %w", ErrBadPoints)
	}

	// Allocate the result with the same shape.
	n := pts.Cols()
	out, err := matrix.NewDense(coordRows, n)
	if err != nil {
		return nil, fmt.Errorf("ApplyPoints: %w", err) // unreachable for n >= 0
	}

	var x, y, tx, ty float64
	for j := 0; j < n; j++ { // fixed column order
		x, _ = pts.At(0, j) // in range by construction
		y, _ = pts.At(1, j)
		tx, ty, err = Apply(t, x, y)
		if err != nil {
			return nil, fmt.Errorf("ApplyPoints: %w", err) // unreachable after validation
		}
		_ = out.Set(0, j, tx)
		_ = out.Set(1, j, ty)
	}

	return out, nil
}

// Compose returns the left-to-right matrix product of the given 3×3
// transforms: Compose(a, b, c) = a × b × c, the transform that applies c
// first and a last. With no arguments it returns the identity.
//
// Errors: ErrNilMatrix, ErrNotAffine.
// Complexity: O(k) products of constant-size matrices.
func Compose(ts ...matrix.Matrix) (*matrix.Dense, error) {
	// Start from the neutral element.
	out := identity3()

	var err error
	var prod matrix.Matrix
	for i, t := range ts {
		// Each operand must be a 3×3 transform.
		if err = validateAffine(t); err != nil {
			return nil, fmt.Errorf("Compose: operand %d: %w", i, err)
		}
		// Fold in the next operand; Mul always allocates a fresh Dense.
		prod, err = matrix.Mul(out, t)
		if err != nil {
			return nil, fmt.Errorf("Compose: operand %d: %w", i, err) // unreachable after validation
		}
		out = prod.(*matrix.Dense)
	}

	return out, nil
}
