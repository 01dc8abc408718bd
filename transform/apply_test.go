// Package transform_test contains unit tests for Apply, ApplyPoints,
// and Compose.
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirgon/planar/matrix"
	"github.com/hirgon/planar/transform"
)

// TestApplyRejectsNonAffine ensures Apply validates the transform shape.
func TestApplyRejectsNonAffine(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // wrong shape for a transform
	require.NoError(t, err)

	_, _, err = transform.Apply(m, 1, 2)            // not 3×3
	require.ErrorIs(t, err, transform.ErrNotAffine) // sentinel matches

	_, _, err = transform.Apply(nil, 1, 2)       // nil transform
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // nil sentinel from matrix
}

// TestApplyPoints verifies a whole coordinate matrix through a translation.
func TestApplyPoints(t *testing.T) {
	pts := mustParse(t, "0 0  1 0  1 1") // three corners of a unit square

	out, err := transform.ApplyPoints(transform.Translation(10, 20), pts)
	require.NoError(t, err)         // valid shapes
	require.Equal(t, 2, out.Rows()) // shape preserved
	require.Equal(t, 3, out.Cols()) // column count preserved
	require.True(t, matrix.Equal(mustParse(t, "10 20  11 20  11 21"), out))

	// The input matrix is never mutated.
	require.True(t, matrix.Equal(mustParse(t, "0 0  1 0  1 1"), pts))
}

// TestApplyPointsEmpty verifies a 2×0 matrix passes through untouched.
func TestApplyPointsEmpty(t *testing.T) {
	pts := mustParse(t, "") // empty coordinate matrix

	out, err := transform.ApplyPoints(transform.RotationDeg(45), pts)
	require.NoError(t, err)         // empty is not an error
	require.Equal(t, 2, out.Rows()) // still two rows
	require.Equal(t, 0, out.Cols()) // still no columns
}

// TestApplyPointsRejectsBadShape ensures the 2×N contract is enforced.
func TestApplyPointsRejectsBadShape(t *testing.T) {
	bad, err := matrix.NewDense(3, 4) // not a coordinate matrix
	require.NoError(t, err)

	_, err = transform.ApplyPoints(transform.Translation(1, 1), bad)
	require.ErrorIs(t, err, transform.ErrBadPoints) // sentinel matches
}

// TestComposeEmptyIsIdentity verifies the neutral element of Compose.
func TestComposeEmptyIsIdentity(t *testing.T) {
	out, err := transform.Compose() // no operands
	require.NoError(t, err)         // always succeeds

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(id, out)) // identity exactly
}

// TestComposeOrder pins the application order: the rightmost operand is
// applied first. Rotate (1,0) a quarter turn, then translate by (1,0).
func TestComposeOrder(t *testing.T) {
	chain, err := transform.Compose(transform.Translation(1, 0), transform.RotationDeg(90))
	require.NoError(t, err) // both operands are 3×3

	x, y, err := transform.Apply(chain, 1, 0) // push the x unit vector through
	require.NoError(t, err)                   // valid transform
	require.InDelta(t, 1.0, x, eps)           // rotated to (0,1), then shifted to (1,1)
	require.InDelta(t, 1.0, y, eps)

	// The opposite order translates first and lands elsewhere.
	other, err := transform.Compose(transform.RotationDeg(90), transform.Translation(1, 0))
	require.NoError(t, err)
	x, y, err = transform.Apply(other, 1, 0) // (1,0) → (2,0) → (0,2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, x, eps)
	require.InDelta(t, 2.0, y, eps)
}

// TestComposeRoundTrip verifies a rotation composed with its negation is
// the identity within tolerance.
func TestComposeRoundTrip(t *testing.T) {
	chain, err := transform.Compose(transform.RotationDeg(37), transform.RotationDeg(-37))
	require.NoError(t, err) // both operands are 3×3

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(id, chain, eps)) // cancels to identity
}

// TestComposeRejectsNonAffine ensures each operand is shape-checked.
func TestComposeRejectsNonAffine(t *testing.T) {
	bad, err := matrix.NewDense(2, 3) // wrong shape
	require.NoError(t, err)

	_, err = transform.Compose(transform.Translation(1, 1), bad)
	require.ErrorIs(t, err, transform.ErrNotAffine) // sentinel matches
	require.ErrorContains(t, err, "operand 1")      // offending position named
}
