// Package transform_test contains unit tests for the affine transform
// builders: rotation, translation, and scaling.
package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirgon/planar/matrix"
	"github.com/hirgon/planar/transform"
)

// eps is the tolerance for trigonometric round-off in these tests.
const eps = 1e-12

// at reads an entry or aborts; keeps assertions on one line.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// TestRotationZeroIsIdentity verifies RotationDeg(0) is exactly I_3.
func TestRotationZeroIsIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3) // reference identity
	require.NoError(t, err)

	rot := transform.RotationDeg(0)        // zero-angle rotation
	require.True(t, matrix.Equal(id, rot)) // cos(0)=1, sin(0)=0 are exact
}

// TestRotationFullTurn verifies RotationDeg(360) equals RotationDeg(0)
// within floating-point tolerance.
func TestRotationFullTurn(t *testing.T) {
	full := transform.RotationDeg(360) // one full turn
	zero := transform.RotationDeg(0)   // no turn

	require.True(t, matrix.EqualApprox(zero, full, eps)) // equal up to round-off
}

// TestRotationLayout verifies the cos/-sin/sin/cos block and the exact
// identity remainder for a known angle.
func TestRotationLayout(t *testing.T) {
	rot := transform.RotationDeg(30) // arbitrary reference angle
	radPerDeg := math.Pi / 180       // runtime multiply, matching the builder
	theta := 30 * radPerDeg
	c, s := math.Cos(theta), math.Sin(theta)

	require.Equal(t, c, at(t, rot, 0, 0))  // top-left cos
	require.Equal(t, -s, at(t, rot, 0, 1)) // -sin above the diagonal
	require.Equal(t, s, at(t, rot, 1, 0))  // sin below the diagonal
	require.Equal(t, c, at(t, rot, 1, 1))  // cos on the diagonal

	// The remainder is exactly identity: zero offsets, [0,0,1] bottom row.
	require.Zero(t, at(t, rot, 0, 2))
	require.Zero(t, at(t, rot, 1, 2))
	require.Zero(t, at(t, rot, 2, 0))
	require.Zero(t, at(t, rot, 2, 1))
	require.Equal(t, 1.0, at(t, rot, 2, 2))
}

// TestRotationOrthonormal verifies the top-left 2×2 block has unit-norm,
// mutually perpendicular columns for a spread of angles.
func TestRotationOrthonormal(t *testing.T) {
	for _, deg := range []float64{-720, -90, -33.3, 0, 12.5, 45, 90, 180, 270, 359, 1080} {
		rot := transform.RotationDeg(deg) // build rotation for this angle

		c0 := []float64{at(t, rot, 0, 0), at(t, rot, 1, 0)} // first column
		c1 := []float64{at(t, rot, 0, 1), at(t, rot, 1, 1)} // second column

		norm0 := math.Hypot(c0[0], c0[1]) // first column length
		norm1 := math.Hypot(c1[0], c1[1]) // second column length
		dot := c0[0]*c1[0] + c0[1]*c1[1]  // inner product

		require.InDelta(t, 1.0, norm0, eps, "deg=%v", deg) // unit norm
		require.InDelta(t, 1.0, norm1, eps, "deg=%v", deg) // unit norm
		require.InDelta(t, 0.0, dot, eps, "deg=%v", deg)   // perpendicular
	}
}

// TestRotationDirection pins the counter-clockwise convention: a quarter
// turn sends the x unit vector to the y unit vector.
func TestRotationDirection(t *testing.T) {
	x, y, err := transform.Apply(transform.RotationDeg(90), 1, 0) // rotate (1,0)
	require.NoError(t, err)                                       // valid transform

	require.InDelta(t, 0.0, x, eps) // lands on the y axis
	require.InDelta(t, 1.0, y, eps) // pointing up: CCW, not CW
}

// TestRotationNonFinite verifies NaN angles produce NaN entries, not errors.
func TestRotationNonFinite(t *testing.T) {
	rot := transform.RotationDeg(math.NaN()) // NaN angle

	require.True(t, math.IsNaN(at(t, rot, 0, 0))) // NaN in the trig block
	require.Equal(t, 1.0, at(t, rot, 2, 2))       // identity remainder intact
}

// TestTranslationLayout verifies the exact entry layout of Translation.
func TestTranslationLayout(t *testing.T) {
	tr := transform.Translation(5, -3) // reference offsets from the contract

	want := [3][3]float64{{1, 0, 5}, {0, 1, -3}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, want[i][j], at(t, tr, i, j), "entry (%d,%d)", i, j)
		}
	}
}

// TestTranslationApply verifies translation adds offsets to a point.
func TestTranslationApply(t *testing.T) {
	x, y, err := transform.Apply(transform.Translation(2.5, -4), 10, 20)
	require.NoError(t, err)   // valid transform
	require.Equal(t, 12.5, x) // px + x offset
	require.Equal(t, 16.0, y) // py + y offset
}

// TestScalingApply verifies anisotropic and uniform scaling factors.
func TestScalingApply(t *testing.T) {
	x, y, err := transform.Apply(transform.Scaling(2, 3), 4, 5)
	require.NoError(t, err)   // valid transform
	require.Equal(t, 8.0, x)  // x doubled
	require.Equal(t, 15.0, y) // y tripled

	x, y, err = transform.Apply(transform.UniformScaling(0.5), 4, 5)
	require.NoError(t, err)  // valid transform
	require.Equal(t, 2.0, x) // both axes halved
	require.Equal(t, 2.5, y)
}

// TestBuildersAllocateFresh ensures repeated calls never share storage.
func TestBuildersAllocateFresh(t *testing.T) {
	a := transform.Translation(1, 1) // first instance
	b := transform.Translation(1, 1) // second instance

	require.NoError(t, a.Set(0, 0, 42))   // mutate the first
	require.Equal(t, 1.0, at(t, b, 0, 0)) // the second is untouched
	require.True(t, matrix.Equal(b, transform.Translation(1, 1)))
}
