// Package transform builds 2D affine transforms in homogeneous coordinates
// and parses whitespace-separated point strings into coordinate matrices.
//
// The transform package provides:
//
//   - ParsePoints, turning "x0 y0 x1 y1 ..." strings into 2×N matrices
//     (row 0 holds x values, row 1 holds y values).
//   - Builders for 3×3 homogeneous transforms: RotationDeg, Translation,
//     Scaling, UniformScaling.
//   - Apply / ApplyPoints for pushing points through a transform, and
//     Compose for chaining transforms by matrix product.
//
// Rotation is counter-clockwise for positive angles under the standard
// right-handed, y-up convention. All builders return fresh matrices with an
// exact [0, 0, 1] bottom row; NaN and ±Inf inputs propagate through entries
// per IEEE-754 rather than raising errors.
//
// See the examples in this package and view for usage patterns.
package transform
