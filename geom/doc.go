// Package geom provides small 2D value types used by the view package:
// vectors, dimensions, and axis-aligned rectangles.
//
// The geom package provides:
//
//   - Vec2: a 2D vector with component-wise arithmetic and scalar ops.
//   - Dims: a width/height pair with scaling and a Center helper.
//   - Rect: an axis-aligned rectangle normalized at construction, with
//     offset, center, translation, scaling, and clamped intersection.
//
// All types are plain values: every method returns a new value, nothing is
// mutated, and zero values are meaningful (zero vector, empty dims, empty
// rect at the origin).
package geom
