// Package matrix provides dense float64 matrices and the small set of
// linear-algebra kernels the rest of the module builds on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     deep Clone, stored in a single flat slice.
//   - Constructors with intention-revealing names (NewZeros, NewIdentity).
//   - Fresh-allocating kernels: Add, Sub, Mul, MatVec, Transpose, ScaleBy.
//   - Equality helpers (Equal, EqualApprox) for exact and tolerance-based
//     comparison.
//
// All operations validate fail-fast and return package sentinels matched via
// errors.Is; operands are never mutated and results never alias inputs.
//
// See the examples in this package and transform for usage patterns.
package matrix
