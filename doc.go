// Package planar is a small toolkit for 2D coordinate math: dense float64
// matrices, homogeneous affine transforms (rotation, translation, scaling),
// point-string parsing, and viewport geometry for panning and zooming over
// a document page.
//
// 🚀 What is planar?
//
//	A pure, stateless library that brings together:
//		• Dense matrices: row-major float64 storage with bounds-checked access
//		• Affine builders: 3×3 rotation, translation and scaling transforms
//		• Point parsing: whitespace-separated coordinate strings → 2×N matrices
//		• Application: transforms applied to points and whole point sets
//		• View geometry: vectors, dims, rects, and a pan/zoom viewport transform
//
// ✨ Why choose planar?
//
//   - Predictable – every call allocates a fresh result, inputs are never mutated
//   - Rock-solid guarantees – sentinel errors, errors.Is discipline, no panics
//     on user input
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe for free – nothing is shared, nothing is mutated
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/    — Dense float64 matrices, constructors, and linear-algebra kernels
//	transform/ — affine transform builders, point parsing, composition, application
//	geom/      — Vec2, Dims, Rect value types with intersection and offsets
//	view/      — pan/zoom viewport transform over a document rectangle
//
// Quick sketch:
//
//	pts, _ := transform.ParsePoints("0 0  1 0  1 1")
//	rot := transform.RotationDeg(90)
//	out, _ := transform.ApplyPoints(rot, pts)
//
// rotates three points a quarter turn counter-clockwise about the origin.
//
//	go get github.com/hirgon/planar
package planar
