// Package view computes what part of a document page is visible in a
// pan/zoom viewport and where it lands on screen.
//
// The view package provides:
//
//   - Transform: the viewport state (zoom scale, pan offset in document
//     coordinates, in-flight drag offset in screen coordinates) with Reset,
//     zoom-step, and drag helpers.
//   - FitScale / DocFactor: the document→view scaling factors, fit-to-view
//     times the user zoom.
//   - DocumentTransform: the clip rectangle of the page that is visible
//     (document coordinates) and its offset in scaled view coordinates.
//
// The coordinate conventions follow the rest of the module: y grows up,
// rects are normalized, and all computations are pure value math.
package view
