// SPDX-License-Identifier: MIT
// Package view: viewport transform state and the document-transform
// computation.
//
// Coordinate spaces:
//   - document coordinates: the page's own units.
//   - unscaled view coordinates: view pixels before user zoom.
//   - scaled view coordinates: view pixels after user zoom.
//
// The scaling factor fBase maps document → unscaled view; fScaled maps
// document → scaled view (fBase times the user zoom).

package view

import (
	"math"

	"github.com/hirgon/planar/geom"
)

// Zoom policy.
const (
	// ZoomStep is the relative scale change of one zoom step.
	ZoomStep = 0.1

	// MinScale is the lower clamp for the user zoom; zooming out stops
	// here instead of collapsing the view to nothing.
	MinScale = 0.01
)

// Transform is the viewport state for panning and zooming over a page.
// The zero value is not ready to use; start from NewTransform (Scale = 1).
type Transform struct {
	// Scale is the user zoom factor, 1 meaning fit-to-view.
	Scale float64
	// Off is the pan offset in document coordinates.
	Off geom.Vec2
	// DragOff is the offset of an in-flight drag gesture in unscaled
	// screen coordinates; folded into Off when the drag ends.
	DragOff geom.Vec2
}

// DocTransform is the result of DocumentTransform: which part of the page
// is visible and where it starts on screen.
type DocTransform struct {
	// Clip is the visible part of the page, in document coordinates.
	Clip geom.Rect
	// Offset is the position of Clip's minimum corner, in scaled view
	// coordinates.
	Offset geom.Vec2
}

// NewTransform returns the neutral viewport: scale 1, no offsets.
// Complexity: O(1).
func NewTransform() Transform {
	return Transform{Scale: 1}
}

// Reset restores the neutral viewport in place.
// Complexity: O(1).
func (t *Transform) Reset() {
	*t = NewTransform()
}

// ZoomIn applies one zoom-in step (scale grows by ZoomStep).
// Complexity: O(1).
func (t *Transform) ZoomIn() {
	t.Scale *= 1 + ZoomStep
}

// ZoomOut applies one zoom-out step, clamped at MinScale.
// Complexity: O(1).
func (t *Transform) ZoomOut() {
	t.Scale = math.Max(t.Scale*(1-ZoomStep), MinScale)
}

// Scroll applies a scroll-wheel zoom: positive dy zooms out, negative dy
// zooms in, each unit worth one ZoomStep. Clamped at MinScale.
// Complexity: O(1).
func (t *Transform) Scroll(dy float64) {
	t.Scale = math.Max(t.Scale*(1-ZoomStep*dy), MinScale)
}

// Drag records the current offset of an in-flight drag gesture, measured in
// unscaled screen coordinates from the gesture start.
// Complexity: O(1).
func (t *Transform) Drag(delta geom.Vec2) {
	t.DragOff = delta
}

// EndDrag folds the in-flight drag offset into the document pan offset and
// clears it. docFactor is the document→view factor the drag happened under
// (see DocFactor); it converts screen pixels back to document units.
// Complexity: O(1).
func (t *Transform) EndDrag(docFactor float64) {
	t.Off = t.Off.Sub(t.DragOff.Div(docFactor))
	t.DragOff = geom.Vec2{}
}

// FitScale returns the document→view factor that fits page entirely inside
// viewDims: the smaller of the width and height ratios.
// Complexity: O(1).
func FitScale(viewDims geom.Dims, page geom.Rect) float64 {
	return math.Min(viewDims.W/page.W(), viewDims.H/page.H())
}

// DocFactor returns the effective document→view factor under the current
// user zoom: FitScale times Scale.
// Complexity: O(1).
func (t Transform) DocFactor(viewDims geom.Dims, page geom.Rect) float64 {
	return FitScale(viewDims, page) * t.Scale
}

// DocumentTransform computes the visible part of page and its on-screen
// position for the current viewport state.
//
// Implementation (all in document coordinates until the last step):
//   - Stage 1: size the view area: viewDims / fBase.
//   - Stage 2: find the page center under the pan and drag offsets.
//   - Stage 3: center the view area there and intersect with the page;
//     the intersection is the visible clip.
//   - Stage 4: the clip's offset inside the view area, times fScaled, is
//     the on-screen offset.
//
// Inputs:
//   - viewDims: view dimensions in unscaled view coordinates.
//   - page: page bounds in document coordinates.
//   - fBase: document → unscaled view factor (typically FitScale).
//   - fScaled: document → scaled view factor (typically DocFactor).
//
// Complexity: O(1).
func (t Transform) DocumentTransform(viewDims geom.Dims, page geom.Rect, fBase, fScaled float64) DocTransform {
	// View dimensions (document coordinates).
	areaDims := viewDims.Div(fBase)
	// Center of the view (starting at the origin, document coordinates).
	areaCenter := areaDims.Center()
	// Center of the page after applying the offsets (document coordinates).
	center := page.Center().Add(t.Off).Sub(t.DragOff.Div(fBase))
	// The vector from areaCenter to center (document coordinates).
	centerOff := center.Sub(areaCenter)
	// View area centered at the offset page center (document coordinates).
	viewArea := geom.RectFromDims(areaDims).Translate(centerOff)
	// The part of the page that is visible in the view (document coordinates).
	inter := viewArea.Intersect(page)
	// The offset of the visible area from the origin (scaled view coordinates).
	viewAreaOff := inter.Translate(centerOff.Neg()).Offset().Mul(fScaled)

	return DocTransform{Clip: inter, Offset: viewAreaOff}
}
