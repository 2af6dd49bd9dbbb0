package render

import (
	"fmt"

	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
)

// LayoutBox runs Box-protocol layout dispatch per spec.md §4.2: acquire
// the render-object write lock, invoke the protocol-specific layout with a
// freshly constructed context, then acquire the render-state write lock
// and store the returned geometry together with the input constraints,
// clearing needs-layout. Calling this on a Sliver element is a protocol
// mismatch and panics.
func (e *RenderElement) LayoutBox(tree ChildTree, constraints protocol.BoxConstraints) graphics.Size {
	e.objMu.Lock()
	if e.boxObj == nil {
		e.objMu.Unlock()
		panic(fmt.Sprintf("render: %s.LayoutBox called on a %s-protocol element", e.name, e.protocolID))
	}
	size := e.boxObj.layout(tree, e.children, constraints)
	e.objMu.Unlock()

	e.stateMu.Lock()
	e.boxConstraints = constraints
	e.boxGeometry = size
	e.hasLaidOut = true
	e.stateMu.Unlock()
	e.needsLayout.Store(false)
	return size
}

// LayoutSliver is LayoutBox's Sliver-protocol analogue.
func (e *RenderElement) LayoutSliver(tree ChildTree, constraints protocol.SliverConstraints) protocol.SliverGeometry {
	e.objMu.Lock()
	if e.sliverObj == nil {
		e.objMu.Unlock()
		panic(fmt.Sprintf("render: %s.LayoutSliver called on a %s-protocol element", e.name, e.protocolID))
	}
	geom := e.sliverObj.layout(tree, e.children, constraints)
	e.objMu.Unlock()

	e.stateMu.Lock()
	e.sliverConstraint = constraints
	e.sliverGeometry = geom
	e.hasLaidOut = true
	e.stateMu.Unlock()
	e.needsLayout.Store(false)
	return geom
}

// PaintBox runs Box-protocol paint dispatch: acquires the render-object
// read lock (paint never mutates the render object) and invokes paint
// with a context yielding typed children and a child-paint helper.
// needs-paint is cleared on return.
func (e *RenderElement) PaintBox(tree ChildTree, offset graphics.Offset) Canvas {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.boxObj == nil {
		panic(fmt.Sprintf("render: %s.PaintBox called on a %s-protocol element", e.name, e.protocolID))
	}
	canvas := e.boxObj.paint(tree, e.children, offset)
	e.needsPaint.Store(false)
	return canvas
}

// PaintSliver is PaintBox's Sliver-protocol analogue.
func (e *RenderElement) PaintSliver(tree ChildTree, offset graphics.Offset) Canvas {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.sliverObj == nil {
		panic(fmt.Sprintf("render: %s.PaintSliver called on a %s-protocol element", e.name, e.protocolID))
	}
	canvas := e.sliverObj.paint(tree, e.children, offset)
	e.needsPaint.Store(false)
	return canvas
}

// HitTestBox runs a Box-protocol hit test under read lock; it never
// mutates render state.
func (e *RenderElement) HitTestBox(tree ChildTree, position graphics.Offset, result *protocol.BoxHitTestResult) bool {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.boxObj == nil {
		panic(fmt.Sprintf("render: %s.HitTestBox called on a %s-protocol element", e.name, e.protocolID))
	}
	return e.boxObj.hitTest(tree, e.children, position, result)
}

// HitTestSliver is HitTestBox's Sliver-protocol analogue.
func (e *RenderElement) HitTestSliver(tree ChildTree, mainAxis, crossAxis float64) protocol.SliverHitTestResult {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.sliverObj == nil {
		panic(fmt.Sprintf("render: %s.HitTestSliver called on a %s-protocol element", e.name, e.protocolID))
	}
	return e.sliverObj.hitTest(tree, e.children, mainAxis, crossAxis)
}

// LastBoxGeometry returns the size computed by the most recent LayoutBox
// call, and whether layout has run at least once.
func (e *RenderElement) LastBoxGeometry() (graphics.Size, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.boxGeometry, e.hasLaidOut
}

// LastSliverGeometry returns the geometry computed by the most recent
// LayoutSliver call, and whether layout has run at least once.
func (e *RenderElement) LastSliverGeometry() (protocol.SliverGeometry, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.sliverGeometry, e.hasLaidOut
}

// LastBoxConstraints returns the constraints passed to the most recent
// LayoutBox call. pkg/pipeline re-lays-out a dirty boundary with these
// rather than the root's, so a dirty leaf never forces a full-tree
// relayout.
func (e *RenderElement) LastBoxConstraints() (protocol.BoxConstraints, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.boxConstraints, e.hasLaidOut
}

// LastSliverConstraints is LastBoxConstraints's Sliver-protocol analogue.
func (e *RenderElement) LastSliverConstraints() (protocol.SliverConstraints, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.sliverConstraint, e.hasLaidOut
}
