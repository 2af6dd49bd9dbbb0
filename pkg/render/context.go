// Package render implements the render-object core: the per-node state
// (geometry, flags, parent data, children) behind a fixed render-object →
// render-state lock pair, and the layout/paint/hit-test dispatch that
// walks a render element through its protocol-specific behavior.
//
// Two public, arity-parameterized traits exist per protocol family —
// BoxRender[C]/SliverRender[C] — rather than one trait parameterized over
// both protocol and arity, because each protocol's layout/paint/hit-test
// signatures differ in shape (constraints, geometry, hit-test result) and
// forcing them through one interface would erase that. C is the concrete
// typed child accessor (arity.LeafChildren, arity.SingleChild, ...), not
// the arity marker type itself — Go has no type-level function from one to
// the other, so render elements are constructed with both named explicitly
// (see BoxLeaf, BoxSingle, ... below); the internal boxObject/sliverObject
// interfaces unify them for RenderElement's uniform storage.
package render

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
)

// Canvas is an opaque, immutable display-list fragment produced by paint.
// The core does not implement a canvas; it is an external collaborator
// (see SPEC_FULL.md §6) whose drawing operations live outside this module.
type Canvas any

// ChildTree is the subset of ElementTree (pkg/tree) that render contexts
// need to recurse into children during layout, paint, and hit-test. It is
// declared here, not in pkg/tree, so that pkg/render has no dependency on
// pkg/tree — pkg/tree depends on pkg/render, not the reverse.
type ChildTree interface {
	LayoutBoxChild(id arity.ElementID, c protocol.BoxConstraints) graphics.Size
	LayoutSliverChild(id arity.ElementID, c protocol.SliverConstraints) protocol.SliverGeometry
	PaintBoxChild(id arity.ElementID, offset graphics.Offset) Canvas
	PaintSliverChild(id arity.ElementID, offset graphics.Offset) Canvas
	HitTestBoxChild(id arity.ElementID, position graphics.Offset, result *protocol.BoxHitTestResult) bool
	HitTestSliverChild(id arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult
	ParentData(id arity.ElementID) any
	SetParentData(id arity.ElementID, data any)
}

// BoxLayoutContext is handed to a BoxRender[C]'s Layout method.
type BoxLayoutContext[C any] struct {
	Tree        ChildTree
	Constraints protocol.BoxConstraints
	children    C
}

// Children returns the typed child accessor for this render object's arity.
func (c *BoxLayoutContext[C]) Children() C { return c.children }

// BoxPaintContext is handed to a BoxRender[C]'s Paint method.
type BoxPaintContext[C any] struct {
	Tree     ChildTree
	Offset   graphics.Offset
	children C
}

func (c *BoxPaintContext[C]) Children() C { return c.children }

// PaintChild paints a child box at offset (relative to this node's origin)
// and returns its canvas fragment.
func (c *BoxPaintContext[C]) PaintChild(id arity.ElementID, offset graphics.Offset) Canvas {
	return c.Tree.PaintBoxChild(id, offset)
}

// BoxHitTestContext is handed to a BoxRender[C]'s HitTest method.
type BoxHitTestContext[C any] struct {
	Tree     ChildTree
	Position graphics.Offset
	Result   *protocol.BoxHitTestResult
	children C
}

func (c *BoxHitTestContext[C]) Children() C { return c.children }

// HitTestChild recurses the hit-test into a child's local coordinate
// space, appending to the shared Result on a hit.
func (c *BoxHitTestContext[C]) HitTestChild(id arity.ElementID, position graphics.Offset) bool {
	return c.Tree.HitTestBoxChild(id, position, c.Result)
}

// BoxRender is implemented by every Box-protocol render object with child
// accessor type C.
type BoxRender[C any] interface {
	Layout(ctx *BoxLayoutContext[C]) graphics.Size
	Paint(ctx *BoxPaintContext[C]) Canvas
	HitTest(ctx *BoxHitTestContext[C]) bool
	DebugName() string
	IsRelayoutBoundary() bool
	IsRepaintBoundary() bool
}

// SliverLayoutContext is handed to a SliverRender[C]'s Layout method.
type SliverLayoutContext[C any] struct {
	Tree        ChildTree
	Constraints protocol.SliverConstraints
	children    C
}

func (c *SliverLayoutContext[C]) Children() C { return c.children }

// SliverPaintContext is handed to a SliverRender[C]'s Paint method.
type SliverPaintContext[C any] struct {
	Tree     ChildTree
	Offset   graphics.Offset
	children C
}

func (c *SliverPaintContext[C]) Children() C { return c.children }

func (c *SliverPaintContext[C]) PaintChild(id arity.ElementID, offset graphics.Offset) Canvas {
	return c.Tree.PaintSliverChild(id, offset)
}

// SliverHitTestContext is handed to a SliverRender[C]'s HitTest method.
type SliverHitTestContext[C any] struct {
	Tree          ChildTree
	MainAxis      float64
	CrossAxis     float64
	children      C
}

func (c *SliverHitTestContext[C]) Children() C { return c.children }

func (c *SliverHitTestContext[C]) HitTestChild(id arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult {
	return c.Tree.HitTestSliverChild(id, mainAxis, crossAxis)
}

// SliverRender is implemented by every Sliver-protocol render object with
// child accessor type C.
type SliverRender[C any] interface {
	Layout(ctx *SliverLayoutContext[C]) protocol.SliverGeometry
	Paint(ctx *SliverPaintContext[C]) Canvas
	HitTest(ctx *SliverHitTestContext[C]) protocol.SliverHitTestResult
	DebugName() string
	IsRelayoutBoundary() bool
	IsRepaintBoundary() bool
}
