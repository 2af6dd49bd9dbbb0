package render

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
)

// boxObject and sliverObject are the internal, non-generic interfaces that
// unify every BoxRender[C]/SliverRender[C] instantiation so a RenderElement
// can hold one without itself being generic. This is the "internal
// RenderObject[P,A] trait" of spec.md §4.1, split by protocol because Go
// has no sum-of-two-type-parameters trait unification that would let one
// interface serve both shapes without losing the protocol-specific
// constraint/geometry types.
type boxObject interface {
	debugName() string
	isRelayoutBoundary() bool
	isRepaintBoundary() bool
	layout(tree ChildTree, ids []arity.ElementID, c protocol.BoxConstraints) graphics.Size
	paint(tree ChildTree, ids []arity.ElementID, offset graphics.Offset) Canvas
	hitTest(tree ChildTree, ids []arity.ElementID, position graphics.Offset, result *protocol.BoxHitTestResult) bool
}

type sliverObject interface {
	debugName() string
	isRelayoutBoundary() bool
	isRepaintBoundary() bool
	layout(tree ChildTree, ids []arity.ElementID, c protocol.SliverConstraints) protocol.SliverGeometry
	paint(tree ChildTree, ids []arity.ElementID, offset graphics.Offset) Canvas
	hitTest(tree ChildTree, ids []arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult
}

// boxAdapter wraps a concrete BoxRender[C] together with the arity marker
// A whose Descriptor governs it, building the typed accessor C from the
// element's raw id slice on every dispatch via arity.FromSlice[A].
type boxAdapter[A arity.Arity, C any] struct {
	impl BoxRender[C]
}

func (a *boxAdapter[A, C]) debugName() string        { return a.impl.DebugName() }
func (a *boxAdapter[A, C]) isRelayoutBoundary() bool  { return a.impl.IsRelayoutBoundary() }
func (a *boxAdapter[A, C]) isRepaintBoundary() bool   { return a.impl.IsRepaintBoundary() }

func (a *boxAdapter[A, C]) children(ids []arity.ElementID) C {
	return arity.FromSlice[A](ids, a.impl.DebugName()).(C)
}

func (a *boxAdapter[A, C]) layout(tree ChildTree, ids []arity.ElementID, c protocol.BoxConstraints) graphics.Size {
	ctx := &BoxLayoutContext[C]{Tree: tree, Constraints: c, children: a.children(ids)}
	return a.impl.Layout(ctx)
}

func (a *boxAdapter[A, C]) paint(tree ChildTree, ids []arity.ElementID, offset graphics.Offset) Canvas {
	ctx := &BoxPaintContext[C]{Tree: tree, Offset: offset, children: a.children(ids)}
	return a.impl.Paint(ctx)
}

func (a *boxAdapter[A, C]) hitTest(tree ChildTree, ids []arity.ElementID, position graphics.Offset, result *protocol.BoxHitTestResult) bool {
	ctx := &BoxHitTestContext[C]{Tree: tree, Position: position, Result: result, children: a.children(ids)}
	return a.impl.HitTest(ctx)
}

// sliverAdapter is the Sliver-protocol analogue of boxAdapter.
type sliverAdapter[A arity.Arity, C any] struct {
	impl SliverRender[C]
}

func (a *sliverAdapter[A, C]) debugName() string       { return a.impl.DebugName() }
func (a *sliverAdapter[A, C]) isRelayoutBoundary() bool { return a.impl.IsRelayoutBoundary() }
func (a *sliverAdapter[A, C]) isRepaintBoundary() bool  { return a.impl.IsRepaintBoundary() }

func (a *sliverAdapter[A, C]) children(ids []arity.ElementID) C {
	return arity.FromSlice[A](ids, a.impl.DebugName()).(C)
}

func (a *sliverAdapter[A, C]) layout(tree ChildTree, ids []arity.ElementID, c protocol.SliverConstraints) protocol.SliverGeometry {
	ctx := &SliverLayoutContext[C]{Tree: tree, Constraints: c, children: a.children(ids)}
	return a.impl.Layout(ctx)
}

func (a *sliverAdapter[A, C]) paint(tree ChildTree, ids []arity.ElementID, offset graphics.Offset) Canvas {
	ctx := &SliverPaintContext[C]{Tree: tree, Offset: offset, children: a.children(ids)}
	return a.impl.Paint(ctx)
}

func (a *sliverAdapter[A, C]) hitTest(tree ChildTree, ids []arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult {
	ctx := &SliverHitTestContext[C]{Tree: tree, MainAxis: mainAxis, CrossAxis: crossAxis, children: a.children(ids)}
	return a.impl.HitTest(ctx)
}
