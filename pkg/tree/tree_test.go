package tree_test

import (
	"testing"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
	"github.com/flui-ui/flui/pkg/tree"
)

// leafBox is a fixed-size Box leaf render object, local to this test file.
type leafBox struct{ size graphics.Size }

func (l *leafBox) Layout(ctx *render.BoxLayoutContext[arity.LeafChildren]) graphics.Size {
	return ctx.Constraints.Constrain(l.size)
}
func (l *leafBox) Paint(ctx *render.BoxPaintContext[arity.LeafChildren]) render.Canvas { return nil }
func (l *leafBox) HitTest(ctx *render.BoxHitTestContext[arity.LeafChildren]) bool      { return true }
func (l *leafBox) DebugName() string                                                  { return "leafBox" }
func (l *leafBox) IsRelayoutBoundary() bool                                           { return false }
func (l *leafBox) IsRepaintBoundary() bool                                            { return false }

// boundaryBox passes layout/paint through to its one child, with
// configurable relayout/repaint boundary-ness for testing the dirty walk.
type boundaryBox struct{ relayout, repaint bool }

func (b boundaryBox) Layout(ctx *render.BoxLayoutContext[arity.SingleChild]) graphics.Size {
	return ctx.Tree.LayoutBoxChild(ctx.Children().Single(), ctx.Constraints)
}
func (b boundaryBox) Paint(ctx *render.BoxPaintContext[arity.SingleChild]) render.Canvas {
	return ctx.PaintChild(ctx.Children().Single(), ctx.Offset)
}
func (b boundaryBox) HitTest(ctx *render.BoxHitTestContext[arity.SingleChild]) bool {
	return ctx.HitTestChild(ctx.Children().Single(), ctx.Position)
}
func (b boundaryBox) DebugName() string        { return "boundaryBox" }
func (b boundaryBox) IsRelayoutBoundary() bool { return b.relayout }
func (b boundaryBox) IsRepaintBoundary() bool  { return b.repaint }

type leafWidget struct {
	size graphics.Size
	key  any
}

func (w *leafWidget) Key() any { return w.key }
func (w *leafWidget) NewRenderElement() *render.RenderElement {
	return render.BoxLeaf(&leafBox{size: w.size})
}
func (w *leafWidget) ChildWidgets() []tree.Widget { return nil }

type singleWidget struct {
	child             tree.Widget
	relayout, repaint bool
	key               any
}

func (w *singleWidget) Key() any { return w.key }
func (w *singleWidget) NewRenderElement() *render.RenderElement {
	return render.BoxSingle(boundaryBox{relayout: w.relayout, repaint: w.repaint})
}
func (w *singleWidget) ChildWidgets() []tree.Widget { return []tree.Widget{w.child} }

func TestMountAndLayoutThroughTree(t *testing.T) {
	tr := tree.New()
	root := &singleWidget{child: &leafWidget{size: graphics.Size{Width: 100, Height: 100}}}
	rootID := tr.MountRoot(root)

	got := tr.RenderOf(rootID).LayoutBox(tr, protocol.Tight(graphics.Size{Width: 200, Height: 200}))
	if got.Width != 200 || got.Height != 200 {
		t.Fatalf("expected 200x200, got %v", got)
	}
}

func TestRequestLayoutStopsAtRelayoutBoundary(t *testing.T) {
	tr := tree.New()
	leaf := &leafWidget{size: graphics.Size{Width: 10, Height: 10}}
	mid := &singleWidget{child: leaf, relayout: true}
	root := &singleWidget{child: mid}
	rootID := tr.MountRoot(root)

	midID := tr.RenderOf(rootID).Children()[0]
	leafID := tr.RenderOf(midID).Children()[0]

	tr.RenderOf(rootID).LayoutBox(tr, protocol.Tight(graphics.Size{Width: 50, Height: 50}))

	tr.RequestLayout(leafID)
	dirty := tr.DrainDirtyLayout()
	if len(dirty) != 1 || dirty[0] != midID {
		t.Fatalf("expected dirty-layout set to contain only the boundary %d, got %v", midID, dirty)
	}
	if !tr.RenderOf(leafID).NeedsLayout() {
		t.Fatalf("expected leaf's needsLayout flag set")
	}
	if !tr.RenderOf(midID).NeedsLayout() {
		t.Fatalf("expected boundary's needsLayout flag set")
	}
	if tr.RenderOf(rootID).NeedsLayout() {
		t.Fatalf("expected root's needsLayout flag NOT set — boundary should absorb the walk")
	}
}

func TestTransactionalSwapViaTree(t *testing.T) {
	tr := tree.New()
	oldChild := &leafWidget{size: graphics.Size{Width: 1, Height: 1}}
	root := &singleWidget{child: oldChild}
	rootID := tr.MountRoot(root)
	oldChildID := tr.RenderOf(rootID).Children()[0]

	newChildID := tr.Mount(rootID, &leafWidget{size: graphics.Size{Width: 2, Height: 2}})

	tr.BeginChildrenUpdate(rootID)
	tr.RemoveChild(rootID, oldChildID)
	if got := tr.RenderOf(rootID).Children(); len(got) != 0 {
		t.Fatalf("mid-transaction expected 0 children, got %d", len(got))
	}
	tr.PushChild(rootID, newChildID)
	tr.CommitChildrenUpdate(rootID)

	got := tr.RenderOf(rootID).Children()
	if len(got) != 1 || got[0] != newChildID {
		t.Fatalf("expected exactly [%d] after commit, got %v", newChildID, got)
	}
	dirty := tr.DrainDirtyLayout()
	if len(dirty) != 1 || dirty[0] != rootID {
		t.Fatalf("expected commit to schedule root's layout, got %v", dirty)
	}
}

// textComponent is a minimal ComponentWidget standing in for S4's "reads a
// signal, produces a Text child" shape without pkg/signal (signal_test.go
// covers the signal-driven version): it just reads a plain field, letting this test exercise Mount→Update
// reconciliation of a Component element in isolation.
type textComponent struct {
	value string
	key   any
}

func (w *textComponent) Key() any { return w.key }
func (w *textComponent) Build(ctx *tree.BuildContext) tree.Widget {
	return &leafWidget{size: graphics.Size{Width: float64(len(w.value)) * 10, Height: 20}}
}

func TestComponentRebuildOnUpdate(t *testing.T) {
	tr := tree.New()
	rootID := tr.MountRoot(&textComponent{value: "hi"})

	// A Component element owns no render object itself; LayoutBoxChild
	// resolves through to its built child's render element.
	got := tr.LayoutBoxChild(rootID, protocol.Tight(graphics.Size{Width: 40, Height: 20}))
	if got.Width != 40 || got.Height != 20 {
		t.Fatalf("expected layout to resolve through the component to its built leaf, got %v", got)
	}

	tr.ScheduleBuild(rootID)
	tr.FlushBuild()

	got = tr.LayoutBoxChild(rootID, protocol.Tight(graphics.Size{Width: 40, Height: 20}))
	if got.Width != 40 || got.Height != 20 {
		t.Fatalf("expected built child still reachable after a no-op rebuild, got %v", got)
	}
}
