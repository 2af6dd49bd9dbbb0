package render_test

import (
	"testing"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
	"pgregory.net/rapid"
)

// fakeTree is a minimal ChildTree stub sufficient to exercise layout/paint
// dispatch in isolation from pkg/tree.
type fakeTree struct {
	boxSize graphics.Size
}

func (f *fakeTree) LayoutBoxChild(arity.ElementID, protocol.BoxConstraints) graphics.Size {
	return f.boxSize
}
func (f *fakeTree) LayoutSliverChild(arity.ElementID, protocol.SliverConstraints) protocol.SliverGeometry {
	return protocol.SliverGeometry{}
}
func (f *fakeTree) PaintBoxChild(arity.ElementID, graphics.Offset) render.Canvas    { return "child" }
func (f *fakeTree) PaintSliverChild(arity.ElementID, graphics.Offset) render.Canvas { return "child" }
func (f *fakeTree) HitTestBoxChild(arity.ElementID, graphics.Offset, *protocol.BoxHitTestResult) bool {
	return false
}
func (f *fakeTree) HitTestSliverChild(arity.ElementID, float64, float64) protocol.SliverHitTestResult {
	return protocol.SliverHitTestResult{}
}
func (f *fakeTree) ParentData(arity.ElementID) any        { return nil }
func (f *fakeTree) SetParentData(arity.ElementID, any) {}

// passthroughLeaf is a trivial BoxRender[LeafChildren] returning a fixed size.
type passthroughLeaf struct{ size graphics.Size }

func (p *passthroughLeaf) Layout(ctx *render.BoxLayoutContext[arity.LeafChildren]) graphics.Size {
	return ctx.Constraints.Constrain(p.size)
}
func (p *passthroughLeaf) Paint(ctx *render.BoxPaintContext[arity.LeafChildren]) render.Canvas {
	return "leaf"
}
func (p *passthroughLeaf) HitTest(ctx *render.BoxHitTestContext[arity.LeafChildren]) bool {
	ctx.Result.Add(0, ctx.Position)
	return true
}
func (p *passthroughLeaf) DebugName() string         { return "passthroughLeaf" }
func (p *passthroughLeaf) IsRelayoutBoundary() bool  { return false }
func (p *passthroughLeaf) IsRepaintBoundary() bool   { return false }

func TestBoxLeafLayoutDispatch(t *testing.T) {
	el := render.BoxLeaf(&passthroughLeaf{size: graphics.Size{Width: 100, Height: 100}})
	tree := &fakeTree{}
	got := el.LayoutBox(tree, protocol.Tight(graphics.Size{Width: 200, Height: 200}))
	if got.Width != 200 || got.Height != 200 {
		t.Fatalf("expected constrained 200x200, got %v", got)
	}
	if el.NeedsLayout() {
		t.Fatalf("expected needsLayout cleared after LayoutBox")
	}
}

func TestLayoutSliverOnBoxElementPanics(t *testing.T) {
	el := render.BoxLeaf(&passthroughLeaf{})
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on protocol mismatch")
		}
	}()
	el.LayoutSliver(&fakeTree{}, protocol.SliverConstraints{})
}

func TestPushChildOutsideTransactionViolatesLeafArity(t *testing.T) {
	el := render.BoxLeaf(&passthroughLeaf{})
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic: Leaf arity forbids any child")
		}
	}()
	el.PushChild(1)
}

// singleChildPassthrough exercises the Single arity for the transactional
// swap scenario (spec.md §8 S3).
type singleChildPassthrough struct{}

func (singleChildPassthrough) Layout(ctx *render.BoxLayoutContext[arity.SingleChild]) graphics.Size {
	return ctx.Tree.LayoutBoxChild(ctx.Children().Single(), ctx.Constraints)
}
func (singleChildPassthrough) Paint(ctx *render.BoxPaintContext[arity.SingleChild]) render.Canvas {
	return ctx.PaintChild(ctx.Children().Single(), graphics.Offset{})
}
func (singleChildPassthrough) HitTest(ctx *render.BoxHitTestContext[arity.SingleChild]) bool {
	return ctx.HitTestChild(ctx.Children().Single(), ctx.Position)
}
func (singleChildPassthrough) DebugName() string        { return "singleChildPassthrough" }
func (singleChildPassthrough) IsRelayoutBoundary() bool { return false }
func (singleChildPassthrough) IsRepaintBoundary() bool  { return false }

func TestTransactionalSwapS3(t *testing.T) {
	el := render.BoxSingle(singleChildPassthrough{})
	el.PushChild(arity.ElementID(1)) // construct with the initial child, non-transactional

	el.BeginChildrenUpdate()
	el.RemoveChild(arity.ElementID(1))
	if got := el.Children(); len(got) != 0 {
		t.Fatalf("mid-transaction expected 0 children, got %d", len(got))
	}
	el.PushChild(arity.ElementID(2))
	el.CommitChildrenUpdate()

	got := el.Children()
	if len(got) != 1 || got[0] != arity.ElementID(2) {
		t.Fatalf("expected exactly [2] after commit, got %v", got)
	}
	if !el.NeedsLayout() {
		t.Fatalf("expected needsLayout set after commit")
	}
}

func TestCommitWithWrongCountPoisonsElement(t *testing.T) {
	el := render.BoxSingle(singleChildPassthrough{})
	el.BeginChildrenUpdate()
	func() {
		defer func() { recover() }()
		el.CommitChildrenUpdate() // zero children violates Single
	}()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected poisoned element to panic on further mutation")
		}
	}()
	el.PushChild(arity.ElementID(3))
}

// TestConcurrentReadersSingleWriter is a rapid-driven property test
// standing in for a loom-style model checker (spec.md §5): interleave
// concurrent PaintBox/HitTestBox readers against a single LayoutBox
// writer and assert no reader ever observes a torn geometry value.
func TestConcurrentReadersSingleWriter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		el := render.BoxLeaf(&passthroughLeaf{size: graphics.Size{Width: 10, Height: 10}})
		tree := &fakeTree{}
		n := rapid.IntRange(1, 20).Draw(rt, "n")

		done := make(chan struct{})
		go func() {
			for i := 0; i < n; i++ {
				el.LayoutBox(tree, protocol.Tight(graphics.Size{Width: float64(i), Height: float64(i)}))
			}
			close(done)
		}()
		for i := 0; i < n; i++ {
			el.PaintBox(tree, graphics.Offset{})
			if size, ok := el.LastBoxGeometry(); ok && (size.Width != size.Height) {
				rt.Fatalf("torn geometry read: %v", size)
			}
		}
		<-done
	})
}
