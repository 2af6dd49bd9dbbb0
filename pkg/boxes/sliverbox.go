package boxes

import (
	"math"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
)

// SliverToBoxAdapter places a single Box-protocol child inline in a
// scrolling viewport's list of slivers — the shape every "just put a
// widget in a scroll view" sliver bottoms out at. Its one child is laid
// out as an ordinary box; the adapter reports that box's main-axis extent
// back up as sliver geometry, clamped to whatever paint extent the
// viewport still has remaining.
type SliverToBoxAdapter struct{}

// NewSliverToBoxAdapter constructs the render element for a single Box
// child placed inline in a sliver list.
func NewSliverToBoxAdapter() *render.RenderElement {
	return render.SliverSingle(&sliverToBoxAdapter{})
}

type sliverToBoxAdapter struct {
	// axis is cached from the most recent Layout call so Paint/HitTest can
	// translate main/cross axis coordinates back into the child's local
	// x/y without the sliver protocol's paint/hit-test contexts having to
	// carry constraints of their own. Safe to cache unguarded: Layout holds
	// the render object's write lock, Paint/HitTest its read lock, so the
	// mutex already establishes happens-before between a write and any
	// later read.
	axis protocol.AxisDirection
}

func (s *sliverToBoxAdapter) isHorizontal() bool {
	return s.axis == protocol.AxisLeft || s.axis == protocol.AxisRight
}

func (s *sliverToBoxAdapter) mainExtent(size graphics.Size) float64 {
	if s.isHorizontal() {
		return size.Width
	}
	return size.Height
}

func (s *sliverToBoxAdapter) childConstraints(c protocol.SliverConstraints) protocol.BoxConstraints {
	if s.isHorizontal() {
		return protocol.BoxConstraints{MinHeight: c.CrossAxisExtent, MaxHeight: c.CrossAxisExtent, MaxWidth: math.Inf(1)}
	}
	return protocol.BoxConstraints{MinWidth: c.CrossAxisExtent, MaxWidth: c.CrossAxisExtent, MaxHeight: math.Inf(1)}
}

func (s *sliverToBoxAdapter) localOffset(main, cross float64) graphics.Offset {
	if s.isHorizontal() {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// Layout is spec.md §8's sliver zero-extent boundary case made concrete: a
// child with zero main-axis extent yields protocol.ZeroExtentGeometry
// exactly, rather than a geometry that merely happens to compute to zero.
func (s *sliverToBoxAdapter) Layout(ctx *render.SliverLayoutContext[arity.SingleChild]) protocol.SliverGeometry {
	s.axis = ctx.Constraints.AxisDirection
	childID := ctx.Children().Single()
	childSize := ctx.Tree.LayoutBoxChild(childID, s.childConstraints(ctx.Constraints))
	main := s.mainExtent(childSize)

	if main <= 0 {
		return protocol.ZeroExtentGeometry
	}

	paintExtent := clamp0(main-ctx.Constraints.ScrollOffset, ctx.Constraints.RemainingPaintExtent)
	return protocol.SliverGeometry{
		ScrollExtent:   main,
		PaintExtent:    paintExtent,
		LayoutExtent:   paintExtent,
		MaxPaintExtent: main,
		CacheExtent:    paintExtent,
		Visible:        paintExtent > 0,
	}
}

func (s *sliverToBoxAdapter) Paint(ctx *render.SliverPaintContext[arity.SingleChild]) render.Canvas {
	childID := ctx.Children().Single()
	return ctx.Tree.PaintBoxChild(childID, ctx.Offset)
}

func (s *sliverToBoxAdapter) HitTest(ctx *render.SliverHitTestContext[arity.SingleChild]) protocol.SliverHitTestResult {
	childID := ctx.Children().Single()
	local := s.localOffset(ctx.MainAxis, ctx.CrossAxis)
	var boxResult protocol.BoxHitTestResult
	hit := ctx.Tree.HitTestBoxChild(childID, local, &boxResult)
	return protocol.SliverHitTestResult{Hit: hit, MainAxisPosition: ctx.MainAxis, CrossAxisPosition: ctx.CrossAxis}
}

func (s *sliverToBoxAdapter) DebugName() string       { return "SliverToBoxAdapter" }
func (s *sliverToBoxAdapter) IsRelayoutBoundary() bool { return false }
func (s *sliverToBoxAdapter) IsRepaintBoundary() bool  { return false }

// clamp0 clamps v into [0, hi], treating a negative hi as 0.
func clamp0(v, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
