package boxes

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/render"
)

// SizedBox forces its reported size to a fixed Width/Height, ignoring
// whatever constraints it is offered beyond clamping into them — grounded
// on the teacher's (deleted) widgets/sizedbox.go. It is a Leaf: the fixed
// size is a terminal layout fact, not something derived from a child.
type SizedBox struct {
	Width, Height float64
}

// NewSizedBox constructs the render element for a fixed-size leaf.
func NewSizedBox(width, height float64) *render.RenderElement {
	return render.BoxLeaf(&sizedBox{Width: width, Height: height})
}

type sizedBox struct {
	Width, Height float64
}

func (s *sizedBox) Layout(ctx *render.BoxLayoutContext[arity.LeafChildren]) graphics.Size {
	return ctx.Constraints.Constrain(graphics.Size{Width: s.Width, Height: s.Height})
}

func (s *sizedBox) Paint(ctx *render.BoxPaintContext[arity.LeafChildren]) render.Canvas {
	return nil
}

func (s *sizedBox) HitTest(ctx *render.BoxHitTestContext[arity.LeafChildren]) bool {
	ctx.Result.Add(0, ctx.Position)
	return true
}

func (s *sizedBox) DebugName() string        { return "SizedBox" }
func (s *sizedBox) IsRelayoutBoundary() bool  { return false }
func (s *sizedBox) IsRepaintBoundary() bool   { return false }
