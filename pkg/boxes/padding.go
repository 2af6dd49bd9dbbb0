package boxes

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
)

// Padding shrinks the constraints offered to its single child by a fixed
// set of insets, then grows its own reported size back out by the same
// insets — the single-child layout passthrough of spec.md §8 scenario S1.
type Padding struct {
	Insets EdgeInsets
}

// NewPadding constructs the render element for a Padding around a single
// child, grounded on the teacher's (deleted) widgets/padding.go.
func NewPadding(insets EdgeInsets) *render.RenderElement {
	return render.BoxSingle(&padding{Insets: insets})
}

type padding struct {
	Insets EdgeInsets
}

func (p *padding) Layout(ctx *render.BoxLayoutContext[arity.SingleChild]) graphics.Size {
	horiz, vert := p.Insets.Horizontal(), p.Insets.Vertical()
	inner := protocol.BoxConstraints{
		MinWidth:  max0(ctx.Constraints.MinWidth - horiz),
		MaxWidth:  max0(ctx.Constraints.MaxWidth - horiz),
		MinHeight: max0(ctx.Constraints.MinHeight - vert),
		MaxHeight: max0(ctx.Constraints.MaxHeight - vert),
	}
	childID := ctx.Children().Single()
	childSize := ctx.Tree.LayoutBoxChild(childID, inner)
	ctx.Tree.SetParentData(childID, render.BoxParentData{Offset: graphics.Offset{X: p.Insets.Left, Y: p.Insets.Top}})
	return graphics.Size{Width: childSize.Width + horiz, Height: childSize.Height + vert}
}

func (p *padding) Paint(ctx *render.BoxPaintContext[arity.SingleChild]) render.Canvas {
	childID := ctx.Children().Single()
	childOffset := graphics.Offset{X: p.Insets.Left, Y: p.Insets.Top}
	return ctx.PaintChild(childID, ctx.Offset.Add(childOffset))
}

func (p *padding) HitTest(ctx *render.BoxHitTestContext[arity.SingleChild]) bool {
	childID := ctx.Children().Single()
	local := ctx.Position.Sub(graphics.Offset{X: p.Insets.Left, Y: p.Insets.Top})
	return ctx.HitTestChild(childID, local)
}

func (p *padding) DebugName() string        { return "Padding" }
func (p *padding) IsRelayoutBoundary() bool  { return false }
func (p *padding) IsRepaintBoundary() bool   { return false }

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
