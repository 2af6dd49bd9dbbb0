package boxes

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
)

// Axis names the main axis a Flex lays its children out along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Flex distributes its children along Axis: children with a zero flex
// factor (the default, no FlexParentData attached) are laid out first at
// their own preferred size; the remaining main-axis extent is then
// divided among children with a positive flex factor in proportion to it
// — spec.md §8 scenario S2. Grounded on the teacher's (deleted)
// widgets/flex.go.
type Flex struct {
	Axis Axis
}

// NewFlex constructs the render element for a Flex along the given axis.
func NewFlex(axis Axis) *render.RenderElement {
	return render.BoxVariable(&flexObj{Axis: axis})
}

// SetExpanded attaches flex parent data to a child before the owning
// Flex's next layout, mirroring the role Flutter's Expanded widget plays
// at attach time — this module has no widget-composition layer (out of
// scope per spec.md §1), so callers invoke this directly instead of
// wrapping the child in an Expanded widget.
func SetExpanded(tree render.ChildTree, childID arity.ElementID, flex int) {
	tree.SetParentData(childID, render.FlexParentData{Flex: flex, Fit: render.FlexFitTight})
}

type flexObj struct {
	Axis Axis
}

func (f *flexObj) mainOf(s graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (f *flexObj) crossOf(s graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func (f *flexObj) sizeOf(main, cross float64) graphics.Size {
	if f.Axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *flexObj) constraintsFor(mainMin, mainMax, cross float64) protocol.BoxConstraints {
	if f.Axis == AxisHorizontal {
		return protocol.BoxConstraints{MinWidth: mainMin, MaxWidth: mainMax, MinHeight: cross, MaxHeight: cross}
	}
	return protocol.BoxConstraints{MinWidth: cross, MaxWidth: cross, MinHeight: mainMin, MaxHeight: mainMax}
}

func (f *flexObj) offsetFor(main float64) graphics.Offset {
	if f.Axis == AxisHorizontal {
		return graphics.Offset{X: main}
	}
	return graphics.Offset{Y: main}
}

func (f *flexObj) Layout(ctx *render.BoxLayoutContext[arity.SliceChildren]) graphics.Size {
	children := ctx.Children().All()
	var mainMax, cross float64
	if f.Axis == AxisHorizontal {
		mainMax, cross = ctx.Constraints.MaxWidth, ctx.Constraints.MaxHeight
	} else {
		mainMax, cross = ctx.Constraints.MaxHeight, ctx.Constraints.MaxWidth
	}

	flexes := make([]int, len(children))
	sizes := make([]graphics.Size, len(children))
	totalFlex := 0
	fixedMain := 0.0

	for i, id := range children {
		if pd, ok := ctx.Tree.ParentData(id).(render.FlexParentData); ok && pd.Flex > 0 {
			flexes[i] = pd.Flex
			totalFlex += pd.Flex
			continue
		}
		sz := ctx.Tree.LayoutBoxChild(id, f.constraintsFor(0, mainMax, cross))
		sizes[i] = sz
		fixedMain += f.mainOf(sz)
	}

	remaining := mainMax - fixedMain
	if remaining < 0 {
		remaining = 0
	}
	if totalFlex > 0 {
		for i, id := range children {
			if flexes[i] == 0 {
				continue
			}
			share := remaining * float64(flexes[i]) / float64(totalFlex)
			sizes[i] = ctx.Tree.LayoutBoxChild(id, f.constraintsFor(share, share, cross))
		}
	}

	main := 0.0
	for i, id := range children {
		ctx.Tree.SetParentData(id, render.FlexParentData{Offset: f.offsetFor(main), Flex: flexes[i]})
		main += f.mainOf(sizes[i])
	}

	return f.sizeOf(mainMax, cross)
}

func (f *flexObj) Paint(ctx *render.BoxPaintContext[arity.SliceChildren]) render.Canvas {
	children := ctx.Children().All()
	fragments := make([]render.Canvas, 0, len(children))
	for _, id := range children {
		pd, _ := ctx.Tree.ParentData(id).(render.FlexParentData)
		fragments = append(fragments, ctx.PaintChild(id, ctx.Offset.Add(pd.Offset)))
	}
	return fragments
}

func (f *flexObj) HitTest(ctx *render.BoxHitTestContext[arity.SliceChildren]) bool {
	children := ctx.Children().All()
	for i := len(children) - 1; i >= 0; i-- {
		id := children[i]
		pd, _ := ctx.Tree.ParentData(id).(render.FlexParentData)
		local := ctx.Position.Sub(pd.Offset)
		if ctx.HitTestChild(id, local) {
			return true
		}
	}
	return false
}

func (f *flexObj) DebugName() string        { return "Flex" }
func (f *flexObj) IsRelayoutBoundary() bool  { return false }
func (f *flexObj) IsRepaintBoundary() bool   { return false }
