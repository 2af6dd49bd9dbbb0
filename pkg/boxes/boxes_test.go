package boxes_test

import (
	"testing"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/boxes"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
)

// miniTree is a package-local ChildTree good enough to drive a handful of
// render elements directly by id, without the full reconciling ElementTree
// (pkg/tree, built separately). It exists so pkg/boxes's render objects can
// be exercised end-to-end against spec.md §8's S1/S2 scenarios without
// depending on pkg/tree.
type miniTree struct {
	elements   map[arity.ElementID]*render.RenderElement
	parentData map[arity.ElementID]any
}

func newMiniTree() *miniTree {
	return &miniTree{elements: map[arity.ElementID]*render.RenderElement{}, parentData: map[arity.ElementID]any{}}
}

func (m *miniTree) add(id arity.ElementID, el *render.RenderElement) { m.elements[id] = el }

func (m *miniTree) LayoutBoxChild(id arity.ElementID, c protocol.BoxConstraints) graphics.Size {
	return m.elements[id].LayoutBox(m, c)
}
func (m *miniTree) LayoutSliverChild(id arity.ElementID, c protocol.SliverConstraints) protocol.SliverGeometry {
	return m.elements[id].LayoutSliver(m, c)
}
func (m *miniTree) PaintBoxChild(id arity.ElementID, offset graphics.Offset) render.Canvas {
	return m.elements[id].PaintBox(m, offset)
}
func (m *miniTree) PaintSliverChild(id arity.ElementID, offset graphics.Offset) render.Canvas {
	return m.elements[id].PaintSliver(m, offset)
}
func (m *miniTree) HitTestBoxChild(id arity.ElementID, position graphics.Offset, result *protocol.BoxHitTestResult) bool {
	return m.elements[id].HitTestBox(m, position, result)
}
func (m *miniTree) HitTestSliverChild(id arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult {
	return m.elements[id].HitTestSliver(m, mainAxis, crossAxis)
}
func (m *miniTree) ParentData(id arity.ElementID) any        { return m.parentData[id] }
func (m *miniTree) SetParentData(id arity.ElementID, data any) { m.parentData[id] = data }

// TestPaddingSizedBoxS1 is spec.md §8 scenario S1.
func TestPaddingSizedBoxS1(t *testing.T) {
	tree := newMiniTree()

	sizedBoxID := arity.ElementID(2)
	tree.add(sizedBoxID, boxes.NewSizedBox(100, 100))

	paddingEl := boxes.NewPadding(boxes.EdgeInsetsAll(10))
	paddingEl.PushChild(sizedBoxID)
	tree.add(1, paddingEl)

	got := tree.LayoutBoxChild(1, protocol.Tight(graphics.Size{Width: 200, Height: 200}))
	if got.Width != 200 || got.Height != 200 {
		t.Fatalf("expected padding to report 200x200, got %v", got)
	}

	childSize, ok := tree.elements[sizedBoxID].LastBoxGeometry()
	if !ok || childSize.Width != 180 || childSize.Height != 180 {
		t.Fatalf("expected child constrained to 180x180, got %v", childSize)
	}

	pd, ok := tree.ParentData(sizedBoxID).(render.BoxParentData)
	if !ok || pd.Offset.X != 10 || pd.Offset.Y != 10 {
		t.Fatalf("expected child offset (10,10), got %+v", pd)
	}
}

// TestFlexDistributionS2 is spec.md §8 scenario S2.
func TestFlexDistributionS2(t *testing.T) {
	tree := newMiniTree()

	first := arity.ElementID(10)
	expandedChild := arity.ElementID(11)
	third := arity.ElementID(12)
	tree.add(first, boxes.NewSizedBox(50, 20))
	tree.add(expandedChild, boxes.NewSizedBox(0, 20))
	tree.add(third, boxes.NewSizedBox(30, 20))

	flexEl := boxes.NewFlex(boxes.AxisHorizontal)
	flexEl.PushChild(first)
	flexEl.PushChild(expandedChild)
	flexEl.PushChild(third)
	tree.add(1, flexEl)

	boxes.SetExpanded(tree, expandedChild, 1)

	got := tree.LayoutBoxChild(1, protocol.Tight(graphics.Size{Width: 200, Height: 20}))
	if got.Width != 200 || got.Height != 20 {
		t.Fatalf("expected flex to report 200x20, got %v", got)
	}

	expandedSize, ok := tree.elements[expandedChild].LastBoxGeometry()
	if !ok || expandedSize.Width != 120 || expandedSize.Height != 20 {
		t.Fatalf("expected Expanded child to receive 120x20, got %v", expandedSize)
	}

	firstPD, _ := tree.ParentData(first).(render.FlexParentData)
	thirdPD, _ := tree.ParentData(third).(render.FlexParentData)
	if firstPD.Offset.X != 0 {
		t.Fatalf("expected first child at x=0, got %v", firstPD.Offset.X)
	}
	if thirdPD.Offset.X != 170 {
		t.Fatalf("expected third child at x=170 (50+120), got %v", thirdPD.Offset.X)
	}
}
