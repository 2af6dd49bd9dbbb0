package render

import "github.com/flui-ui/flui/pkg/graphics"

// BoxParentData is the default Box-protocol parent data: just the child's
// offset within the parent's coordinate space.
type BoxParentData struct {
	Offset graphics.Offset
}

// FlexFit names whether a flex child is forced to fill its allotted main
// axis extent (Tight) or may be smaller (Loose).
type FlexFit int

const (
	FlexFitLoose FlexFit = iota
	FlexFitTight
)

// FlexParentData is attached by a Flex to each child: flex factor zero
// means the child is laid out at its own preferred size before flex
// children divide the remaining space.
type FlexParentData struct {
	Offset graphics.Offset
	Flex   int
	Fit    FlexFit
}

// StackParentData is attached by a Stack to each child, mirroring CSS
// absolute positioning: nil fields are unset.
type StackParentData struct {
	Top, Left, Right, Bottom *float64
	Width, Height            *float64
}

// SliverLogicalParentData is used by slivers that group other slivers
// (e.g. a sliver that reorders its children along the scroll axis)
// without needing per-child keep-alive bookkeeping.
type SliverLogicalParentData struct {
	LayoutOffset float64
}

// SliverMultiBoxAdaptorParentData is used by slivers that adapt a
// potentially large, lazily-materialized list/grid of box children into
// the scrolling viewport: each child additionally carries an index and a
// keep-alive flag so the adaptor can decide when it is safe to dispose an
// off-screen child's render object.
type SliverMultiBoxAdaptorParentData struct {
	PaintOffset graphics.Offset
	Index       int
	KeepAlive   bool
}

// SliverGridParentData extends the multi-box-adaptor shape with the
// cross-axis offset a grid needs per cell.
type SliverGridParentData struct {
	SliverMultiBoxAdaptorParentData
	CrossAxisOffset float64
}
