// Package protocol defines the sealed Box/Sliver type family that the
// render tree is built over. A Protocol contributes no behavior of its
// own; it only selects the shape of constraints, geometry, and contexts
// that a render object of that protocol works with. See pkg/render for
// the render-object traits built on top of this family.
package protocol

import "github.com/flui-ui/flui/pkg/graphics"

// ID names one of the two sealed protocols. It is the runtime discriminant
// stored once per render element (never duplicated inside the render
// object payload), matched against the protocol implied by the concrete
// RenderObject type at every dispatch.
type ID int

const (
	// Box is standard 2D layout: parent gives min/max bounds, child returns a size.
	Box ID = iota
	// Sliver is scroll-aware layout: parent gives a scroll-axis extent
	// description, child returns a geometry describing its contribution to
	// the scrolling viewport.
	Sliver
)

func (p ID) String() string {
	if p == Sliver {
		return "sliver"
	}
	return "box"
}

// sealed is embedded in the two protocol marker types to prevent external
// packages from defining additional protocols.
type sealed struct{}

// BoxProtocol is the marker type selecting Box-shaped associated types in
// generic render-object code.
type BoxProtocol struct{ sealed }

// SliverProtocol is the marker type selecting Sliver-shaped associated
// types in generic render-object code.
type SliverProtocol struct{ sealed }

// Family is implemented only by BoxProtocol and SliverProtocol. It is used
// as the type constraint on generic render-object and context types so
// that a stray third protocol can never satisfy it.
type Family interface {
	ID() ID
	sealedFamily()
}

func (BoxProtocol) ID() ID         { return Box }
func (BoxProtocol) sealedFamily()  {}
func (SliverProtocol) ID() ID      { return Sliver }
func (SliverProtocol) sealedFamily() {}

// BoxConstraints bound the size a box child may choose.
type BoxConstraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) BoxConstraints {
	return BoxConstraints{
		MinWidth: size.Width, MaxWidth: size.Width,
		MinHeight: size.Height, MaxHeight: size.Height,
	}
}

// Loose returns constraints with a zero minimum and the given maximum.
func Loose(size graphics.Size) BoxConstraints {
	return BoxConstraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether min and max are equal on both axes.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps size into [Min, Max] on each axis.
func (c BoxConstraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BoxGeometry is the Box protocol's geometry: a size.
type BoxGeometry = graphics.Size

// AxisDirection names the direction a sliver's main axis runs in.
type AxisDirection int

const (
	AxisDown AxisDirection = iota
	AxisUp
	AxisLeft
	AxisRight
)

// GrowthDirection names whether a sliver grows toward or away from the
// viewport's zero scroll offset.
type GrowthDirection int

const (
	GrowthForward GrowthDirection = iota
	GrowthReverse
)

// SliverConstraints describe the portion of the scrollable viewport a
// sliver is asked to fill.
type SliverConstraints struct {
	AxisDirection     AxisDirection
	GrowthDirection   GrowthDirection
	ScrollOffset      float64
	RemainingPaintExtent float64
	CacheOrigin       float64
	RemainingCacheExtent float64
	CrossAxisExtent   float64
	CrossAxisDirection AxisDirection
	ViewportMainAxisExtent float64
	PrecedingScrollExtent  float64
}

// SliverGeometry is a sliver's contribution to the scrolling viewport.
type SliverGeometry struct {
	ScrollExtent     float64
	PaintExtent      float64
	PaintOrigin      float64
	LayoutExtent     float64
	MaxPaintExtent   float64
	CacheExtent      float64
	Visible          bool
	HasVisualOverflow bool
}

// ZeroExtentGeometry is the geometry a sliver with zero scroll extent
// must report: invisible and contributing nothing to the viewport.
var ZeroExtentGeometry = SliverGeometry{Visible: false}

// BoxHitTestResult is the Box protocol's hit-test result: whether the
// point was inside the subtree, plus the ordered path of element ids hit
// along the way (innermost first), used to dispatch pointer events.
type BoxHitTestResult struct {
	Hit  bool
	Path []HitEntry
}

// HitEntry records one render object hit along a hit-test path, with the
// position translated into that object's local coordinate space.
type HitEntry struct {
	ElementID int64
	Local     graphics.Offset
}

// Add appends an entry to the path and marks the result as hit.
func (r *BoxHitTestResult) Add(elementID int64, local graphics.Offset) {
	r.Hit = true
	r.Path = append(r.Path, HitEntry{ElementID: elementID, Local: local})
}

// SliverHitTestResult is the Sliver protocol's hit-test result: whether
// the point was inside the sliver, plus its main/cross axis position
// relative to the sliver's layout origin.
type SliverHitTestResult struct {
	Hit              bool
	MainAxisPosition  float64
	CrossAxisPosition float64
}
