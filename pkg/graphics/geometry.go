// Package graphics provides the minimal geometric primitives shared by the
// box and sliver layout protocols: offsets, sizes, and axis-aligned rects.
//
// This package intentionally stops at geometry. The display-list/canvas
// layer that paint emits into, and the GPU surface that presents it, are
// external collaborators specified by their interfaces in pkg/render and
// pkg/pipeline, not implemented here.
package graphics

import "fmt"

// Offset is a 2D displacement in logical pixels.
type Offset struct {
	X, Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%g, %g)", o.X, o.Y)
}

// Size is a 2D extent in logical pixels.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%g, %g)", s.Width, s.Height)
}

// IsEmpty reports whether the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH builds a Rect from an origin and a size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the rect's width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rect's height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether the offset lies within the rect.
func (r Rect) Contains(o Offset) bool {
	return o.X >= r.Left && o.X < r.Right && o.Y >= r.Top && o.Y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.Left, r.Top, r.Right, r.Bottom)
}
