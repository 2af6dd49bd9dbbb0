// Package pipeline drives one frame: flush pending builds, lay out every
// dirty relayout boundary (not the whole tree), then composite from the
// root with repaint-boundary canvas caching. spec.md §4.4.
//
// The teacher's layout/pipeline.go FlushLayoutForRoot always relays out
// from the root, regardless of which node is actually dirty — a cheap
// shortcut that works because the teacher never needed per-node dirty
// tracking. spec.md requires the opposite: a dirty leaf must not force a
// full-tree relayout. This package keeps the teacher's four-phase frame
// ordering (engine/engine.go's appRunner.Paint: dispatch → build → layout
// → paint → composite) but replaces FlushLayoutForRoot's full-subtree walk
// with a genuine per-dirty-boundary walk driven by tree.ElementTree's
// dirty-layout set. Repaint-boundary canvas caching (the teacher's
// paintTreeWithLayers/*rendering.DisplayList idiom) lives in pkg/tree
// itself (PaintBoxChild/PaintRoot), since caching must apply at every
// recursive child-paint call, not only at this package's top-level
// composite.
package pipeline

import (
	"fmt"
	"slices"

	"github.com/flui-ui/flui/pkg/animation"
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/errors"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
	"github.com/flui-ui/flui/pkg/tree"
)

var zeroOffset = graphics.Offset{}

// FrameOwner drives frames over a single ElementTree.
type FrameOwner struct {
	tree *tree.ElementTree
}

// New returns a FrameOwner driving t.
func New(t *tree.ElementTree) *FrameOwner {
	return &FrameOwner{tree: t}
}

// RunFrame drives one complete frame: build, then layout, then composite,
// returning the root's canvas. A panic anywhere in the frame is
// recovered, reported to the global error handler, and returned as an
// error — the caller decides whether to retry, unmount, or show a
// fallback tree (spec.md §7).
func (f *FrameOwner) RunFrame(rootConstraints protocol.BoxConstraints) (canvas render.Canvas, err error) {
	defer func() {
		if r := recover(); r != nil {
			if berr, already := r.(*errors.BoundaryError); already {
				errors.ReportBoundaryError(berr)
			} else {
				perr := &errors.PanicError{Op: "pipeline.RunFrame", Value: r, StackTrace: errors.CaptureStack()}
				errors.ReportPanic(perr)
			}
			err = fmt.Errorf("pipeline: panic during frame: %v", r)
		}
	}()

	// Tickers advance first: an animation listener typically calls back
	// into a signal write or SetState, which schedules the build this
	// same frame goes on to flush.
	animation.StepTickers()

	f.tree.FlushBuild()
	f.flushLayout(rootConstraints)
	canvas = f.tree.PaintRoot(zeroOffset)
	// The dirty-paint set's membership is redundant with the needs-paint
	// flag PaintRoot/PaintBoxChild already consulted per node; drain it
	// here purely so it does not grow unbounded across frames.
	f.tree.DrainDirtyPaint()
	return canvas, nil
}

// NeedsAnotherFrame reports whether the engine driving this FrameOwner
// should schedule a further frame — true while any ticker (animation
// controller, simulation) is still active.
func (f *FrameOwner) NeedsAnotherFrame() bool {
	return animation.HasActiveTickers()
}

// flushLayout re-lays-out every render element still carrying
// needsLayout, ordered shallowest-first so a boundary that recursively
// lays out a dirty descendant already clears that descendant's flag
// before this loop would otherwise redo it.
func (f *FrameOwner) flushLayout(rootConstraints protocol.BoxConstraints) {
	root := f.tree.Root()
	if root == arity.Invalid {
		return
	}

	rootRender := f.tree.ResolveRender(root)
	if _, laidOut := rootRender.LastBoxGeometry(); !laidOut {
		rootRender.LayoutBox(f.tree, rootConstraints)
	}

	dirty := f.tree.DrainDirtyLayout()
	slices.SortFunc(dirty, func(a, b arity.ElementID) int {
		return f.tree.Depth(a) - f.tree.Depth(b)
	})

	for _, id := range dirty {
		re := f.tree.RenderOf(id)
		if re == nil || !re.NeedsLayout() {
			continue // already covered by an ancestor boundary's relayout
		}
		switch re.Protocol() {
		case protocol.Box:
			c, ok := re.LastBoxConstraints()
			if !ok {
				c = rootConstraints
			}
			re.LayoutBox(f.tree, c)
		case protocol.Sliver:
			c, _ := re.LastSliverConstraints()
			re.LayoutSliver(f.tree, c)
		}
	}
}
