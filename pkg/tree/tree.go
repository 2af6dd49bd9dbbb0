package tree

import (
	"fmt"
	"slices"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/errors"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
	"github.com/flui-ui/flui/pkg/render"
	"github.com/flui-ui/flui/pkg/signal"
)

// ElementTree indexes elements by id and owns the dirty-elements,
// dirty-layout, and dirty-paint sets. It is not synchronized: spec.md §5
// specifies a single-threaded cooperative UI thread that owns the whole
// tree, matching the teacher's own unsynchronized core.BuildOwner.
type ElementTree struct {
	nodes  map[arity.ElementID]*entry
	nextID arity.ElementID
	root   arity.ElementID

	dirtyElements    []arity.ElementID
	dirtyElementSet  map[arity.ElementID]struct{}
	dirtyLayout      []arity.ElementID
	dirtyLayoutSet   map[arity.ElementID]struct{}
	dirtyPaint       []arity.ElementID
	dirtyPaintSet    map[arity.ElementID]struct{}

	// canvasCache holds the last canvas fragment painted for each repaint
	// boundary, keyed by the render element's own id. PaintBoxChild/
	// PaintSliverChild consult it on every recursive paint, not only at
	// the frame's top-level composite, so a repaint boundary whose
	// subtree is unchanged is never repainted regardless of where in the
	// tree it sits — spec.md §8 scenario S6.
	canvasCache map[arity.ElementID]render.Canvas
}

// New returns an empty ElementTree.
func New() *ElementTree {
	return &ElementTree{
		nodes:           map[arity.ElementID]*entry{},
		root:            arity.Invalid,
		dirtyElementSet: map[arity.ElementID]struct{}{},
		dirtyLayoutSet:  map[arity.ElementID]struct{}{},
		dirtyPaintSet:   map[arity.ElementID]struct{}{},
		canvasCache:     map[arity.ElementID]render.Canvas{},
	}
}

func (t *ElementTree) allocID() arity.ElementID {
	id := t.nextID
	t.nextID++
	return id
}

// MountRoot mounts widget as the tree's root element.
func (t *ElementTree) MountRoot(widget Widget) arity.ElementID {
	t.root = t.Mount(arity.Invalid, widget)
	return t.root
}

// Root returns the root element's id, or arity.Invalid if nothing is mounted.
func (t *ElementTree) Root() arity.ElementID { return t.root }

// Mount instantiates an element for widget, attaches it under parent, and
// returns its id. This is the tree's sole entry point for widget→element
// instantiation (spec.md §4.3).
func (t *ElementTree) Mount(parent arity.ElementID, widget Widget) arity.ElementID {
	id := t.allocID()
	depth := 0
	if parent != arity.Invalid {
		if p, ok := t.nodes[parent]; ok {
			depth = p.depth + 1
		}
	}
	e := &entry{
		id: id, parent: parent, depth: depth,
		lifecycle: Active, widget: widget,
		builtChild: arity.Invalid, providerChild: arity.Invalid,
	}
	t.nodes[id] = e

	switch w := widget.(type) {
	case RenderWidget:
		e.kind = kindRender
		e.render = w.NewRenderElement()
		childWidgets := w.ChildWidgets()
		childIDs := make([]arity.ElementID, len(childWidgets))
		for i, cw := range childWidgets {
			childIDs[i] = t.Mount(id, cw)
		}
		e.render.ReplaceChildren(childIDs)
	case ComponentWidget:
		e.kind = kindComponent
		t.safeBuild(id, e, w)
	case ProviderWidget:
		e.kind = kindProvider
		e.providerValue = w.Value()
		e.providerChild = t.Mount(id, w.Child())
	default:
		delete(t.nodes, id)
		panic(fmt.Sprintf("tree: widget %T implements none of RenderWidget, ComponentWidget, ProviderWidget", widget))
	}
	return id
}

// safeBuild recovers a panicking Build call, wraps it into a
// *errors.BoundaryError carrying the element id and a captured stack,
// reports it to the global error handler, and re-panics with the wrapped
// error so the frame-level recovery in pkg/pipeline returns it from
// RunFrame, whose caller decides whether to unmount the app or swap in a
// fallback tree (spec.md §7) — grounded on
// the teacher's core/element.go safeBuild.
func (t *ElementTree) safeBuild(id arity.ElementID, e *entry, w ComponentWidget) {
	scope := signal.BeginScope(func() { t.ScheduleBuild(id) })
	e.reactiveScope = scope
	defer scope.End()

	defer func() {
		if r := recover(); r != nil {
			if _, already := r.(*errors.BoundaryError); already {
				panic(r)
			}
			berr := &errors.BoundaryError{
				Phase:      "build",
				Widget:     fmt.Sprintf("%T", w),
				ElementID:  int64(id),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportBoundaryError(berr)
			panic(berr)
		}
	}()
	built := w.Build(&BuildContext{Tree: t, ElementID: id})
	e.builtChild = t.Mount(id, built)
}

// Unmount recursively unmounts id's children, forgets a Component's
// reactive scope, marks id Defunct, and removes it from the tree's index
// and from every dirty set. It does not remove id from its parent's child
// list, and it calls no disposal on the render object.
func (t *ElementTree) Unmount(id arity.ElementID) {
	e, ok := t.nodes[id]
	if !ok {
		return
	}
	switch e.kind {
	case kindRender:
		for _, c := range e.render.Children() {
			t.Unmount(c)
		}
	case kindComponent:
		if e.reactiveScope != nil {
			e.reactiveScope.Forget()
		}
		if e.builtChild != arity.Invalid {
			t.Unmount(e.builtChild)
		}
	case kindProvider:
		if e.providerChild != arity.Invalid {
			t.Unmount(e.providerChild)
		}
	}
	e.lifecycle = Defunct
	delete(t.nodes, id)
	delete(t.dirtyElementSet, id)
	delete(t.dirtyLayoutSet, id)
	delete(t.dirtyPaintSet, id)
}

func (t *ElementTree) nearestProvided(id arity.ElementID) (any, bool) {
	cur := id
	for cur != arity.Invalid {
		e, ok := t.nodes[cur]
		if !ok {
			return nil, false
		}
		if e.kind == kindProvider {
			return e.providerValue, true
		}
		cur = e.parent
	}
	return nil, false
}

// RenderOf returns the render.RenderElement owned by a Render-kind
// element, or nil if id does not name one.
func (t *ElementTree) RenderOf(id arity.ElementID) *render.RenderElement {
	e, ok := t.nodes[id]
	if !ok || e.kind != kindRender {
		return nil
	}
	return e.render
}

// nearestRenderAncestor walks up the parent chain from id (inclusive)
// to the closest ancestor that owns a render object, skipping over any
// Component/Provider elements along the way. Used by RequestLayout/
// RequestPaint's boundary walk, which always starts at a render id; for
// walking the other direction — a child id down to the render
// descendant actually being laid out — see resolveRender.
func (t *ElementTree) nearestRenderAncestor(id arity.ElementID) (arity.ElementID, *entry) {
	cur := id
	for cur != arity.Invalid {
		e, ok := t.nodes[cur]
		if !ok {
			return arity.Invalid, nil
		}
		if e.kind == kindRender {
			return cur, e
		}
		cur = e.parent
	}
	return arity.Invalid, nil
}

// RequestLayout is the only supported entry point for scheduling a
// layout: it sets the render element's needs-layout flag, walks up the
// parent chain to the nearest relayout boundary (inclusive), and inserts
// that boundary into the dirty-layout set — spec.md §4.2/§4.3.
func (t *ElementTree) RequestLayout(id arity.ElementID) {
	boundaryID, boundary := t.nearestRenderAncestor(id)
	if boundary == nil {
		return
	}
	boundary.render.MarkNeedsLayout()
	walk := boundaryID
	for {
		e := t.nodes[walk]
		if e == nil {
			return
		}
		if e.render.IsRelayoutBoundary() || e.parent == arity.Invalid {
			t.insertDirty(&t.dirtyLayout, t.dirtyLayoutSet, walk)
			return
		}
		parentRenderID, parentEntry := t.nearestRenderAncestor(e.parent)
		if parentEntry == nil {
			t.insertDirty(&t.dirtyLayout, t.dirtyLayoutSet, walk)
			return
		}
		parentEntry.render.MarkNeedsLayout()
		walk = parentRenderID
	}
}

// RequestPaint is RequestLayout's paint analogue, walking to the nearest
// repaint boundary instead.
func (t *ElementTree) RequestPaint(id arity.ElementID) {
	boundaryID, boundary := t.nearestRenderAncestor(id)
	if boundary == nil {
		return
	}
	boundary.render.MarkNeedsPaint()
	walk := boundaryID
	for {
		e := t.nodes[walk]
		if e == nil {
			return
		}
		if e.render.IsRepaintBoundary() || e.parent == arity.Invalid {
			t.insertDirty(&t.dirtyPaint, t.dirtyPaintSet, walk)
			return
		}
		parentRenderID, parentEntry := t.nearestRenderAncestor(e.parent)
		if parentEntry == nil {
			t.insertDirty(&t.dirtyPaint, t.dirtyPaintSet, walk)
			return
		}
		parentEntry.render.MarkNeedsPaint()
		walk = parentRenderID
	}
}

// ScheduleBuild marks a Component element dirty so the next FlushBuild
// rebuilds it. This is the entry point signal writes and setState calls
// use (pkg/signal calls this on write-time dependency flush).
func (t *ElementTree) ScheduleBuild(id arity.ElementID) {
	if _, ok := t.nodes[id]; !ok {
		return
	}
	t.insertDirty(&t.dirtyElements, t.dirtyElementSet, id)
}

func (t *ElementTree) insertDirty(list *[]arity.ElementID, set map[arity.ElementID]struct{}, id arity.ElementID) {
	if _, already := set[id]; already {
		return
	}
	set[id] = struct{}{}
	*list = append(*list, id)
}

// FlushBuild drains the dirty-elements set in depth order, rebuilding each
// Component element and reconciling its single child against the newly
// built widget, looping until no more dirtiness accumulates (rebuilding
// can itself dirty other elements) — grounded on the teacher's
// core.BuildOwner.FlushBuild.
func (t *ElementTree) FlushBuild() {
	for len(t.dirtyElements) > 0 {
		batch := t.dirtyElements
		t.dirtyElements = nil
		slices.SortFunc(batch, func(a, b arity.ElementID) int {
			ea, eb := t.nodes[a], t.nodes[b]
			if ea == nil || eb == nil {
				return 0
			}
			return ea.depth - eb.depth
		})
		for _, id := range batch {
			delete(t.dirtyElementSet, id)
			e, ok := t.nodes[id]
			if !ok || e.kind != kindComponent {
				continue
			}
			cw := e.widget.(ComponentWidget)
			t.rebuildComponent(id, e, cw)
		}
	}
}

func (t *ElementTree) rebuildComponent(id arity.ElementID, e *entry, w ComponentWidget) {
	if e.reactiveScope != nil {
		e.reactiveScope.Forget()
	}
	scope := signal.BeginScope(func() { t.ScheduleBuild(id) })
	e.reactiveScope = scope
	defer scope.End()

	defer func() {
		if r := recover(); r != nil {
			if _, already := r.(*errors.BoundaryError); already {
				panic(r)
			}
			berr := &errors.BoundaryError{Phase: "build", Widget: fmt.Sprintf("%T", w), ElementID: int64(id), Recovered: r, StackTrace: errors.CaptureStack()}
			errors.ReportBoundaryError(berr)
			panic(berr)
		}
	}()
	newWidget := w.Build(&BuildContext{Tree: t, ElementID: id})
	e.builtChild = t.updateChild(id, e.builtChild, newWidget)
}

// --- render.ChildTree implementation: protocol-typed child helpers ---

// resolveRender walks down from id to the nearest Render-kind descendant:
// id itself if it already owns a render object, or through a Component's
// builtChild / a Provider's providerChild otherwise. A parent's children
// list holds element ids of any of the three Element shapes (spec.md
// §3), so layout/paint/hit-test dispatch on a child id must see through
// any Component/Provider wrapping to the render object actually being
// laid out or painted.
// ResolveRender exports resolveRender for pkg/pipeline, which must
// resolve the tree's root id (which may be any of the three Element
// shapes) down to the render object it actually lays out and paints.
func (t *ElementTree) ResolveRender(id arity.ElementID) *render.RenderElement {
	return t.resolveRender(id)
}

func (t *ElementTree) resolveRender(id arity.ElementID) *render.RenderElement {
	_, re := t.resolveRenderID(id)
	return re
}

// resolveRenderID is resolveRender plus the resolved element's own id,
// needed to key canvasCache (a Component/Provider wrapper id is not a
// stable cache key — only the render object it resolves to is).
func (t *ElementTree) resolveRenderID(id arity.ElementID) (arity.ElementID, *render.RenderElement) {
	cur := id
	for {
		e, ok := t.nodes[cur]
		if !ok {
			panic(fmt.Sprintf("tree: element %d has no render descendant", id))
		}
		switch e.kind {
		case kindRender:
			return cur, e.render
		case kindComponent:
			cur = e.builtChild
		case kindProvider:
			cur = e.providerChild
		}
		if cur == arity.Invalid {
			panic(fmt.Sprintf("tree: element %d has no render descendant", id))
		}
	}
}

func (t *ElementTree) LayoutBoxChild(id arity.ElementID, c protocol.BoxConstraints) graphics.Size {
	return t.resolveRender(id).LayoutBox(t, c)
}

func (t *ElementTree) LayoutSliverChild(id arity.ElementID, c protocol.SliverConstraints) protocol.SliverGeometry {
	return t.resolveRender(id).LayoutSliver(t, c)
}

// PaintBoxChild paints a child, short-circuiting to its cached canvas
// fragment when it is a repaint boundary that does not currently need
// paint — the cache check happens at every recursion level, not only at
// the frame's top-level composite, so an unchanged boundary anywhere in
// the tree is skipped regardless of depth (spec.md §8 scenario S6).
func (t *ElementTree) PaintBoxChild(id arity.ElementID, offset graphics.Offset) render.Canvas {
	resolvedID, re := t.resolveRenderID(id)
	if re.IsRepaintBoundary() {
		if cached, ok := t.canvasCache[resolvedID]; ok && !re.NeedsPaint() {
			return cached
		}
		canvas := re.PaintBox(t, offset)
		t.canvasCache[resolvedID] = canvas
		return canvas
	}
	return re.PaintBox(t, offset)
}

func (t *ElementTree) PaintSliverChild(id arity.ElementID, offset graphics.Offset) render.Canvas {
	resolvedID, re := t.resolveRenderID(id)
	if re.IsRepaintBoundary() {
		if cached, ok := t.canvasCache[resolvedID]; ok && !re.NeedsPaint() {
			return cached
		}
		canvas := re.PaintSliver(t, offset)
		t.canvasCache[resolvedID] = canvas
		return canvas
	}
	return re.PaintSliver(t, offset)
}

func (t *ElementTree) HitTestBoxChild(id arity.ElementID, position graphics.Offset, result *protocol.BoxHitTestResult) bool {
	return t.resolveRender(id).HitTestBox(t, position, result)
}

func (t *ElementTree) HitTestSliverChild(id arity.ElementID, mainAxis, crossAxis float64) protocol.SliverHitTestResult {
	return t.resolveRender(id).HitTestSliver(t, mainAxis, crossAxis)
}

// PaintRoot paints the tree's root for pkg/pipeline's frame composite,
// applying the same repaint-boundary cache check PaintBoxChild applies to
// every other node — the root is not anyone's "child", so it needs its
// own entry point into the same caching path.
func (t *ElementTree) PaintRoot(offset graphics.Offset) render.Canvas {
	if t.root == arity.Invalid {
		return nil
	}
	return t.PaintBoxChild(t.root, offset)
}

func (t *ElementTree) ParentData(id arity.ElementID) any {
	return t.resolveRender(id).ParentData()
}

func (t *ElementTree) SetParentData(id arity.ElementID, data any) {
	t.resolveRender(id).SetParentData(data)
}

// DrainDirtyLayout returns and clears the dirty-layout set, in insertion
// order (pkg/pipeline then sorts it by depth, shallowest first).
func (t *ElementTree) DrainDirtyLayout() []arity.ElementID {
	out := t.dirtyLayout
	t.dirtyLayout = nil
	for _, id := range out {
		delete(t.dirtyLayoutSet, id)
	}
	return out
}

// DrainDirtyPaint returns and clears the dirty-paint set.
func (t *ElementTree) DrainDirtyPaint() []arity.ElementID {
	out := t.dirtyPaint
	t.dirtyPaint = nil
	for _, id := range out {
		delete(t.dirtyPaintSet, id)
	}
	return out
}

// Depth returns an element's depth from the root, used by pkg/pipeline to
// break traversal ties.
func (t *ElementTree) Depth(id arity.ElementID) int {
	if e, ok := t.nodes[id]; ok {
		return e.depth
	}
	return -1
}
