package render

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/graphics"
	"github.com/flui-ui/flui/pkg/protocol"
)

// RenderElement is the per-node render state described in spec.md §4.2: a
// boxed dynamic render object behind a read-write lock, a protocol-specific
// render state behind its own read-write lock, the ordered child id list,
// and immutable protocol/arity discriminants.
//
// Lock order is fixed and must never be taken in reverse: objMu, then
// stateMu. Readers of objMu are paint/hit-test/debug; writers are layout
// and child mutation. objMu also guards the child id list and the
// updating-children transaction flag, since structural mutation and
// layout dispatch are the same "write" concern spec.md groups together.
type RenderElement struct {
	protocolID protocol.ID
	descriptor arity.Descriptor
	name       string

	objMu            sync.RWMutex
	boxObj           boxObject
	sliverObj        sliverObject
	children         []arity.ElementID
	updatingChildren bool
	poisoned         bool

	stateMu          sync.RWMutex
	boxConstraints   protocol.BoxConstraints
	boxGeometry      graphics.Size
	sliverConstraint protocol.SliverConstraints
	sliverGeometry   protocol.SliverGeometry
	hasLaidOut       bool
	parentData       any

	needsLayout atomic.Bool
	needsPaint  atomic.Bool
}

// Protocol reports the render element's fixed protocol.
func (e *RenderElement) Protocol() protocol.ID { return e.protocolID }

// Descriptor reports the render element's fixed arity contract.
func (e *RenderElement) Descriptor() arity.Descriptor { return e.descriptor }

// DebugName is the stable name used in panics and traces (spec.md §6).
func (e *RenderElement) DebugName() string {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	return e.name
}

// IsRelayoutBoundary reports whether this node's layout result cannot
// affect its parent, making it a safe entry point for a dirty-layout walk.
func (e *RenderElement) IsRelayoutBoundary() bool {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.boxObj != nil {
		return e.boxObj.isRelayoutBoundary()
	}
	return e.sliverObj.isRelayoutBoundary()
}

// IsRepaintBoundary reports whether this node caches its own canvas.
func (e *RenderElement) IsRepaintBoundary() bool {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	if e.boxObj != nil {
		return e.boxObj.isRepaintBoundary()
	}
	return e.sliverObj.isRepaintBoundary()
}

// NeedsLayout reports the lock-free dirty-layout flag.
func (e *RenderElement) NeedsLayout() bool { return e.needsLayout.Load() }

// NeedsPaint reports the lock-free dirty-paint flag.
func (e *RenderElement) NeedsPaint() bool { return e.needsPaint.Load() }

// MarkNeedsLayout sets the dirty-layout flag. This only flips the atomic
// flag in render state; it does not insert the element into any pipeline
// dirty set and does not walk ancestors. ElementTree.RequestLayout is the
// only supported entry point for actually scheduling a layout — see
// pkg/tree, which owns the parent-chain walk to the nearest relayout
// boundary (a render element has no parent reference of its own).
func (e *RenderElement) MarkNeedsLayout() { e.needsLayout.Store(true) }

// MarkNeedsPaint sets the dirty-paint flag. Same caveat as MarkNeedsLayout:
// scheduling into the pipeline's dirty-paint set is ElementTree.RequestPaint's job.
func (e *RenderElement) MarkNeedsPaint() { e.needsPaint.Store(true) }

// ParentData returns the protocol-specific accessory the parent attached
// to this child (flex factor, stack position, sliver keep-alive flags,
// ...). Only the parent reads it; the render object never reads its own.
func (e *RenderElement) ParentData() any {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.parentData
}

// SetParentData is called by the parent during its own layout/attach.
func (e *RenderElement) SetParentData(data any) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.parentData = data
}

// Children returns a snapshot of the ordered child id list.
func (e *RenderElement) Children() []arity.ElementID {
	e.objMu.RLock()
	defer e.objMu.RUnlock()
	out := make([]arity.ElementID, len(e.children))
	copy(out, e.children)
	return out
}

// PushChild appends a child. Outside a transaction, the resulting count is
// validated immediately against the element's arity and a violation
// panics — spec.md §4.2's "child mutation — non-transactional" contract.
func (e *RenderElement) PushChild(id arity.ElementID) {
	e.objMu.Lock()
	defer e.objMu.Unlock()
	e.requirePushAllowed()
	next := len(e.children) + 1
	if !e.updatingChildren && !e.descriptor.Validate(next) {
		panic(fmt.Sprintf("render: %s.PushChild would violate %s (now %d children)", e.name, e.descriptor, next))
	}
	e.children = append(e.children, id)
}

func (e *RenderElement) requirePushAllowed() {
	if e.poisoned {
		panic(fmt.Sprintf("render: %s is poisoned (failed transaction commit)", e.name))
	}
}

// ReplaceChildren atomically swaps the full child list, validating the new
// count up front. This is the recommended non-transactional API.
func (e *RenderElement) ReplaceChildren(ids []arity.ElementID) {
	e.objMu.Lock()
	defer e.objMu.Unlock()
	e.requirePushAllowed()
	if !e.descriptor.Validate(len(ids)) {
		panic(fmt.Sprintf("render: %s.ReplaceChildren(%d) violates %s", e.name, len(ids), e.descriptor))
	}
	e.children = append([]arity.ElementID(nil), ids...)
	e.needsLayout.Store(true)
}

// BeginChildrenUpdate suspends per-operation arity validation so a
// multi-step structural edit can transiently violate the arity invariant.
func (e *RenderElement) BeginChildrenUpdate() {
	e.objMu.Lock()
	defer e.objMu.Unlock()
	e.requirePushAllowed()
	if e.updatingChildren {
		panic(fmt.Sprintf("render: %s.BeginChildrenUpdate called while already in a transaction", e.name))
	}
	e.updatingChildren = true
}

// RemoveChild removes a child during an active transaction. Go has no
// crate-private visibility, so spec.md §4.3's "remove_child is
// crate-internal" contract is enforced by documentation, not the
// compiler, exactly as spec.md itself prescribes ("a hard API contract,
// documented on the method"): only pkg/tree, which owns reconciliation,
// should call this. Application code must use ReplaceChildren for atomic
// swaps or the Begin/Push/RemoveChild/Commit sequence driven by pkg/tree.
func (e *RenderElement) RemoveChild(id arity.ElementID) {
	e.objMu.Lock()
	defer e.objMu.Unlock()
	if !e.updatingChildren {
		panic(fmt.Sprintf("render: %s.removeChild called outside a transaction", e.name))
	}
	for i, c := range e.children {
		if c == id {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// CommitChildrenUpdate ends the transaction, asserting the final count
// satisfies the arity. A failing commit panics and poisons the element —
// every subsequent structural mutation on it will also panic.
func (e *RenderElement) CommitChildrenUpdate() {
	e.objMu.Lock()
	defer e.objMu.Unlock()
	if !e.updatingChildren {
		panic(fmt.Sprintf("render: %s.CommitChildrenUpdate called outside a transaction", e.name))
	}
	e.updatingChildren = false
	if !e.descriptor.Validate(len(e.children)) {
		e.poisoned = true
		panic(fmt.Sprintf("render: %s commit left %d children, violating %s", e.name, len(e.children), e.descriptor))
	}
	e.needsLayout.Store(true)
}
