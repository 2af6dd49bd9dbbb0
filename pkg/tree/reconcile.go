package tree

import (
	"reflect"

	"github.com/flui-ui/flui/pkg/arity"
)

// canUpdateWidget reports whether an existing element built from old can
// be reused in place for new, rather than unmounted and rebuilt — a type
// plus key match, exactly the teacher's core/element.go canUpdateWidget.
func canUpdateWidget(old, new Widget) bool {
	if old == nil || new == nil {
		return false
	}
	return reflect.TypeOf(old) == reflect.TypeOf(new) && old.Key() == new.Key()
}

// updateChild reconciles a single child slot: oldID may be arity.Invalid
// (no previous child), and newWidget may be nil (no new child wanted).
func (t *ElementTree) updateChild(parent arity.ElementID, oldID arity.ElementID, newWidget Widget) arity.ElementID {
	if newWidget == nil {
		if oldID != arity.Invalid {
			t.Unmount(oldID)
		}
		return arity.Invalid
	}
	if oldID == arity.Invalid {
		return t.Mount(parent, newWidget)
	}
	oe, ok := t.nodes[oldID]
	if !ok {
		return t.Mount(parent, newWidget)
	}
	if !canUpdateWidget(oe.widget, newWidget) {
		t.Unmount(oldID)
		return t.Mount(parent, newWidget)
	}
	t.updateEntry(oldID, oe, newWidget)
	return oldID
}

// updateEntry reuses an element in place for a widget that canUpdateWidget
// has already approved.
func (t *ElementTree) updateEntry(id arity.ElementID, e *entry, newWidget Widget) {
	switch e.kind {
	case kindRender:
		e.widget = newWidget
		rw := newWidget.(RenderWidget)
		oldChildIDs := e.render.Children()
		newChildIDs := t.updateChildren(id, oldChildIDs, rw.ChildWidgets())
		e.render.ReplaceChildren(newChildIDs)
		t.RequestLayout(id)
	case kindComponent:
		e.widget = newWidget
		t.rebuildComponent(id, e, newWidget.(ComponentWidget))
	case kindProvider:
		e.widget = newWidget
		pw := newWidget.(ProviderWidget)
		e.providerValue = pw.Value()
		e.providerChild = t.updateChild(id, e.providerChild, pw.Child())
	}
}

// updateChildren reconciles an ordered list of children against a new
// list of widgets: keyed widgets reuse the old child carrying the same
// key (if type-compatible); unkeyed widgets reuse old unkeyed children
// positionally, left to right; anything left over on the old side is
// unmounted. This is a simplified single-pass rendition of the teacher's
// multi-pass updateChildren (sync-top/scan-bottom/key-map-middle) — the
// algorithm's reuse semantics are the same, traded for less bookkeeping.
func (t *ElementTree) updateChildren(parent arity.ElementID, oldIDs []arity.ElementID, newWidgets []Widget) []arity.ElementID {
	keyedOld := map[any]arity.ElementID{}
	var unkeyedOld []arity.ElementID
	for _, oid := range oldIDs {
		oe, ok := t.nodes[oid]
		if !ok {
			continue
		}
		if k := oe.widget.Key(); k != nil {
			keyedOld[k] = oid
		} else {
			unkeyedOld = append(unkeyedOld, oid)
		}
	}

	used := make(map[arity.ElementID]bool, len(oldIDs))
	newIDs := make([]arity.ElementID, len(newWidgets))
	unkeyedCursor := 0

	for i, nw := range newWidgets {
		reuse := arity.Invalid
		if k := nw.Key(); k != nil {
			if oid, ok := keyedOld[k]; ok {
				if oe := t.nodes[oid]; oe != nil && canUpdateWidget(oe.widget, nw) {
					reuse = oid
					delete(keyedOld, k)
				}
			}
		} else {
			for unkeyedCursor < len(unkeyedOld) {
				cand := unkeyedOld[unkeyedCursor]
				unkeyedCursor++
				ce := t.nodes[cand]
				if ce != nil && canUpdateWidget(ce.widget, nw) {
					reuse = cand
					break
				}
			}
		}
		if reuse != arity.Invalid {
			used[reuse] = true
			newIDs[i] = t.updateChild(parent, reuse, nw)
		} else {
			newIDs[i] = t.Mount(parent, nw)
		}
	}

	for _, oid := range oldIDs {
		if !used[oid] {
			t.Unmount(oid)
		}
	}
	return newIDs
}
