package tree

import "github.com/flui-ui/flui/pkg/arity"

// These wrap pkg/render's per-element structural mutation API (already the
// spec.md §4.2-correct Begin/Push/Remove/Commit and ReplaceChildren
// methods on *render.RenderElement) with the tree-level scheduling step
// spec.md §4.3 requires: a commit, or an atomic replace, must end in
// exactly one RequestLayout — never a schedule per intermediate operation.

// BeginChildrenUpdate opens a transaction on a Render element, suspending
// per-operation arity validation until Commit.
func (t *ElementTree) BeginChildrenUpdate(id arity.ElementID) {
	t.RenderOf(id).BeginChildrenUpdate()
}

// PushChild appends a child during (or outside) a transaction.
func (t *ElementTree) PushChild(id, child arity.ElementID) {
	t.RenderOf(id).PushChild(child)
}

// RemoveChild removes a child; only valid inside an active transaction
// (render.RenderElement.RemoveChild enforces this).
func (t *ElementTree) RemoveChild(id, child arity.ElementID) {
	t.RenderOf(id).RemoveChild(child)
}

// CommitChildrenUpdate closes the transaction, validates the final arity,
// and schedules exactly one layout — spec.md §8 scenario S3.
func (t *ElementTree) CommitChildrenUpdate(id arity.ElementID) {
	t.RenderOf(id).CommitChildrenUpdate()
	t.RequestLayout(id)
}

// ReplaceChildren atomically swaps a Render element's full child list and
// schedules a layout. This is the recommended non-transactional API.
func (t *ElementTree) ReplaceChildren(id arity.ElementID, children []arity.ElementID) {
	t.RenderOf(id).ReplaceChildren(children)
	t.RequestLayout(id)
}
