// Package tree implements the element tree: identity, parent/child wiring,
// transactional mutation, dirty sets, and the reconciliation that mounts,
// updates, and unmounts elements as widgets change — spec.md §4.3.
//
// The element tree indexes by arity.ElementID, never by pointer (see
// pkg/arity's doc comment on why render-object children are id-addressed);
// a render element itself has no parent reference (spec.md §3's "Render
// object state" list omits one), so ElementTree is the only place that
// knows the parent chain, and therefore the only place that can walk up to
// a relayout/repaint boundary.
package tree

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/render"
	"github.com/flui-ui/flui/pkg/signal"
)

// Lifecycle names the four states spec.md §3 assigns to every element.
type Lifecycle int

const (
	Initial Lifecycle = iota
	Active
	Inactive
	Defunct
)

func (l Lifecycle) String() string {
	switch l {
	case Initial:
		return "initial"
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	case Defunct:
		return "defunct"
	default:
		return "unknown"
	}
}

// kind names which of the three Element shapes an entry realizes.
type kind int

const (
	kindComponent kind = iota
	kindRender
	kindProvider
)

// Widget is a transient description an Element is mounted or updated from.
// Its dynamic type and Key() give canUpdateWidget (reconcile.go) enough information to
// decide whether an existing element can be reused in place, matching the
// teacher's own type+key matching in core/element.go.
type Widget interface {
	Key() any
}

// RenderWidget describes a Render element: a concrete render object plus
// the widgets describing its children.
type RenderWidget interface {
	Widget
	NewRenderElement() *render.RenderElement
	ChildWidgets() []Widget
}

// ComponentWidget describes a Component element: it builds a single child
// widget from ambient state (collapsing the teacher's separate
// Stateless/Stateful element kinds into the one shape spec.md §3
// specifies).
type ComponentWidget interface {
	Widget
	Build(ctx *BuildContext) Widget
}

// ProviderWidget describes a Provider element: it injects an ambient value
// visible to its subtree via BuildContext.Provided.
type ProviderWidget interface {
	Widget
	Value() any
	Child() Widget
}

// BuildContext is handed to ComponentWidget.Build. It carries the tree and
// the building element's id so Build can read ambient providers, read
// signals (pkg/signal registers dependency capture via the reactive scope
// that safeBuild/rebuildComponent in tree.go open around each build), or
// request layout/paint on itself.
type BuildContext struct {
	Tree      *ElementTree
	ElementID arity.ElementID
}

// Provided looks up the nearest ancestor Provider's value, walking up from
// the building element. ok is false if no ancestor Provider exists.
func (c *BuildContext) Provided() (value any, ok bool) {
	return c.Tree.nearestProvided(c.ElementID)
}

// entry is the tree's internal representation of one element. Only one of
// the kind-specific fields is meaningful, discriminated by kind.
type entry struct {
	id        arity.ElementID
	parent    arity.ElementID
	depth     int
	slot      int
	kind      kind
	lifecycle Lifecycle
	widget    Widget

	render *render.RenderElement // kindRender

	builtChild    arity.ElementID // kindComponent: the single child this build produced
	reactiveScope *signal.Scope   // kindComponent: this element's reactive build scope

	providerChild arity.ElementID // kindProvider
	providerValue any
}
