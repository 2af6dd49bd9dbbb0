package render

import (
	"github.com/flui-ui/flui/pkg/arity"
	"github.com/flui-ui/flui/pkg/protocol"
)

func newBoxElement(descriptor arity.Descriptor, obj boxObject, name string) *RenderElement {
	return &RenderElement{protocolID: protocol.Box, descriptor: descriptor, boxObj: obj, name: name}
}

func newSliverElement(descriptor arity.Descriptor, obj sliverObject, name string) *RenderElement {
	return &RenderElement{protocolID: protocol.Sliver, descriptor: descriptor, sliverObj: obj, name: name}
}

// BoxLeaf constructs a render element for a childless Box render object.
func BoxLeaf(impl BoxRender[arity.LeafChildren]) *RenderElement {
	return newBoxElement(arity.Leaf{}.Descriptor(), &boxAdapter[arity.Leaf, arity.LeafChildren]{impl: impl}, impl.DebugName())
}

// BoxOptional constructs a render element accepting zero or one Box child.
func BoxOptional(impl BoxRender[arity.OptionalChildren]) *RenderElement {
	return newBoxElement(arity.Optional{}.Descriptor(), &boxAdapter[arity.Optional, arity.OptionalChildren]{impl: impl}, impl.DebugName())
}

// BoxSingle constructs a render element requiring exactly one Box child.
func BoxSingle(impl BoxRender[arity.SingleChild]) *RenderElement {
	return newBoxElement(arity.Single{}.Descriptor(), &boxAdapter[arity.Single, arity.SingleChild]{impl: impl}, impl.DebugName())
}

// BoxPair constructs a render element requiring exactly two Box children.
func BoxPair(impl BoxRender[arity.PairChildren]) *RenderElement {
	return newBoxElement(arity.Pair{}.Descriptor(), &boxAdapter[arity.Pair, arity.PairChildren]{impl: impl}, impl.DebugName())
}

// BoxTriple constructs a render element requiring exactly three Box children.
func BoxTriple(impl BoxRender[arity.TripleChildren]) *RenderElement {
	return newBoxElement(arity.Triple{}.Descriptor(), &boxAdapter[arity.Triple, arity.TripleChildren]{impl: impl}, impl.DebugName())
}

// BoxAtLeast constructs a render element requiring at least n Box children.
func BoxAtLeast(n int, impl BoxRender[arity.SliceChildren]) *RenderElement {
	return newBoxElement(arity.NewAtLeast(n), &boxAdapter[arity.AtLeast, arity.SliceChildren]{impl: impl}, impl.DebugName())
}

// BoxVariable constructs a render element accepting any number of Box children.
func BoxVariable(impl BoxRender[arity.SliceChildren]) *RenderElement {
	return newBoxElement(arity.Variable{}.Descriptor(), &boxAdapter[arity.Variable, arity.SliceChildren]{impl: impl}, impl.DebugName())
}

// SliverLeaf constructs a render element for a childless Sliver render object.
func SliverLeaf(impl SliverRender[arity.LeafChildren]) *RenderElement {
	return newSliverElement(arity.Leaf{}.Descriptor(), &sliverAdapter[arity.Leaf, arity.LeafChildren]{impl: impl}, impl.DebugName())
}

// SliverOptional constructs a render element accepting zero or one Sliver child.
func SliverOptional(impl SliverRender[arity.OptionalChildren]) *RenderElement {
	return newSliverElement(arity.Optional{}.Descriptor(), &sliverAdapter[arity.Optional, arity.OptionalChildren]{impl: impl}, impl.DebugName())
}

// SliverSingle constructs a render element requiring exactly one Sliver child.
func SliverSingle(impl SliverRender[arity.SingleChild]) *RenderElement {
	return newSliverElement(arity.Single{}.Descriptor(), &sliverAdapter[arity.Single, arity.SingleChild]{impl: impl}, impl.DebugName())
}

// SliverPair constructs a render element requiring exactly two Sliver children.
func SliverPair(impl SliverRender[arity.PairChildren]) *RenderElement {
	return newSliverElement(arity.Pair{}.Descriptor(), &sliverAdapter[arity.Pair, arity.PairChildren]{impl: impl}, impl.DebugName())
}

// SliverAtLeast constructs a render element requiring at least n Sliver children.
func SliverAtLeast(n int, impl SliverRender[arity.SliceChildren]) *RenderElement {
	return newSliverElement(arity.NewAtLeast(n), &sliverAdapter[arity.AtLeast, arity.SliceChildren]{impl: impl}, impl.DebugName())
}

// SliverVariable constructs a render element accepting any number of
// Sliver children — the shape used by a scrolling viewport's list of
// child slivers.
func SliverVariable(impl SliverRender[arity.SliceChildren]) *RenderElement {
	return newSliverElement(arity.Variable{}.Descriptor(), &sliverAdapter[arity.Variable, arity.SliceChildren]{impl: impl}, impl.DebugName())
}
