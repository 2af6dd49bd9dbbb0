package arity

// LeafChildren is the typed accessor for a Leaf render element: it
// publishes no methods, because there is nothing a Leaf render object can
// ever legally do with a child.
type LeafChildren struct{}

// OptionalChildren is the typed accessor for an Optional render element.
type OptionalChildren struct {
	ids []ElementID
}

// Get returns the single child, if present.
func (o OptionalChildren) Get() (ElementID, bool) {
	if len(o.ids) == 0 {
		return Invalid, false
	}
	return o.ids[0], true
}

// Map applies f to the child if present and does nothing otherwise.
func (o OptionalChildren) Map(f func(ElementID)) {
	if id, ok := o.Get(); ok {
		f(id)
	}
}

// Unwrap returns the child, panicking if absent.
func (o OptionalChildren) Unwrap() ElementID {
	id, ok := o.Get()
	if !ok {
		panic("arity: Unwrap called on empty OptionalChildren")
	}
	return id
}

// SingleChild is the typed accessor for an Exact<1> render element.
type SingleChild struct {
	id ElementID
}

// Single returns the one required child.
func (s SingleChild) Single() ElementID { return s.id }

// PairChildren is the typed accessor for an Exact<2> render element.
type PairChildren struct {
	first, second ElementID
}

// Pair returns both required children in order.
func (p PairChildren) Pair() (ElementID, ElementID) { return p.first, p.second }

// TripleChildren is the typed accessor for an Exact<3> render element.
type TripleChildren struct {
	first, second, third ElementID
}

// Triple returns all three required children in order.
func (t TripleChildren) Triple() (ElementID, ElementID, ElementID) {
	return t.first, t.second, t.third
}

// SliceChildren is the typed accessor shared by AtLeast<N> and Variable
// render elements: bounded iteration only, no lazy/infinite streams.
type SliceChildren struct {
	ids []ElementID
}

// Len returns the number of children.
func (s SliceChildren) Len() int { return len(s.ids) }

// Get returns the child at index i.
func (s SliceChildren) Get(i int) ElementID { return s.ids[i] }

// All returns the full backing slice for range iteration. Callers must not
// mutate the returned slice; it aliases the render element's child list.
func (s SliceChildren) All() []ElementID { return s.ids }

// FromSlice builds the typed accessor for A from the render element's
// shared child-id slice, validating the count against d. In the default
// build, a mismatch panics (see checkArity in arity_checked.go); building
// with the flui_fast_arity tag (and without flui_strict_arity) skips the
// check and trusts the caller, matching a release build's zero-cost path.
func FromSlice[A Arity](ids []ElementID, debugName string) any {
	var zero A
	d := zero.Descriptor()
	checkArity(d, len(ids), debugName)

	switch any(zero).(type) {
	case Leaf:
		return LeafChildren{}
	case Optional:
		return OptionalChildren{ids: ids}
	case Single:
		if len(ids) == 0 {
			return SingleChild{id: Invalid}
		}
		return SingleChild{id: ids[0]}
	case Pair:
		p := PairChildren{first: Invalid, second: Invalid}
		if len(ids) > 0 {
			p.first = ids[0]
		}
		if len(ids) > 1 {
			p.second = ids[1]
		}
		return p
	case Triple:
		t := TripleChildren{first: Invalid, second: Invalid, third: Invalid}
		if len(ids) > 0 {
			t.first = ids[0]
		}
		if len(ids) > 1 {
			t.second = ids[1]
		}
		if len(ids) > 2 {
			t.third = ids[2]
		}
		return t
	case AtLeast, Variable:
		return SliceChildren{ids: ids}
	default:
		panic("arity: unreachable arity kind")
	}
}
