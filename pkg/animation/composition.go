package animation

// CurvedAnimation applies a Curve to an underlying Animation[float64]'s
// progress before exposing Value — spec.md's requirement that
// transform(0)==0 and transform(1)==1 hold exactly regardless of curve,
// so a curved animation always starts and ends at its parent's bounds.
type CurvedAnimation struct {
	Parent Animation[float64]
	Curve  func(float64) float64
}

var _ Animation[float64] = (*CurvedAnimation)(nil)

// NewCurvedAnimation wraps parent, applying curve to its value.
func NewCurvedAnimation(parent Animation[float64], curve func(float64) float64) *CurvedAnimation {
	if curve == nil {
		curve = LinearCurve
	}
	return &CurvedAnimation{Parent: parent, Curve: curve}
}

// Value returns curve(parent.Value()), clamped so that an exact 0 or 1
// parent value always transforms to exactly 0 or 1.
func (c *CurvedAnimation) Value() float64 {
	t := c.Parent.Value()
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return c.Curve(t)
}

func (c *CurvedAnimation) Status() Status { return c.Parent.Status() }

func (c *CurvedAnimation) AddListener(fn func()) func() { return c.Parent.AddListener(fn) }

func (c *CurvedAnimation) AddStatusListener(fn func(Status)) func() {
	return c.Parent.AddStatusListener(fn)
}

// ReverseAnimation mirrors a parent's value (1-v) and swaps Forward/
// Reverse and Dismissed/Completed statuses, without touching the parent.
type ReverseAnimation struct {
	Parent Animation[float64]
}

var _ Animation[float64] = (*ReverseAnimation)(nil)

func NewReverseAnimation(parent Animation[float64]) *ReverseAnimation {
	return &ReverseAnimation{Parent: parent}
}

func (r *ReverseAnimation) Value() float64 { return 1 - r.Parent.Value() }

func (r *ReverseAnimation) Status() Status {
	switch r.Parent.Status() {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	case Dismissed:
		return Completed
	case Completed:
		return Dismissed
	default:
		return r.Parent.Status()
	}
}

func (r *ReverseAnimation) AddListener(fn func()) func() { return r.Parent.AddListener(fn) }

func (r *ReverseAnimation) AddStatusListener(fn func(Status)) func() {
	flipped := func(s Status) {
		switch s {
		case Forward:
			fn(Reverse)
		case Reverse:
			fn(Forward)
		case Dismissed:
			fn(Completed)
		case Completed:
			fn(Dismissed)
		}
	}
	return r.Parent.AddStatusListener(flipped)
}

// ProxyAnimation forwards to a replaceable Parent — the indirection
// point widgets hold onto so the underlying animation can be swapped
// (e.g. on hot-reload or a rebuilt subtree) without the holder needing
// to resubscribe its listeners.
type ProxyAnimation struct {
	parent      Animation[float64]
	listeners   map[int]func()
	statusFns   map[int]func(Status)
	nextID      int
	unsubValue  func()
	unsubStatus func()
}

var _ Animation[float64] = (*ProxyAnimation)(nil)

// NewProxyAnimation creates a proxy, optionally wrapping an initial parent.
func NewProxyAnimation(parent Animation[float64]) *ProxyAnimation {
	p := &ProxyAnimation{listeners: map[int]func(){}, statusFns: map[int]func(Status){}}
	if parent != nil {
		p.SetParent(parent)
	}
	return p
}

// SetParent swaps the underlying animation, re-subscribing this proxy's
// own listeners to the new parent and firing them once immediately so
// observers see the new value without waiting for its next tick.
func (p *ProxyAnimation) SetParent(parent Animation[float64]) {
	if p.unsubValue != nil {
		p.unsubValue()
		p.unsubValue = nil
	}
	if p.unsubStatus != nil {
		p.unsubStatus()
		p.unsubStatus = nil
	}
	p.parent = parent
	if parent == nil {
		return
	}
	p.unsubValue = parent.AddListener(p.notifyListeners)
	p.unsubStatus = parent.AddStatusListener(p.notifyStatus)
	p.notifyListeners()
}

func (p *ProxyAnimation) Value() float64 {
	if p.parent == nil {
		return 0
	}
	return p.parent.Value()
}

func (p *ProxyAnimation) Status() Status {
	if p.parent == nil {
		return Dismissed
	}
	return p.parent.Status()
}

func (p *ProxyAnimation) AddListener(fn func()) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() { delete(p.listeners, id) }
}

func (p *ProxyAnimation) AddStatusListener(fn func(Status)) func() {
	id := p.nextID
	p.nextID++
	p.statusFns[id] = fn
	return func() { delete(p.statusFns, id) }
}

func (p *ProxyAnimation) notifyListeners() {
	for _, fn := range p.listeners {
		fn()
	}
}

func (p *ProxyAnimation) notifyStatus(s Status) {
	for _, fn := range p.statusFns {
		fn(s)
	}
}

// CompoundOp names the arithmetic a CompoundAnimation applies to its
// two operands' values.
type CompoundOp int

const (
	CompoundAdd CompoundOp = iota
	CompoundSubtract
	CompoundMultiply
	CompoundDivide
	CompoundMin
	CompoundMax
)

// CompoundAnimation combines two Animation[float64]s with a CompoundOp.
// Status tracks the first (left) operand.
type CompoundAnimation struct {
	Left, Right Animation[float64]
	Op          CompoundOp
}

var _ Animation[float64] = (*CompoundAnimation)(nil)

func NewCompoundAnimation(op CompoundOp, left, right Animation[float64]) *CompoundAnimation {
	return &CompoundAnimation{Left: left, Right: right, Op: op}
}

func (c *CompoundAnimation) Value() float64 {
	l, r := c.Left.Value(), c.Right.Value()
	switch c.Op {
	case CompoundAdd:
		return l + r
	case CompoundSubtract:
		return l - r
	case CompoundMultiply:
		return l * r
	case CompoundDivide:
		if r == 0 {
			return 0
		}
		return l / r
	case CompoundMin:
		if l < r {
			return l
		}
		return r
	case CompoundMax:
		if l > r {
			return l
		}
		return r
	default:
		return l
	}
}

func (c *CompoundAnimation) Status() Status { return c.Left.Status() }

func (c *CompoundAnimation) AddListener(fn func()) func() {
	unsubL := c.Left.AddListener(fn)
	unsubR := c.Right.AddListener(fn)
	return func() { unsubL(); unsubR() }
}

func (c *CompoundAnimation) AddStatusListener(fn func(Status)) func() {
	return c.Left.AddStatusListener(fn)
}

// TweenAnimation applies an Animatable to a parent Animation[float64]'s
// progress, yielding an Animation[T] — the composition point between
// the controller/curve machinery and arbitrary tweened types.
type TweenAnimation[T any] struct {
	Parent Animation[float64]
	Tween  Animatable[T]
}

func NewTweenAnimation[T any](parent Animation[float64], tween Animatable[T]) *TweenAnimation[T] {
	return &TweenAnimation[T]{Parent: parent, Tween: tween}
}

func (t *TweenAnimation[T]) Value() T { return t.Tween.Transform(t.Parent.Value()) }

func (t *TweenAnimation[T]) Status() Status { return t.Parent.Status() }

func (t *TweenAnimation[T]) AddListener(fn func()) func() { return t.Parent.AddListener(fn) }

func (t *TweenAnimation[T]) AddStatusListener(fn func(Status)) func() {
	return t.Parent.AddStatusListener(fn)
}

// SwitchAnimation picks between two Animation[T]s based on a predicate
// evaluated on every read — useful for swapping an enter/exit animation
// pair without rebuilding the widget holding the reference.
type SwitchAnimation[T any] struct {
	When    func() bool
	IfTrue  Animation[T]
	IfFalse Animation[T]
}

func NewSwitchAnimation[T any](when func() bool, ifTrue, ifFalse Animation[T]) *SwitchAnimation[T] {
	return &SwitchAnimation[T]{When: when, IfTrue: ifTrue, IfFalse: ifFalse}
}

func (s *SwitchAnimation[T]) active() Animation[T] {
	if s.When() {
		return s.IfTrue
	}
	return s.IfFalse
}

func (s *SwitchAnimation[T]) Value() T { return s.active().Value() }

func (s *SwitchAnimation[T]) Status() Status { return s.active().Status() }

func (s *SwitchAnimation[T]) AddListener(fn func()) func() {
	unsubTrue := s.IfTrue.AddListener(fn)
	unsubFalse := s.IfFalse.AddListener(fn)
	return func() { unsubTrue(); unsubFalse() }
}

func (s *SwitchAnimation[T]) AddStatusListener(fn func(Status)) func() {
	unsubTrue := s.IfTrue.AddStatusListener(fn)
	unsubFalse := s.IfFalse.AddStatusListener(fn)
	return func() { unsubTrue(); unsubFalse() }
}

// ConstantAnimation never changes — a stand-in wherever an Animation[T]
// is required but the value is fixed (e.g. a disabled transition).
type ConstantAnimation[T any] struct {
	V T
	S Status
}

var _ Animation[float64] = (*ConstantAnimation[float64])(nil)

func NewConstantAnimation[T any](v T, status Status) *ConstantAnimation[T] {
	return &ConstantAnimation[T]{V: v, S: status}
}

func (c *ConstantAnimation[T]) Value() T { return c.V }

func (c *ConstantAnimation[T]) Status() Status { return c.S }

func (c *ConstantAnimation[T]) AddListener(fn func()) func() { return func() {} }

func (c *ConstantAnimation[T]) AddStatusListener(fn func(Status)) func() { return func() {} }
