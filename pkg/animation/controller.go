package animation

import (
	"time"

	flerrors "github.com/flui-ui/flui/pkg/errors"
)

// AnimationControllerBuilder constructs a controller with validated
// bounds — spec.md §9's "Config objects... are plain structs with
// explicit, enumerated fields," and §8's
// `AnimationController::builder(d, t).bounds(l,u)?.build()?` scenario.
type AnimationControllerBuilder struct {
	Duration       time.Duration
	TickerProvider TickerProvider
	lower, upper   float64
}

// NewAnimationControllerBuilder starts a builder with the default [0,1]
// bounds and the package's ordinary ticker provider.
func NewAnimationControllerBuilder(duration time.Duration) *AnimationControllerBuilder {
	return &AnimationControllerBuilder{Duration: duration, TickerProvider: DefaultTickerProvider{}, lower: 0, upper: 1}
}

// Bounds overrides the default [0,1] range. l must not exceed u.
func (b *AnimationControllerBuilder) Bounds(l, u float64) (*AnimationControllerBuilder, error) {
	if l > u {
		return b, flerrors.NewInvalidValue("AnimationControllerBuilder.Bounds", "lower bound exceeds upper bound")
	}
	b.lower, b.upper = l, u
	return b, nil
}

// Build returns the configured controller, its Value initialized to the
// lower bound.
func (b *AnimationControllerBuilder) Build() (*AnimationController, error) {
	if b.Duration < 0 {
		return nil, flerrors.NewInvalidValue("AnimationControllerBuilder.Build", "negative duration")
	}
	provider := b.TickerProvider
	if provider == nil {
		provider = DefaultTickerProvider{}
	}
	c := &AnimationController{
		Value:      b.lower,
		Duration:   b.Duration,
		LowerBound: b.lower,
		UpperBound: b.upper,
		Curve:      LinearCurve,
		provider:   provider,
		status:     Dismissed,
		listeners:  map[int]func(){},
		statusFns:  map[int]func(Status){},
	}
	return c, nil
}

// AnimationController drives a float64 Value over [LowerBound,
// UpperBound] — by fixed Duration and Curve, or by a Simulation via
// AnimateWith/Fling. spec.md §4.5.
type AnimationController struct {
	Value      float64
	Duration   time.Duration
	Curve      func(float64) float64
	LowerBound float64
	UpperBound float64

	provider  TickerProvider
	status    Status
	ticker    *Ticker
	target    float64
	startVal  float64
	sim       Simulation
	repeating bool
	reverseOn bool // reverse direction on each repeat loop

	listeners      map[int]func()
	statusFns      map[int]func(Status)
	nextListenerID int
	disposed       bool
}

// NewAnimationController is the direct (non-builder) constructor used
// when the default [0,1] bounds suffice.
func NewAnimationController(duration time.Duration) *AnimationController {
	c, _ := NewAnimationControllerBuilder(duration).Build()
	return c
}

var _ Animation[float64] = (*AnimationController)(nil)

func (c *AnimationController) checkDisposed(op string) error {
	if c.disposed {
		return flerrors.NewAlreadyDisposed(op)
	}
	return nil
}

// Forward animates toward UpperBound.
func (c *AnimationController) Forward() error {
	if err := c.checkDisposed("AnimationController.Forward"); err != nil {
		return err
	}
	c.animateByDuration(c.UpperBound, Forward)
	return nil
}

// Reverse animates toward LowerBound.
func (c *AnimationController) Reverse() error {
	if err := c.checkDisposed("AnimationController.Reverse"); err != nil {
		return err
	}
	c.animateByDuration(c.LowerBound, Reverse)
	return nil
}

// ForwardFrom sets Value to v, then animates toward UpperBound.
func (c *AnimationController) ForwardFrom(v float64) error {
	if err := c.checkDisposed("AnimationController.ForwardFrom"); err != nil {
		return err
	}
	if v < c.LowerBound || v > c.UpperBound {
		return flerrors.NewInvalidValue("AnimationController.ForwardFrom", "value outside [LowerBound, UpperBound]")
	}
	c.Value = v
	c.animateByDuration(c.UpperBound, Forward)
	return nil
}

// ReverseFrom sets Value to v, then animates toward LowerBound.
func (c *AnimationController) ReverseFrom(v float64) error {
	if err := c.checkDisposed("AnimationController.ReverseFrom"); err != nil {
		return err
	}
	if v < c.LowerBound || v > c.UpperBound {
		return flerrors.NewInvalidValue("AnimationController.ReverseFrom", "value outside [LowerBound, UpperBound]")
	}
	c.Value = v
	c.animateByDuration(c.LowerBound, Reverse)
	return nil
}

// Repeat animates forward, then restarts from LowerBound, indefinitely.
func (c *AnimationController) Repeat() error {
	if err := c.checkDisposed("AnimationController.Repeat"); err != nil {
		return err
	}
	c.repeating, c.reverseOn = true, false
	c.Value = c.LowerBound
	c.animateByDuration(c.UpperBound, Forward)
	return nil
}

// RepeatWithReverse bounces between the bounds indefinitely, reversing
// direction at each end instead of jumping back to the start.
func (c *AnimationController) RepeatWithReverse() error {
	if err := c.checkDisposed("AnimationController.RepeatWithReverse"); err != nil {
		return err
	}
	c.repeating, c.reverseOn = true, true
	c.animateByDuration(c.UpperBound, Forward)
	return nil
}

// Fling starts a friction-governed simulation from the current value at
// the given initial velocity (units per second), as if flicked.
func (c *AnimationController) Fling(velocity float64) error {
	if err := c.checkDisposed("AnimationController.Fling"); err != nil {
		return err
	}
	sim, err := NewFrictionSimulation(0.135, c.Value, velocity)
	if err != nil {
		return err
	}
	return c.animateWith(sim)
}

// AnimateWith drives Value from sim.X(t)/sim.DX(t) until sim.IsDone(t),
// bypassing Duration/Curve entirely.
func (c *AnimationController) AnimateWith(sim Simulation) error {
	if err := c.checkDisposed("AnimationController.AnimateWith"); err != nil {
		return err
	}
	return c.animateWith(sim)
}

func (c *AnimationController) animateWith(sim Simulation) error {
	c.stopTicker()
	c.sim = sim
	c.repeating = false
	status := Forward
	if sim.DX(0) < 0 {
		status = Reverse
	}
	c.setStatus(status)
	c.ticker = c.provider.CreateTicker(c.tickSimulation)
	c.ticker.Start()
	return nil
}

// Stop halts the controller at its current value without changing status.
func (c *AnimationController) Stop() error {
	if err := c.checkDisposed("AnimationController.Stop"); err != nil {
		return err
	}
	c.stopTicker()
	c.repeating = false
	c.sim = nil
	return nil
}

// Reset halts the controller and snaps Value back to LowerBound.
func (c *AnimationController) Reset() error {
	if err := c.checkDisposed("AnimationController.Reset"); err != nil {
		return err
	}
	c.stopTicker()
	c.repeating = false
	c.sim = nil
	c.Value = c.LowerBound
	c.setStatus(Dismissed)
	c.notifyListeners()
	return nil
}

// Dispose stops the controller, clears listeners, and poisons every
// further operation. Double-dispose is a no-op, never an error.
func (c *AnimationController) Dispose() error {
	if c.disposed {
		return nil
	}
	c.stopTicker()
	c.listeners = nil
	c.statusFns = nil
	c.disposed = true
	return nil
}

func (c *AnimationController) animateByDuration(target float64, direction Status) {
	c.stopTicker()
	c.sim = nil
	c.target = target
	c.startVal = c.Value
	c.setStatus(direction)
	c.ticker = c.provider.CreateTicker(c.tickDuration)
	c.ticker.Start()
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *AnimationController) tickDuration(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.finishDurationSegment()
		return
	}
	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startVal + (c.target-c.startVal)*eased
	c.notifyListeners()
	if progress >= 1.0 {
		c.finishDurationSegment()
	}
}

func (c *AnimationController) finishDurationSegment() {
	if c.repeating {
		if c.reverseOn {
			if c.status == Forward {
				c.animateByDuration(c.LowerBound, Reverse)
			} else {
				c.animateByDuration(c.UpperBound, Forward)
			}
		} else {
			c.Value = c.LowerBound
			c.animateByDuration(c.UpperBound, Forward)
		}
		return
	}
	c.stopTicker()
	if c.Value <= c.LowerBound {
		c.setStatus(Dismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(Completed)
	}
}

func (c *AnimationController) tickSimulation(elapsed time.Duration) {
	t := elapsed.Seconds()
	c.Value = c.sim.X(t)
	c.notifyListeners()
	if c.sim.IsDone(t) {
		c.stopTicker()
		c.sim = nil
		if c.Value <= c.LowerBound {
			c.setStatus(Dismissed)
		} else if c.Value >= c.UpperBound {
			c.setStatus(Completed)
		} else {
			c.setStatus(Dismissed)
		}
	}
}

// Status implements Animation[float64].
func (c *AnimationController) Status() Status { return c.status }

// IsAnimating reports whether the controller is currently ticking.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener registers fn to fire whenever Value changes. Returns an
// unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		if c.listeners != nil {
			delete(c.listeners, id)
		}
	}
}

// AddStatusListener registers fn to fire whenever Status changes.
func (c *AnimationController) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusFns[id] = fn
	return func() {
		if c.statusFns != nil {
			delete(c.statusFns, id)
		}
	}
}

func (c *AnimationController) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusFns {
		fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, fn := range c.listeners {
		fn()
	}
}
