package animation

import "github.com/flui-ui/flui/pkg/graphics"

// Animatable maps a linear 0-1 progress value to any type T — spec.md's
// `Animatable<T>::transform(f32) -> T`. Tween is the concrete
// implementation driven by a Lerp function; TweenAnimation consumes any
// Animatable, not just Tween.
type Animatable[T any] interface {
	Transform(t float64) T
}

// Tween interpolates between Begin and End by Lerp. Use the typed
// constructors (TweenFloat64, TweenOffset, TweenSize) for the built-in
// geometry types, or set Lerp directly for a custom type.
type Tween[T any] struct {
	Begin T
	End   T
	Lerp  func(a, b T, t float64) T
}

var _ Animatable[float64] = (*Tween[float64])(nil)

// Transform implements Animatable.
func (tw *Tween[T]) Transform(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Evaluate is Transform under its Flutter-familiar name.
func (tw *Tween[T]) Evaluate(t float64) T { return tw.Transform(t) }

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end graphics.Size) *Tween[graphics.Size] {
	return &Tween[graphics.Size]{Begin: begin, End: end, Lerp: LerpSize}
}
