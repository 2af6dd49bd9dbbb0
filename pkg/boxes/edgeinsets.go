// Package boxes provides a small library of concrete Box-protocol render
// objects — Padding, SizedBox, Flex/Expanded — built on pkg/render, used to
// exercise the core end-to-end (spec.md §8 scenarios S1/S2) the way a real
// widget layer would, without pulling in an actual widget/composition
// framework (out of scope per spec.md §1).
package boxes

// EdgeInsets describes padding/margin on all four sides in logical pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns uniform insets on all four sides.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns insets with distinct horizontal/vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Horizontal is the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical is the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }
