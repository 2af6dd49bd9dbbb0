package animation_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/flui-ui/flui/pkg/animation"
)

// curveFamily lists every named curve this package exports, paired with
// whether it's allowed to overshoot [0,1] in its interior (spec.md §8: "a
// curve applied to 0.5 returns a value in [0, 1]; elastic/bounce families
// may overshoot within the normalized range by design — but 0 and 1 are
// exact").
var curveFamily = []struct {
	name       string
	fn         func(float64) float64
	overshoots bool
}{
	{"Linear", animation.LinearCurve, false},
	{"IOSNavigation", animation.IOSNavigationCurve, false},
	{"Ease", animation.Ease, false},
	{"EaseIn", animation.EaseIn, false},
	{"EaseOut", animation.EaseOut, false},
	{"EaseInOut", animation.EaseInOut, false},
	{"QuadIn", animation.QuadIn, false},
	{"QuadOut", animation.QuadOut, false},
	{"QuadInOut", animation.QuadInOut, false},
	{"BackIn", animation.BackIn, true},
	{"BackOut", animation.BackOut, true},
	{"BackInOut", animation.BackInOut, true},
	{"BounceIn", animation.BounceIn, true},
	{"BounceOut", animation.BounceOut, true},
	{"ElasticIn", animation.ElasticIn, true},
	{"ElasticOut", animation.ElasticOut, true},
}

// TestCurveEndpointsAreAlwaysExact is a rapid-driven rendition of spec.md §8
// invariant 6, swept across every curve this package exports rather than
// just the handful a hand-picked table would cover.
func TestCurveEndpointsAreAlwaysExact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		idx := rapid.IntRange(0, len(curveFamily)-1).Draw(rt, "curve")
		c := curveFamily[idx]

		if got := c.fn(0.0); got != 0.0 {
			rt.Fatalf("%s.transform(0.0) = %v, want exactly 0.0", c.name, got)
		}
		if got := c.fn(1.0); got != 1.0 {
			rt.Fatalf("%s.transform(1.0) = %v, want exactly 1.0", c.name, got)
		}
	})
}

// TestNonOvershootingCurvesStayInUnitRange checks the boundary behavior for
// the curve families that aren't allowed to overshoot: any interior t in
// [0,1] must map back into [0,1].
func TestNonOvershootingCurvesStayInUnitRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var bounded []int
		for i, c := range curveFamily {
			if !c.overshoots {
				bounded = append(bounded, i)
			}
		}
		idx := bounded[rapid.IntRange(0, len(bounded)-1).Draw(rt, "curve")]
		c := curveFamily[idx]
		tv := rapid.Float64Range(0, 1).Draw(rt, "t")

		got := c.fn(tv)
		if math.IsNaN(got) || got < -1e-9 || got > 1+1e-9 {
			rt.Fatalf("%s.transform(%v) = %v, want a value in [0,1]", c.name, tv, got)
		}
	})
}
