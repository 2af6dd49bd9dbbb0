package animation

import "github.com/tanema/gween/ease"

// wrapEase adapts a tanema/gween ease.TweenFunc — the Penner-style
// (t, b, c, d float32) easing signature — into this package's
// func(float64) float64 Curve shape over t in [0,1], begin 0, change 1.
func wrapEase(fn ease.TweenFunc) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// The following curves reuse tanema/gween/ease's Penner easing
// implementations rather than re-deriving cubic-bezier coefficients by
// hand — the same motion families as Ease/EaseIn/EaseOut/EaseInOut in
// curves.go, plus the overshoot/elastic/bounce families the teacher's
// CubicBezier helper cannot express.
var (
	BackIn     = wrapEase(ease.InBack)
	BackOut    = wrapEase(ease.OutBack)
	BackInOut  = wrapEase(ease.InOutBack)
	BounceIn   = wrapEase(ease.InBounce)
	BounceOut  = wrapEase(ease.OutBounce)
	ElasticIn  = wrapEase(ease.InElastic)
	ElasticOut = wrapEase(ease.OutElastic)
	QuadIn     = wrapEase(ease.InQuad)
	QuadOut    = wrapEase(ease.OutQuad)
	QuadInOut  = wrapEase(ease.InOutQuad)
)
