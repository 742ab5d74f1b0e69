package marionette

import (
	"github.com/tanema/gween/ease"
)

// easings maps keyframe easing names to gween easing functions. The empty
// name (linear) is handled without a lookup.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"in-elastic":   ease.InElastic,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}

// RegisterEasing makes an easing function available to keyframes under the
// given name, replacing any existing registration. Marionette is
// single-threaded; register easings during setup, not mid-evaluation.
func RegisterEasing(name string, fn ease.TweenFunc) {
	easings[name] = fn
}

// applyEasing maps an interpolation fraction in [0, 1] through the named
// easing curve. Unknown names fall back to linear so a hand-edited document
// never breaks evaluation.
func applyEasing(name string, f float64) float64 {
	if name == "" {
		return f
	}
	fn, ok := easings[name]
	if !ok {
		return f
	}
	return float64(fn(float32(f), 0, 1, 1))
}
