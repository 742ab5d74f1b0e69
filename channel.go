package marionette

import (
	"math"
	"sort"
)

// Keyframe is a single authored (time, angle) sample. Time is in seconds,
// angle in radians. Easing names the interpolation curve applied to the
// segment this keyframe leads into; the empty string means linear.
// Keyframes are immutable once stored: re-recording at the same time
// replaces the whole sample.
type Keyframe struct {
	Time   float64
	Angle  float64
	Easing string
}

// AnimChannelAngle is the rotation animation channel for one drawable: an
// ordered-by-time set of keyframes plus a pure evaluation function. The
// channel has no modes and no clock of its own — AngleAt is side-effect-free
// and every caller passes time explicitly.
type AnimChannelAngle struct {
	name      string
	keyframes []Keyframe
}

// SetName sets the channel name used by persistence and the timeline registry.
func (c *AnimChannelAngle) SetName(name string) {
	c.name = name
}

// Name returns the channel name.
func (c *AnimChannelAngle) Name() string {
	return c.name
}

// SetKeyframe records an angle at the given time with linear interpolation.
// A keyframe already at exactly this time is overwritten.
func (c *AnimChannelAngle) SetKeyframe(time, angle float64) {
	c.SetKeyframeEased(time, angle, "")
}

// SetKeyframeEased records an angle at the given time with a named easing
// curve (see RegisterEasing; the empty string is linear). The sorted-by-time
// invariant is maintained regardless of insertion order, and a keyframe
// already at exactly this time is overwritten.
func (c *AnimChannelAngle) SetKeyframeEased(time, angle float64, easing string) {
	kf := Keyframe{Time: time, Angle: angle, Easing: easing}
	i := sort.Search(len(c.keyframes), func(i int) bool {
		return c.keyframes[i].Time >= time
	})
	if i < len(c.keyframes) && c.keyframes[i].Time == time {
		c.keyframes[i] = kf
		return
	}
	c.keyframes = append(c.keyframes, Keyframe{})
	copy(c.keyframes[i+1:], c.keyframes[i:])
	c.keyframes[i] = kf
}

// DeleteKeyframe removes the keyframe at exactly the given time.
// Returns false if no keyframe exists at that time.
func (c *AnimChannelAngle) DeleteKeyframe(time float64) bool {
	i := sort.Search(len(c.keyframes), func(i int) bool {
		return c.keyframes[i].Time >= time
	})
	if i >= len(c.keyframes) || c.keyframes[i].Time != time {
		return false
	}
	copy(c.keyframes[i:], c.keyframes[i+1:])
	c.keyframes = c.keyframes[:len(c.keyframes)-1]
	return true
}

// Clear removes all keyframes.
func (c *AnimChannelAngle) Clear() {
	c.keyframes = c.keyframes[:0]
}

// HasKeyframes reports whether any keyframe has been recorded. A channel
// without keyframes contributes nothing: recall leaves the drawable's static
// rotation untouched.
func (c *AnimChannelAngle) HasKeyframes() bool {
	return len(c.keyframes) > 0
}

// Len returns the number of keyframes.
func (c *AnimChannelAngle) Len() int {
	return len(c.keyframes)
}

// Keyframes returns the keyframe list in time order.
// The returned slice MUST NOT be mutated by the caller.
func (c *AnimChannelAngle) Keyframes() []Keyframe {
	return c.keyframes
}

// AngleAt evaluates the channel at an arbitrary time:
//
//   - no keyframes: 0
//   - one keyframe: its angle, at any time
//   - time at or before the first keyframe: the first angle
//   - time at or after the last keyframe: the last angle
//   - otherwise: eased interpolation between the bracketing pair, taking the
//     shortest angular path (so an authored pose crossing the ±π seam never
//     whips the long way around)
func (c *AnimChannelAngle) AngleAt(time float64) float64 {
	n := len(c.keyframes)
	if n == 0 {
		return 0
	}
	if time <= c.keyframes[0].Time {
		return c.keyframes[0].Angle
	}
	if time >= c.keyframes[n-1].Time {
		return c.keyframes[n-1].Angle
	}

	// First keyframe with Time > time; the bracket is [i-1, i].
	i := sort.Search(n, func(i int) bool {
		return c.keyframes[i].Time > time
	})
	a := c.keyframes[i-1]
	b := c.keyframes[i]

	span := b.Time - a.Time
	if span <= 0 {
		// Times are kept strictly distinct by the overwrite rule; guard anyway.
		return a.Angle
	}
	f := (time - a.Time) / span
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	f = applyEasing(a.Easing, f)

	return a.Angle + f*shortestAngleDelta(a.Angle, b.Angle)
}

// shortestAngleDelta returns the signed delta from angle a to angle b along
// the shortest arc, in (-π, π].
func shortestAngleDelta(a, b float64) float64 {
	delta := math.Mod(b-a, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
