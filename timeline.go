package marionette

// Timeline is the global animation clock and keyframe coordinator: it holds
// the frame count, frame rate, the current-time cursor, and the set of angle
// channels registered by drawables. Channels stay pure — the timeline only
// does bookkeeping, and evaluation always receives time explicitly.
type Timeline struct {
	numFrames   int
	frameRate   int
	currentTime float64
	channels    []*AnimChannelAngle
}

// NewTimeline creates a timeline with the default extent of 300 frames at
// 30 frames per second.
func NewTimeline() *Timeline {
	return &Timeline{numFrames: 300, frameRate: 30}
}

// NumFrames returns the animation length in frames.
func (t *Timeline) NumFrames() int {
	return t.numFrames
}

// SetNumFrames sets the animation length in frames.
func (t *Timeline) SetNumFrames(n int) {
	t.numFrames = n
}

// FrameRate returns the playback rate in frames per second.
func (t *Timeline) FrameRate() int {
	return t.frameRate
}

// SetFrameRate sets the playback rate in frames per second. Rates below one
// frame per second are floored to one, keeping Duration and CurrentFrame
// finite.
func (t *Timeline) SetFrameRate(r int) {
	if r < 1 {
		r = 1
	}
	t.frameRate = r
}

// CurrentTime returns the cursor position in seconds.
func (t *Timeline) CurrentTime() float64 {
	return t.currentTime
}

// SetCurrentTime moves the cursor. Times outside [0, Duration] are legal;
// channels extrapolate flat past their authored range.
func (t *Timeline) SetCurrentTime(time float64) {
	t.currentTime = time
}

// CurrentFrame returns the frame under the cursor.
func (t *Timeline) CurrentFrame() int {
	return int(t.currentTime * float64(t.frameRate))
}

// Duration returns the animation length in seconds.
func (t *Timeline) Duration() float64 {
	return float64(t.numFrames) / float64(t.frameRate)
}

// AddChannel registers an angle channel for coordinated keyframe capture and
// recall. Registering the same channel twice is a no-op.
func (t *Timeline) AddChannel(c *AnimChannelAngle) {
	for _, existing := range t.channels {
		if existing == c {
			return
		}
	}
	t.channels = append(t.channels, c)
}

// RemoveChannel unregisters an angle channel.
func (t *Timeline) RemoveChannel(c *AnimChannelAngle) {
	for i, existing := range t.channels {
		if existing == c {
			copy(t.channels[i:], t.channels[i+1:])
			t.channels[len(t.channels)-1] = nil
			t.channels = t.channels[:len(t.channels)-1]
			return
		}
	}
}

// Channels returns the registered channels.
// The returned slice MUST NOT be mutated by the caller.
func (t *Timeline) Channels() []*AnimChannelAngle {
	return t.channels
}
