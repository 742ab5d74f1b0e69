package marionette

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Actor is an animated character: a tree of drawables rooted at a single
// drawable, plus an explicit back-to-front painting order. Placement follows
// the tree; drawing and picking follow the order list, so a part can sit
// behind its parent (an arm behind a torso) regardless of tree shape.
type Actor struct {
	name             string
	position         Vec2
	root             *Drawable
	drawablesInOrder []*Drawable
	timeline         *Timeline
}

// NewActor creates an actor with the given name.
func NewActor(name string) *Actor {
	return &Actor{name: name}
}

// Name returns the actor's name.
func (a *Actor) Name() string {
	return a.name
}

// Position returns the actor's absolute position.
func (a *Actor) Position() Vec2 {
	return a.position
}

// SetPosition moves the actor; takes effect at the next placement pass.
func (a *Actor) SetPosition(p Vec2) {
	a.position = p
}

// SetRoot makes d the root of the actor's drawable tree and associates d's
// subtree with this actor. The root is not automatically in the painting
// order — add every part to be painted with AddDrawable.
func (a *Actor) SetRoot(d *Drawable) {
	a.root = d
	if d != nil {
		d.SetActor(a)
	}
}

// Root returns the root drawable, or nil.
func (a *Actor) Root() *Drawable {
	return a.root
}

// AddDrawable appends d to the painting order (back to front) and associates
// it with this actor.
func (a *Actor) AddDrawable(d *Drawable) {
	a.drawablesInOrder = append(a.drawablesInOrder, d)
	d.SetActor(a)
}

// Drawables returns the painting-order list, back to front.
// The returned slice MUST NOT be mutated by the caller.
func (a *Actor) Drawables() []*Drawable {
	return a.drawablesInOrder
}

// FindDrawable returns the drawable with the given name from the painting
// order, or nil.
func (a *Actor) FindDrawable(name string) *Drawable {
	for _, d := range a.drawablesInOrder {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// SetTimeline registers every drawable in the tree with the timeline so that
// global keyframe capture and recall sweep the whole actor.
func (a *Actor) SetTimeline(t *Timeline) {
	a.timeline = t
	if a.root != nil {
		a.root.SetTimeline(t)
	}
}

// Timeline returns the attached timeline, or nil.
func (a *Actor) Timeline() *Timeline {
	return a.timeline
}

// SetKeyframe records the current pose of every part at the timeline's
// current time.
func (a *Actor) SetKeyframe() {
	for _, d := range a.drawablesInOrder {
		d.SetKeyframe()
	}
}

// GetKeyframe recalls every part's pose for the timeline's current time.
// Parts whose channels have no keyframes keep their static rotation.
func (a *Actor) GetKeyframe() {
	for _, d := range a.drawablesInOrder {
		d.GetKeyframe()
	}
}

// Place runs a placement pass over the tree, rooting it at the actor's
// position with the identity ancestor rotation. Call once per frame before
// Draw or HitTest.
func (a *Actor) Place() {
	if a.root != nil {
		a.root.Place(a.position, 0)
	}
}

// Animate moves the timeline cursor to the given time, recalls the pose, and
// places the tree. Convenience for playback loops.
func (a *Actor) Animate(time float64) {
	if a.timeline != nil {
		a.timeline.SetCurrentTime(time)
	}
	a.GetKeyframe()
	a.Place()
}

// Draw places the tree and paints every drawable in back-to-front order
// using its placed transform.
func (a *Actor) Draw(screen *ebiten.Image) {
	a.Place()
	for _, d := range a.drawablesInOrder {
		d.Draw(screen)
	}
}

// HitTest returns the topmost drawable containing the absolute-space point,
// or nil. Picking logic decides what to do with non-movable parts via the
// Movable flag. Requires a placement pass for the current frame.
func (a *Actor) HitTest(pos Vec2) *Drawable {
	// Front to back: the painting order is back to front.
	for i := len(a.drawablesInOrder) - 1; i >= 0; i-- {
		d := a.drawablesInOrder[i]
		if d.HitTest(pos) {
			return d
		}
	}
	return nil
}
