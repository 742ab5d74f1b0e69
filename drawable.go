package marionette

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is one rigid part of an actor. Parts form a tree: each drawable
// carries a position and rotation relative to its parent, and a placement
// pass composes those down the tree into absolute ("placed") transforms.
// A single flat struct is used for all part types to avoid interface
// dispatch on the placement path.
//
// Drawables are created through the typed constructors (NewGroup,
// NewPolygon, NewSprite); there is no useful zero value — a part's name and
// tree position are not shareable by copy.
type Drawable struct {
	// Identity
	name string
	Type DrawableType

	// Hierarchy
	parent   *Drawable
	children []*Drawable

	// Local transform (parent-relative; rotation in radians)
	position Vec2
	rotation float64

	// Placed transform (absolute, valid only after a Place pass)
	placedPosition Vec2
	placedRotation float64

	// Animation
	channel   AnimChannelAngle
	timeline  *Timeline
	startTime float64

	// Ownership
	actor *Actor

	// Interaction
	Movable bool

	// Sprite fields (DrawableTypeSprite)
	Image     *ebiten.Image
	ImageName string // asset name, used by persistence to re-resolve Image
	Pivot     Vec2   // point in image coordinates that lands on the placed position
	Size      Vec2   // image extent; defaults to Image bounds

	// Polygon fields (DrawableTypePolygon)
	Points []Vec2
	Color  Color

	// Group fields (DrawableTypeGroup)
	positionSource *Drawable

	// Source name from a document, resolved once the whole tree exists.
	pendingPositionSource string
}

// drawableDefaults sets the field values shared by all constructors.
func drawableDefaults(d *Drawable, name string) {
	d.name = name
	d.Color = ColorWhite
	d.channel.SetName(name + ":angle")
}

// NewGroup creates a structural drawable with no visual representation.
func NewGroup(name string) *Drawable {
	d := &Drawable{Type: DrawableTypeGroup}
	drawableDefaults(d, name)
	return d
}

// NewPolygon creates a solid-color polygon drawable. Add local-space points
// with AddPoint; winding does not matter for convex fans.
func NewPolygon(name string) *Drawable {
	d := &Drawable{Type: DrawableTypePolygon}
	drawableDefaults(d, name)
	return d
}

// NewSprite creates an image drawable. The pivot defaults to the image
// origin; Size is taken from the image bounds when img is non-nil.
func NewSprite(name string, img *ebiten.Image) *Drawable {
	d := &Drawable{Type: DrawableTypeSprite, Image: img}
	drawableDefaults(d, name)
	if img != nil {
		b := img.Bounds()
		d.Size = Vec2{float64(b.Dx()), float64(b.Dy())}
	}
	return d
}

// Name returns the drawable's name, set once at construction.
func (d *Drawable) Name() string {
	return d.name
}

// AddPoint appends a local-space point to a polygon drawable.
func (d *Drawable) AddPoint(p Vec2) {
	d.Points = append(d.Points, p)
}

// --- Tree manipulation ---

// AddChild appends child to this drawable's children and makes this
// drawable its parent. If child already has a parent, it is removed from
// that parent first. Panics if child is nil or is an ancestor of this
// drawable: an unguarded cycle would recurse forever during placement.
func (d *Drawable) AddChild(child *Drawable) {
	if child == nil {
		panic("marionette: cannot add nil child")
	}
	if isAncestor(child, d) {
		panic("marionette: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = d
	d.children = append(d.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this drawable.
// Panics if child's parent is not this drawable.
func (d *Drawable) RemoveChild(child *Drawable) {
	if child == nil || child.parent != d {
		panic("marionette: child's parent is not this drawable")
	}
	d.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this drawable from its parent.
// No-op if this drawable has no parent.
func (d *Drawable) RemoveFromParent() {
	if d.parent == nil {
		return
	}
	d.parent.RemoveChild(d)
}

// Children returns the child list in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (d *Drawable) Children() []*Drawable {
	return d.children
}

// NumChildren returns the number of children.
func (d *Drawable) NumChildren() int {
	return len(d.children)
}

// ChildAt returns the child at the given index.
func (d *Drawable) ChildAt(index int) *Drawable {
	return d.children[index]
}

// Parent returns the parent drawable, or nil for a root.
func (d *Drawable) Parent() *Drawable {
	return d.parent
}

// isAncestor reports whether candidate is an ancestor of (or the same as) d.
func isAncestor(candidate, d *Drawable) bool {
	for p := d; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from d.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (d *Drawable) removeChildByPtr(child *Drawable) {
	for i, c := range d.children {
		if c == child {
			copy(d.children[i:], d.children[i+1:])
			d.children[len(d.children)-1] = nil
			d.children = d.children[:len(d.children)-1]
			return
		}
	}
}

// --- Local transform ---

// Position returns the parent-relative position. A group with a position
// source reports that drawable's position instead of its own stored value,
// so editing surfaces that grab "the group" move the delegated part.
func (d *Drawable) Position() Vec2 {
	if d.positionSource != nil {
		return d.positionSource.Position()
	}
	return d.position
}

// SetPosition sets the parent-relative position, honoring position-source
// delegation the same way Position does.
func (d *Drawable) SetPosition(p Vec2) {
	if d.positionSource != nil {
		d.positionSource.SetPosition(p)
		return
	}
	d.position = p
}

// Move translates the (possibly delegated) position by delta. The new value
// takes effect at the next placement pass.
func (d *Drawable) Move(delta Vec2) {
	d.SetPosition(d.Position().Add(delta))
}

// Rotation returns the parent-relative rotation in radians.
func (d *Drawable) Rotation() float64 {
	return d.rotation
}

// SetRotation sets the parent-relative rotation in radians.
func (d *Drawable) SetRotation(r float64) {
	d.rotation = r
}

// SetPositionSource makes this drawable report and accept positions through
// src instead of its own stored position. Placement is unaffected: the
// drawable's own stored position still anchors its subtree. Pass nil to
// restore direct access.
func (d *Drawable) SetPositionSource(src *Drawable) {
	d.positionSource = src
}

// PositionSource returns the delegated position drawable, or nil.
func (d *Drawable) PositionSource() *Drawable {
	return d.positionSource
}

// --- Placement ---

// Place computes this drawable's placed transform from the already fully
// composed ancestor placement (absolute offset and rotation), then places
// each child using this drawable's new placement as their ancestor context.
// A root drawable is placed with the identity ancestor transform
// (zero offset, zero rotation), supplied by its actor.
//
// Placed state is undefined before the first Place call; run a placement
// pass before drawing or hit testing each frame.
func (d *Drawable) Place(offset Vec2, rotate float64) {
	d.placedPosition = offset.Add(d.position.Rotate(rotate))
	d.placedRotation = rotate + d.rotation
	for _, child := range d.children {
		child.Place(d.placedPosition, d.placedRotation)
	}
}

// PlacedPosition returns the absolute position computed by the last Place pass.
func (d *Drawable) PlacedPosition() Vec2 {
	return d.placedPosition
}

// PlacedRotation returns the absolute rotation computed by the last Place pass.
func (d *Drawable) PlacedRotation() float64 {
	return d.placedRotation
}

// --- Actor and timeline wiring ---

// SetActor associates this drawable and its subtree with an owning actor.
func (d *Drawable) SetActor(a *Actor) {
	d.actor = a
	for _, child := range d.children {
		child.SetActor(a)
	}
}

// Actor returns the owning actor, or nil.
func (d *Drawable) Actor() *Actor {
	return d.actor
}

// SetTimeline registers this drawable's angle channel (and its subtree's)
// with the timeline, so global pose capture and recall reach every part.
func (d *Drawable) SetTimeline(t *Timeline) {
	d.timeline = t
	if t != nil {
		t.AddChannel(&d.channel)
	}
	for _, child := range d.children {
		child.SetTimeline(t)
	}
}

// SetStartTime offsets this drawable's animation relative to the timeline's
// global clock. Default is zero (no offset).
func (d *Drawable) SetStartTime(t float64) {
	d.startTime = t
}

// StartTime returns the animation start-time offset.
func (d *Drawable) StartTime() float64 {
	return d.startTime
}

// SetKeyframe records the current rotation as a keyframe at the timeline's
// current time, shifted by the start-time offset. Keyframe times are never
// negative: recording while the cursor is before this drawable's start time
// records the starting pose at channel time zero. Recording at a time that
// already has a keyframe replaces it. No-op when no timeline is attached.
func (d *Drawable) SetKeyframe() {
	if d.timeline == nil {
		return
	}
	time := d.timeline.CurrentTime() - d.startTime
	if time < 0 {
		time = 0
	}
	d.channel.SetKeyframe(time, d.rotation)
}

// GetKeyframe recalls the pose for the timeline's current time: the channel
// drives the rotation only once at least one keyframe has been recorded, so
// an unanimated part keeps its static rotation. No-op when no timeline is
// attached.
func (d *Drawable) GetKeyframe() {
	if d.timeline == nil || !d.channel.HasKeyframes() {
		return
	}
	d.rotation = d.channel.AngleAt(d.timeline.CurrentTime() - d.startTime)
}

// AngleChannel exposes the rotation channel so the timeline and editing
// surfaces can read or edit keyframes directly.
func (d *Drawable) AngleChannel() *AnimChannelAngle {
	return &d.channel
}
