package marionette

import (
	"math"
	"testing"
)

// buildTestActor assembles a three-part actor: torso root with an arm, the
// arm carrying a hand, all in the painting order torso, arm, hand.
func buildTestActor() (*Actor, *Drawable, *Drawable, *Drawable) {
	torso := NewPolygon("torso")
	torso.AddPoint(Vec2{-20, 0})
	torso.AddPoint(Vec2{20, 0})
	torso.AddPoint(Vec2{20, -60})
	torso.AddPoint(Vec2{-20, -60})

	arm := NewPolygon("arm")
	arm.SetPosition(Vec2{20, -50})
	arm.AddPoint(Vec2{0, 0})
	arm.AddPoint(Vec2{30, 0})
	arm.AddPoint(Vec2{30, 8})
	arm.AddPoint(Vec2{0, 8})
	torso.AddChild(arm)

	hand := NewPolygon("hand")
	hand.SetPosition(Vec2{30, 4})
	hand.AddPoint(Vec2{-4, -4})
	hand.AddPoint(Vec2{4, -4})
	hand.AddPoint(Vec2{4, 4})
	hand.AddPoint(Vec2{-4, 4})
	arm.AddChild(hand)

	a := NewActor("harold")
	a.SetRoot(torso)
	a.AddDrawable(torso)
	a.AddDrawable(arm)
	a.AddDrawable(hand)
	return a, torso, arm, hand
}

func TestActorSetRootAssociatesSubtree(t *testing.T) {
	a, torso, arm, hand := buildTestActor()
	if torso.Actor() != a || arm.Actor() != a || hand.Actor() != a {
		t.Fatal("actor association not propagated through the tree")
	}
}

func TestActorFindDrawable(t *testing.T) {
	a, _, arm, _ := buildTestActor()
	if got := a.FindDrawable("arm"); got != arm {
		t.Errorf("FindDrawable(arm) = %v, want the arm", got)
	}
	if got := a.FindDrawable("tail"); got != nil {
		t.Errorf("FindDrawable(tail) = %v, want nil", got)
	}
}

func TestActorPlaceUsesActorPosition(t *testing.T) {
	a, torso, arm, _ := buildTestActor()
	a.SetPosition(Vec2{300, 400})

	a.Place()

	assertVec(t, "root placed at actor position", torso.PlacedPosition(), Vec2{300, 400})
	assertVec(t, "arm placed", arm.PlacedPosition(), Vec2{320, 350})
}

func TestActorAnimateRecallsAndPlaces(t *testing.T) {
	a, _, arm, hand := buildTestActor()
	tl := NewTimeline()
	a.SetTimeline(tl)

	// Author two poses for the arm.
	tl.SetCurrentTime(0)
	arm.SetRotation(0)
	a.SetKeyframe()
	tl.SetCurrentTime(1.0)
	arm.SetRotation(math.Pi / 2)
	a.SetKeyframe()

	a.Animate(0.5)

	assertNear(t, "interpolated arm rotation", arm.Rotation(), math.Pi/4)
	assertNear(t, "hand inherits arm rotation", hand.PlacedRotation(), math.Pi/4)
	// Hand offset (30,4) rotated by π/4 from the arm's placed position (20,-50).
	wantX := 20 + (30*math.Cos(math.Pi/4) - 4*math.Sin(math.Pi/4))
	wantY := -50 + (30*math.Sin(math.Pi/4) + 4*math.Cos(math.Pi/4))
	assertVec(t, "hand placed", hand.PlacedPosition(), Vec2{wantX, wantY})
}

func TestActorSetTimelineRegistersAllChannels(t *testing.T) {
	a, _, _, _ := buildTestActor()
	tl := NewTimeline()
	a.SetTimeline(tl)
	if len(tl.Channels()) != 3 {
		t.Fatalf("registered channels = %d, want 3", len(tl.Channels()))
	}
	if a.Timeline() != tl {
		t.Fatal("timeline not stored on actor")
	}
}

func TestActorHitTestReturnsTopmost(t *testing.T) {
	a := NewActor("stack")
	back := NewPolygon("back")
	front := NewPolygon("front")
	for _, d := range []*Drawable{back, front} {
		d.AddPoint(Vec2{-10, -10})
		d.AddPoint(Vec2{10, -10})
		d.AddPoint(Vec2{10, 10})
		d.AddPoint(Vec2{-10, 10})
	}
	front.SetPosition(Vec2{5, 0})
	root := NewGroup("root")
	root.AddChild(back)
	root.AddChild(front)
	a.SetRoot(root)
	a.AddDrawable(back)
	a.AddDrawable(front)

	a.Place()

	// Overlap region: the front part was painted last, so it wins.
	if got := a.HitTest(Vec2{4, 0}); got != front {
		t.Errorf("HitTest(overlap) = %v, want front", got)
	}
	// Only the back part covers the far left.
	if got := a.HitTest(Vec2{-8, 0}); got != back {
		t.Errorf("HitTest(left) = %v, want back", got)
	}
	if got := a.HitTest(Vec2{100, 100}); got != nil {
		t.Errorf("HitTest(miss) = %v, want nil", got)
	}
}

func TestActorKeyframeSweepCoversEveryPart(t *testing.T) {
	a, torso, arm, hand := buildTestActor()
	tl := NewTimeline()
	a.SetTimeline(tl)

	tl.SetCurrentTime(2.0)
	torso.SetRotation(0.1)
	arm.SetRotation(0.2)
	hand.SetRotation(0.3)
	a.SetKeyframe()

	torso.SetRotation(0)
	arm.SetRotation(0)
	hand.SetRotation(0)
	a.GetKeyframe()

	assertNear(t, "torso recalled", torso.Rotation(), 0.1)
	assertNear(t, "arm recalled", arm.Rotation(), 0.2)
	assertNear(t, "hand recalled", hand.Rotation(), 0.3)
}
