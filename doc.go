// Package marionette is a keyframe character-animation library for
// [Ebitengine].
//
// A character ("actor") is a tree of rigid parts ("drawables"). Each part
// carries a position and rotation relative to its parent; a placement pass
// composes those top-down into absolute transforms. Each part's rotation can
// be keyframed on a shared timeline, and sparse keyframes are interpolated
// into a continuous pose at any time.
//
// # Quick start
//
// Build a part tree, wire it to an actor and timeline, and animate:
//
//	torso := marionette.NewPolygon("torso")
//	torso.AddPoint(marionette.Vec2{X: -30, Y: 0})
//	torso.AddPoint(marionette.Vec2{X: 30, Y: 0})
//	torso.AddPoint(marionette.Vec2{X: 0, Y: -80})
//
//	arm := marionette.NewPolygon("arm")
//	arm.SetPosition(marionette.Vec2{X: 20, Y: -60})
//	torso.AddChild(arm)
//
//	actor := marionette.NewActor("harold")
//	actor.SetRoot(torso)
//	actor.AddDrawable(torso)
//	actor.AddDrawable(arm)
//	actor.SetTimeline(marionette.NewTimeline())
//
//	// Record a pose, then play it back.
//	arm.SetRotation(0.7)
//	actor.Timeline().SetCurrentTime(1.5)
//	actor.SetKeyframe()
//	actor.Animate(0.75) // recall + place at t=0.75s
//
// Inside an [ebiten.Game], call actor.Draw(screen) from Draw; it runs the
// placement pass and paints parts in the actor's back-to-front order.
//
// # Keyframes
//
// Each drawable owns one angle channel. Evaluation clamps flat outside the
// authored range, interpolates along the shortest angular arc between
// bracketing keyframes, and accepts a named easing curve per keyframe (the
// [gween] easing vocabulary).
//
// # Persistence
//
// Actors round-trip through XML ([Actor.SaveXML], [LoadActorXML]), and rigs
// can be declared in YAML ([LoadRig], [BuildActor]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package marionette
