package marionette

import (
	"strings"
	"testing"
)

const testRigYAML = `
name: sparty
position: {x: 520, y: 440}
draw_order: [torso, leftarm, head]
root:
  name: torso
  type: polygon
  color: "0.0,0.4,0.2,1"
  points:
    - {x: -25, y: 0}
    - {x: 25, y: 0}
    - {x: 25, y: -80}
    - {x: -25, y: -80}
  children:
    - name: leftarm
      type: polygon
      position: {x: -25, y: -70}
      rotation: 0.3
      movable: true
      color: "0.0,0.4,0.2,1"
      points:
        - {x: 0, y: 0}
        - {x: -8, y: 45}
        - {x: 8, y: 45}
    - name: head
      type: sprite
      position: {x: 0, y: -80}
      image: sparty_head
      pivot: {x: 20, y: 40}
      size: {x: 40, y: 40}
      start_time: 0.25
`

func TestLoadRigAndBuildActor(t *testing.T) {
	rig, err := LoadRig(strings.NewReader(testRigYAML))
	if err != nil {
		t.Fatalf("LoadRig: %v", err)
	}
	a, err := BuildActor(rig, nil)
	if err != nil {
		t.Fatalf("BuildActor: %v", err)
	}

	if a.Name() != "sparty" {
		t.Errorf("actor name = %q", a.Name())
	}
	assertVec(t, "actor position", a.Position(), Vec2{520, 440})

	torso := a.Root()
	if torso == nil || torso.Type != DrawableTypePolygon || len(torso.Points) != 4 {
		t.Fatalf("unexpected root: %+v", torso)
	}
	if torso.Color != (Color{0, 0.4, 0.2, 1}) {
		t.Errorf("torso color = %+v", torso.Color)
	}

	arm := a.FindDrawable("leftarm")
	if arm == nil || arm.Parent() != torso || !arm.Movable {
		t.Fatal("leftarm missing, reparented, or not movable")
	}
	assertNear(t, "arm rotation", arm.Rotation(), 0.3)

	head := a.FindDrawable("head")
	if head == nil || head.Type != DrawableTypeSprite {
		t.Fatal("head missing or wrong type")
	}
	if head.ImageName != "sparty_head" {
		t.Errorf("head image = %q", head.ImageName)
	}
	assertVec(t, "head pivot", head.Pivot, Vec2{20, 40})
	assertVec(t, "head size", head.Size, Vec2{40, 40})
	assertNear(t, "head start time", head.StartTime(), 0.25)

	// Painting order follows the declared draw_order, not tree order.
	order := a.Drawables()
	if len(order) != 3 || order[0].Name() != "torso" || order[1].Name() != "leftarm" || order[2].Name() != "head" {
		t.Errorf("painting order = %v", order)
	}
}

func TestLoadRigRejectsUnknownFields(t *testing.T) {
	bad := `
name: typo
root:
  name: torso
  type: polygon
  colour: "1,1,1,1"
`
	if _, err := LoadRig(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadRigRequiresRoot(t *testing.T) {
	if _, err := LoadRig(strings.NewReader("name: empty\n")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestBuildActorUnknownDrawOrderName(t *testing.T) {
	rig := &Rig{
		Name:      "broken",
		DrawOrder: []string{"torso", "ghost"},
		Root:      &RigDrawable{Name: "torso", Type: "group"},
	}
	if _, err := BuildActor(rig, nil); err == nil {
		t.Fatal("expected error for unknown draw_order name")
	}
}

func TestBuildActorDefaultsToTreeOrder(t *testing.T) {
	rig := &Rig{
		Name: "plain",
		Root: &RigDrawable{
			Name: "root", Type: "group",
			Children: []RigDrawable{
				{Name: "a", Type: "group"},
				{Name: "b", Type: "group"},
			},
		},
	}
	a, err := BuildActor(rig, nil)
	if err != nil {
		t.Fatalf("BuildActor: %v", err)
	}
	order := a.Drawables()
	if len(order) != 3 || order[0].Name() != "root" || order[1].Name() != "a" || order[2].Name() != "b" {
		t.Errorf("painting order = %v", order)
	}
}

func TestBuildActorResolvesPositionSource(t *testing.T) {
	rig := &Rig{
		Name: "headcase",
		Root: &RigDrawable{
			Name: "head", Type: "group", PositionSource: "headtop",
			Children: []RigDrawable{
				{Name: "headtop", Type: "polygon", Position: Vec2{0, -30}},
			},
		},
	}
	a, err := BuildActor(rig, nil)
	if err != nil {
		t.Fatalf("BuildActor: %v", err)
	}
	head := a.Root()
	if head.PositionSource() != a.FindDrawable("headtop") {
		t.Fatal("position source not resolved")
	}
	assertVec(t, "delegated position", head.Position(), Vec2{0, -30})
}
