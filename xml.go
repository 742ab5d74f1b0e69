package marionette

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource resolves an asset name to an image. LoadActorXML and
// BuildActor call it for every sprite part, so the library itself never does
// asset I/O. A nil source leaves sprite images unresolved (the stored name
// and size are kept, which is enough for headless use).
type ImageSource func(name string) (*ebiten.Image, error)

// Document structures. Nested <drawable> elements mirror the part tree;
// each element carries its variant payload and its angle channel.

type xmlActor struct {
	XMLName xml.Name     `xml:"actor"`
	Name    string       `xml:"name,attr"`
	X       float64      `xml:"x,attr"`
	Y       float64      `xml:"y,attr"`
	Root    *xmlDrawable `xml:"drawable"`
}

type xmlDrawable struct {
	Name           string        `xml:"name,attr"`
	Type           string        `xml:"type,attr"`
	X              float64       `xml:"x,attr"`
	Y              float64       `xml:"y,attr"`
	Rotation       float64       `xml:"rotation,attr"`
	StartTime      float64       `xml:"start-time,attr,omitempty"`
	Movable        bool          `xml:"movable,attr,omitempty"`
	Image          string        `xml:"image,attr,omitempty"`
	PivotX         float64       `xml:"pivot-x,attr,omitempty"`
	PivotY         float64       `xml:"pivot-y,attr,omitempty"`
	SizeX          float64       `xml:"size-x,attr,omitempty"`
	SizeY          float64       `xml:"size-y,attr,omitempty"`
	Color          string        `xml:"color,attr,omitempty"`
	PositionSource string        `xml:"position-source,attr,omitempty"`
	Points         []xmlPoint    `xml:"point"`
	Keyframes      []xmlKeyframe `xml:"channel>keyframe"`
	Children       []xmlDrawable `xml:"drawable"`
}

type xmlPoint struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

type xmlKeyframe struct {
	Time   float64 `xml:"time,attr"`
	Angle  float64 `xml:"angle,attr"`
	Easing string  `xml:"easing,attr,omitempty"`
}

// SaveXML writes the actor — tree shape, local transforms, variant payloads,
// and every recorded keyframe — as an XML document. The painting order is
// not stored; LoadActorXML rebuilds it depth-first.
func (a *Actor) SaveXML(w io.Writer) error {
	doc := xmlActor{
		Name: a.name,
		X:    a.position.X,
		Y:    a.position.Y,
	}
	if a.root != nil {
		doc.Root = drawableToXML(a.root)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write actor %q: %w", a.name, err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode actor %q: %w", a.name, err)
	}
	return nil
}

func drawableToXML(d *Drawable) *xmlDrawable {
	x := &xmlDrawable{
		Name:      d.name,
		Type:      typeName(d.Type),
		X:         d.position.X,
		Y:         d.position.Y,
		Rotation:  d.rotation,
		StartTime: d.startTime,
		Movable:   d.Movable,
	}
	switch d.Type {
	case DrawableTypeSprite:
		x.Image = d.ImageName
		x.PivotX = d.Pivot.X
		x.PivotY = d.Pivot.Y
		x.SizeX = d.Size.X
		x.SizeY = d.Size.Y
	case DrawableTypePolygon:
		x.Color = formatColor(d.Color)
		for _, p := range d.Points {
			x.Points = append(x.Points, xmlPoint{X: p.X, Y: p.Y})
		}
	case DrawableTypeGroup:
		if d.positionSource != nil {
			x.PositionSource = d.positionSource.name
		}
	}
	for _, kf := range d.channel.Keyframes() {
		x.Keyframes = append(x.Keyframes, xmlKeyframe{
			Time:   kf.Time,
			Angle:  kf.Angle,
			Easing: kf.Easing,
		})
	}
	for _, child := range d.children {
		x.Children = append(x.Children, *drawableToXML(child))
	}
	return x
}

// LoadActorXML reads an actor saved by SaveXML. Sprite images are resolved
// through images (which may be nil). The painting order is rebuilt as a
// depth-first walk of the tree, back to front.
func LoadActorXML(r io.Reader, images ImageSource) (*Actor, error) {
	var doc xmlActor
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse actor XML: %w", err)
	}

	a := NewActor(doc.Name)
	a.position = Vec2{doc.X, doc.Y}
	if doc.Root == nil {
		return a, nil
	}

	root, err := drawableFromXML(doc.Root, images)
	if err != nil {
		return nil, err
	}
	a.SetRoot(root)

	// Deferred so forward references (a source deeper in the document) work.
	if err := resolvePositionSources(root, root); err != nil {
		return nil, err
	}

	addSubtreeInOrder(a, root)
	return a, nil
}

func drawableFromXML(x *xmlDrawable, images ImageSource) (*Drawable, error) {
	var d *Drawable
	switch x.Type {
	case "group":
		d = NewGroup(x.Name)
	case "polygon":
		d = NewPolygon(x.Name)
		c, err := parseColor(x.Color)
		if err != nil {
			return nil, fmt.Errorf("drawable %q: %w", x.Name, err)
		}
		d.Color = c
		for _, p := range x.Points {
			d.AddPoint(Vec2{p.X, p.Y})
		}
	case "sprite":
		var img *ebiten.Image
		if images != nil && x.Image != "" {
			var err error
			img, err = images(x.Image)
			if err != nil {
				return nil, fmt.Errorf("drawable %q: failed to resolve image %q: %w", x.Name, x.Image, err)
			}
		}
		d = NewSprite(x.Name, img)
		d.ImageName = x.Image
		d.Pivot = Vec2{x.PivotX, x.PivotY}
		if x.SizeX > 0 || x.SizeY > 0 {
			d.Size = Vec2{x.SizeX, x.SizeY}
		}
	default:
		return nil, fmt.Errorf("drawable %q: unknown type %q", x.Name, x.Type)
	}

	d.position = Vec2{x.X, x.Y}
	d.rotation = x.Rotation
	d.startTime = x.StartTime
	d.Movable = x.Movable
	for _, kf := range x.Keyframes {
		d.channel.SetKeyframeEased(kf.Time, kf.Angle, kf.Easing)
	}
	for i := range x.Children {
		child, err := drawableFromXML(&x.Children[i], images)
		if err != nil {
			return nil, err
		}
		d.AddChild(child)
	}

	// Stash the source name until the whole tree exists.
	if x.PositionSource != "" {
		d.pendingPositionSource = x.PositionSource
	}
	return d, nil
}

func resolvePositionSources(d, root *Drawable) error {
	if d.pendingPositionSource != "" {
		src := findInTree(root, d.pendingPositionSource)
		if src == nil {
			return fmt.Errorf("drawable %q: position source %q not found", d.name, d.pendingPositionSource)
		}
		d.positionSource = src
		d.pendingPositionSource = ""
	}
	for _, child := range d.children {
		if err := resolvePositionSources(child, root); err != nil {
			return err
		}
	}
	return nil
}

func findInTree(d *Drawable, name string) *Drawable {
	if d.name == name {
		return d
	}
	for _, child := range d.children {
		if found := findInTree(child, name); found != nil {
			return found
		}
	}
	return nil
}

func addSubtreeInOrder(a *Actor, d *Drawable) {
	a.AddDrawable(d)
	for _, child := range d.children {
		addSubtreeInOrder(a, child)
	}
}

// formatColor encodes a color as "r,g,b,a" with components in [0, 1].
func formatColor(c Color) string {
	return fmt.Sprintf("%g,%g,%g,%g", c.R, c.G, c.B, c.A)
}

// parseColor decodes "r,g,b,a"; the empty string is white.
func parseColor(s string) (Color, error) {
	if s == "" {
		return ColorWhite, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Color{}, fmt.Errorf("invalid color %q: want r,g,b,a", s)
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		vals[i] = v
	}
	return Color{vals[0], vals[1], vals[2], vals[3]}, nil
}
