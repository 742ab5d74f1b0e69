package marionette

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// toRGBA converts to the standard library color type for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Draw paints this drawable onto screen using only its placed transform —
// ancestors are never re-derived here, so a placement pass must precede Draw
// in the same frame. Drawing does not recurse: the actor paints parts in its
// explicit back-to-front order.
func (d *Drawable) Draw(screen *ebiten.Image) {
	switch d.Type {
	case DrawableTypeSprite:
		d.drawSprite(screen)
	case DrawableTypePolygon:
		d.drawPolygon(screen)
	}
}

func (d *Drawable) drawSprite(screen *ebiten.Image) {
	if d.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-d.Pivot.X, -d.Pivot.Y)
	b := d.Image.Bounds()
	if d.Size.X > 0 && d.Size.Y > 0 && (float64(b.Dx()) != d.Size.X || float64(b.Dy()) != d.Size.Y) {
		op.GeoM.Scale(d.Size.X/float64(b.Dx()), d.Size.Y/float64(b.Dy()))
	}
	op.GeoM.Rotate(d.placedRotation)
	op.GeoM.Translate(d.placedPosition.X, d.placedPosition.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(d.Image, op)
}

// drawPolygon fills the placed polygon as a triangle fan over the shared
// white pixel. Correct for convex outlines, which is what actor parts use.
func (d *Drawable) drawPolygon(screen *ebiten.Image) {
	n := len(d.Points)
	if n < 3 {
		return
	}

	vertices := make([]ebiten.Vertex, n)
	for i, p := range d.Points {
		w := d.placedPosition.Add(p.Rotate(d.placedRotation))
		vertices[i] = ebiten.Vertex{
			DstX:   float32(w.X),
			DstY:   float32(w.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(d.Color.R),
			ColorG: float32(d.Color.G),
			ColorB: float32(d.Color.B),
			ColorA: float32(d.Color.A),
		}
	}

	indices := make([]uint16, 0, (n-2)*3)
	for i := 2; i < n; i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whitePixel(), op)
}
