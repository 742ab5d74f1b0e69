package marionette

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout the
// API. Coordinates follow ebiten's convention: origin top-left, Y down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rotate returns v rotated by angle radians about the origin.
// This is the only coordinate-geometry primitive in the placement core;
// everything that rotates an offset goes through it.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill (no tint).
var ColorWhite = Color{1, 1, 1, 1}

// DrawableType distinguishes the rendering and hit-test behavior of a Drawable.
type DrawableType uint8

const (
	DrawableTypeGroup   DrawableType = iota // structural node with no visual output
	DrawableTypePolygon                     // solid-color polygon from local points
	DrawableTypeSprite                      // rotated image with a pivot
)

// whitePixelImage is a lazily created 1x1 white image used to fill polygons.
// Lazy so that importing the package never touches the graphics backend
// (tests of the geometry core run without one).
var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
