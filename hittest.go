package marionette

// HitTest reports whether the absolute-space point lies within this
// drawable's placed, rotated footprint. The query point is inverse-rotated
// into local space and tested against the variant's geometry, so the test is
// exact under rotation. Requires a placement pass for the current frame;
// groups have no footprint and never hit.
func (d *Drawable) HitTest(pos Vec2) bool {
	local := pos.Sub(d.placedPosition).Rotate(-d.placedRotation)
	switch d.Type {
	case DrawableTypePolygon:
		return pointInPolygon(local, d.Points)
	case DrawableTypeSprite:
		var iw, ih float64
		if d.Image != nil {
			b := d.Image.Bounds()
			iw, ih = float64(b.Dx()), float64(b.Dy())
		}
		return spriteLocalHit(local, d.Pivot, iw, ih, d.Size.X, d.Size.Y)
	default:
		return false
	}
}

// spriteLocalHit tests a local-space point against a sprite's footprint.
// The pivot is in image-pixel coordinates and the image is drawn scaled to
// size about the pivot, so the point is unscaled back into image coordinates
// before the bounds test — keeping picking in agreement with drawing.
// Without an image the footprint is size itself and the pivot shares its
// units.
func spriteLocalHit(local, pivot Vec2, imageW, imageH, sizeW, sizeH float64) bool {
	sx, sy := 1.0, 1.0
	if imageW > 0 && imageH > 0 {
		if sizeW > 0 && sizeH > 0 {
			sx = sizeW / imageW
			sy = sizeH / imageH
		}
	} else {
		imageW, imageH = sizeW, sizeH
	}
	x := local.X/sx + pivot.X
	y := local.Y/sy + pivot.Y
	return x >= 0 && x <= imageW && y >= 0 && y <= imageH
}

// pointInPolygon reports whether p lies inside the polygon by even-odd ray
// casting. Points on an edge may report either way; the picking UI treats
// that as acceptable.
func pointInPolygon(p Vec2, points []Vec2) bool {
	if len(points) < 3 {
		return false
	}
	inside := false
	j := len(points) - 1
	for i := 0; i < len(points); i++ {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			t := (p.Y - a.Y) / (b.Y - a.Y)
			if p.X < a.X+t*(b.X-a.X) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
