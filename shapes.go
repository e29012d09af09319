package moonicon

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bezier control point distance for a quarter circle.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Circle is a circle in pixel space. Pixel (i, j) covers the unit square
// [i, i+1) x [j, j+1), so its center is at (i+0.5, j+0.5).
type Circle struct {
	CX, CY, R float64
}

// Bounds returns the smallest pixel rectangle that contains the circle.
func (c Circle) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(c.CX-c.R)), int(math.Floor(c.CY-c.R)),
		int(math.Ceil(c.CX+c.R)), int(math.Ceil(c.CY+c.R)),
	)
}

// addCircle appends a closed circle to the rasterizer, translated by
// -origin. Clockwise and counter-clockwise circles cancel where they
// overlap, which is how StrokeCircle punches the inner hole.
func addCircle(z *vector.Rasterizer, c Circle, origin image.Point, clockwise bool) {
	cx := float32(c.CX - float64(origin.X))
	cy := float32(c.CY - float64(origin.Y))
	r := float32(c.R)
	k := r * kappa

	z.MoveTo(cx+r, cy)
	if clockwise {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

// clipRasterizer returns a rasterizer covering the part of c that lies
// on pm, or false when c misses pm entirely.
func clipRasterizer(pm *Pixmap, c Circle) (*vector.Rasterizer, image.Rectangle, bool) {
	r := c.Bounds().Intersect(pm.Bounds())
	if r.Empty() {
		return nil, r, false
	}
	return vector.NewRasterizer(r.Dx(), r.Dy()), r, true
}

// composite draws col through the rasterizer's coverage onto the r
// region of pm, source-over.
func composite(pm *Pixmap, z *vector.Rasterizer, r image.Rectangle, col RGBA) {
	z.DrawOp = draw.Over
	z.Draw(pm.view(), r, image.NewUniform(col.NRGBA8()), image.Point{})
}

// FillCircle fills c with col using anti-aliased coverage. Only the
// pixels inside c's bounds are touched.
func FillCircle(pm *Pixmap, c Circle, col RGBA) {
	if c.R <= 0 {
		return
	}
	z, r, ok := clipRasterizer(pm, c)
	if !ok {
		return
	}
	addCircle(z, c, r.Min, true)
	composite(pm, z, r, col)
}

// StrokeCircle strokes a ring of the given width just inside the circle's
// boundary: the outer edge is c.R and the inner edge is c.R - width.
// A width of at least c.R fills the whole circle.
func StrokeCircle(pm *Pixmap, c Circle, width float64, col RGBA) {
	if c.R <= 0 || width <= 0 {
		return
	}
	z, r, ok := clipRasterizer(pm, c)
	if !ok {
		return
	}
	addCircle(z, c, r.Min, true)
	if inner := c.R - width; inner > 0 {
		addCircle(z, Circle{CX: c.CX, CY: c.CY, R: inner}, r.Min, false)
	}
	composite(pm, z, r, col)
}
