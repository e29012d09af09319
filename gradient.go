package moonicon

import (
	"sort"

	icolor "github.com/gogpu/moonicon/internal/color"
)

// Interpolation selects the color space gradients blend in.
type Interpolation = icolor.Space

const (
	// InterpolateSRGB blends gamma-encoded components, like most image
	// editors do. This is the default.
	InterpolateSRGB = icolor.SpaceSRGB
	// InterpolateLinear blends in linear light.
	InterpolateLinear = icolor.SpaceLinear
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradient represents a linear color transition between two points.
// Positions before Start take the first stop's color and positions past
// End take the last one.
//
// Example:
//
//	g := moonicon.NewLinearGradient(0, 0, 0, 127).
//	    AddColorStop(0, moonicon.Hex("#667eea")).
//	    AddColorStop(1, moonicon.Hex("#764ba2"))
//	moonicon.FillGradient(pm, g)
type LinearGradient struct {
	Start Point
	End   Point
	Stops []ColorStop
	Space Interpolation
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset and keeps the
// stops ordered. Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	sort.SliceStable(g.Stops, func(i, j int) bool {
		return g.Stops[i].Offset < g.Stops[j].Offset
	})
	return g
}

// SetSpace sets the interpolation space. Returns the gradient for method chaining.
func (g *LinearGradient) SetSpace(s Interpolation) *LinearGradient {
	g.Space = s
	return g
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.Stops[0].Color
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return g.colorAtOffset(clamp01(t))
}

// colorAtOffset interpolates between the two stops surrounding t.
func (g *LinearGradient) colorAtOffset(t float64) RGBA {
	stops := g.Stops
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	if g.Space == InterpolateSRGB {
		return s1.Color.Lerp(s2.Color, local)
	}
	return fromF32(icolor.Lerp(s1.Color.f32(), s2.Color.f32(), float32(local), g.Space))
}

// vertical reports whether the gradient only varies along Y.
func (g *LinearGradient) vertical() bool {
	return g.Start.X == g.End.X
}

// FillGradient paints every pixel of pm with the gradient, sampled at
// pixel centers. Vertical gradients are filled one row at a time.
func FillGradient(pm *Pixmap, g *LinearGradient) {
	if g.vertical() {
		for y := 0; y < pm.Height(); y++ {
			pm.FillRow(y, g.ColorAt(0, float64(y)+0.5))
		}
		return
	}
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			pm.SetPixel(x, y, g.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
