package moonicon

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/draw"
)

// Render errors.
var (
	// ErrInvalidSize is returned when an icon size is not positive.
	ErrInvalidSize = errors.New("moonicon: invalid icon size")

	// ErrInvalidStyle is returned when a Style has negative proportions
	// or a non-positive outline divisor.
	ErrInvalidStyle = errors.New("moonicon: invalid style")
)

// Style holds the colors and proportions of the icon.
// Proportions are fractions of the icon size (MoonScale) or of the
// moon radius (the shadow fields).
type Style struct {
	Top    RGBA // background color of the first row
	Bottom RGBA // background color of the last row
	Space  Interpolation

	Moon   RGBA
	Shadow RGBA

	MoonScale     float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	ShadowScale   float64

	Outline        RGBA
	OutlineMinSize int // outline is drawn for sizes >= OutlineMinSize
	OutlineDivisor int // outline width is max(1, size/OutlineDivisor)
}

// DefaultStyle returns the purple night-sky style: a #667eea to #764ba2
// gradient with a white crescent and a white rim on larger sizes.
func DefaultStyle() Style {
	return Style{
		Top:    Hex("#667eea"),
		Bottom: Hex("#764ba2"),
		Space:  InterpolateSRGB,

		Moon:   White,
		Shadow: RGB8(94, 100, 198),

		MoonScale:     0.35,
		ShadowOffsetX: 0.4,
		ShadowOffsetY: -0.2,
		ShadowScale:   0.85,

		Outline:        White,
		OutlineMinSize: 48,
		OutlineDivisor: 32,
	}
}

func (s Style) validate() error {
	if s.MoonScale < 0 || s.ShadowScale < 0 {
		return fmt.Errorf("%w: negative scale", ErrInvalidStyle)
	}
	if s.OutlineDivisor <= 0 {
		return fmt.Errorf("%w: outline divisor %d", ErrInvalidStyle, s.OutlineDivisor)
	}
	return nil
}

// background returns the vertical gradient for a square of the given
// size, arranged so the first and last rows sample the end stops exactly.
func (s Style) background(size int) *LinearGradient {
	return NewLinearGradient(0, 0.5, 0, float64(size)-0.5).
		AddColorStop(0, s.Top).
		AddColorStop(1, s.Bottom).
		SetSpace(s.Space)
}

// Geometry is the integer layout of the moon within an icon.
// Pixel coordinates follow the convention of a bounding box: the moon
// covers pixels CX-Radius through CX+Radius inclusive.
type Geometry struct {
	Size         int
	CX, CY       int
	Radius       int
	ShadowCX     int
	ShadowCY     int
	ShadowRadius int
	Outline      bool
	OutlineWidth int
}

// MoonGeometry computes the moon layout for an icon of the given size.
// All fractional results are truncated toward zero.
func MoonGeometry(size int, s Style) Geometry {
	r := int(float64(size) * s.MoonScale)
	g := Geometry{
		Size:         size,
		CX:           size / 2,
		CY:           size / 2,
		Radius:       r,
		ShadowCX:     size/2 + int(float64(r)*s.ShadowOffsetX),
		ShadowCY:     size/2 + int(float64(r)*s.ShadowOffsetY),
		ShadowRadius: int(float64(r) * s.ShadowScale),
		Outline:      size >= s.OutlineMinSize,
	}
	if g.Outline {
		g.OutlineWidth = max(1, size/s.OutlineDivisor)
	}
	return g
}

// pixelCircle converts an inclusive pixel bounding box around (cx, cy)
// into a continuous circle, scaled by n.
func pixelCircle(cx, cy, r, n int) Circle {
	f := float64(n)
	return Circle{
		CX: (float64(cx) + 0.5) * f,
		CY: (float64(cy) + 0.5) * f,
		R:  (float64(r) + 0.5) * f,
	}
}

// MoonCircle returns the lit disc in pixel space.
func (g Geometry) MoonCircle() Circle {
	return pixelCircle(g.CX, g.CY, g.Radius, 1)
}

// ShadowCircle returns the carving disc in pixel space.
func (g Geometry) ShadowCircle() Circle {
	return pixelCircle(g.ShadowCX, g.ShadowCY, g.ShadowRadius, 1)
}

// LogValue implements slog.LogValuer.
func (g Geometry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", g.Size),
		slog.Int("radius", g.Radius),
		slog.Int("shadow_radius", g.ShadowRadius),
		slog.Int("outline_width", g.OutlineWidth),
	)
}

// Render draws a size x size crescent-moon icon.
//
// The background is a vertical gradient from Style.Top to Style.Bottom.
// A Moon-colored disc is drawn in the center and partly covered by a
// Shadow-colored disc, leaving a crescent. Sizes of at least
// Style.OutlineMinSize also get a thin ring along the moon's edge.
// The result depends only on size and options.
func Render(size int, opts ...Option) (*Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	o := buildOptions(opts)
	if err := o.style.validate(); err != nil {
		return nil, err
	}
	return render(size, o), nil
}

func render(size int, o options) *Pixmap {
	s := o.style
	n := o.supersample
	g := MoonGeometry(size, s)
	Logger().Debug("moonicon: render", "geometry", g, "supersample", n)

	pm := NewPixmap(size*n, size*n)
	FillGradient(pm, s.background(size*n))

	moon := pixelCircle(g.CX, g.CY, g.Radius, n)
	FillCircle(pm, moon, s.Moon)
	FillCircle(pm, pixelCircle(g.ShadowCX, g.ShadowCY, g.ShadowRadius, n), s.Shadow)

	if g.Outline {
		StrokeCircle(pm, moon, float64(g.OutlineWidth*n), s.Outline)
	}

	if n == 1 {
		return pm
	}
	return downsample(pm, size)
}

// downsample scales src to a size x size pixmap.
func downsample(src *Pixmap, size int) *Pixmap {
	dst := NewPixmap(size, size)
	dv, sv := dst.view(), src.view()
	draw.CatmullRom.Scale(dv, dv.Rect, sv, sv.Rect, draw.Src, nil)
	return dst
}
