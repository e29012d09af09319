// Package color provides the transfer functions moonicon uses to blend
// colors in linear light and to quantize them to 8-bit channels.
package color

import "math"

// Space selects the space in which two colors are interpolated.
type Space uint8

const (
	// SpaceSRGB blends gamma-encoded components directly.
	SpaceSRGB Space = iota
	// SpaceLinear decodes to linear light, blends, then re-encodes.
	SpaceLinear
)

// String returns the name of the space.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "srgb"
	case SpaceLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// F32 is a color with float32 components in [0,1].
// Alpha is always linear.
type F32 struct {
	R, G, B, A float32
}

// SRGBToLinear decodes one sRGB component (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB encodes one linear component (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// Lerp interpolates a toward b by t in the given space.
// Alpha is interpolated linearly in both spaces.
func Lerp(a, b F32, t float32, space Space) F32 {
	if space != SpaceLinear {
		return F32{
			R: lerp32(a.R, b.R, t),
			G: lerp32(a.G, b.G, t),
			B: lerp32(a.B, b.B, t),
			A: lerp32(a.A, b.A, t),
		}
	}
	return F32{
		R: LinearToSRGB(lerp32(SRGBToLinear(a.R), SRGBToLinear(b.R), t)),
		G: LinearToSRGB(lerp32(SRGBToLinear(a.G), SRGBToLinear(b.G), t)),
		B: LinearToSRGB(lerp32(SRGBToLinear(a.B), SRGBToLinear(b.B), t)),
		A: lerp32(a.A, b.A, t),
	}
}

func lerp32(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Quantize maps a component in [0,1] to [0,255], rounding to nearest.
// Out-of-range input is clamped.
func Quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
