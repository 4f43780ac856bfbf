// Package colorspace converts colors along one fixed colorimetric path:
// - sRGB bytes <-> linear RGB
// - linear RGB <-> CIE XYZ (D65, or D50 adapted)
// - CIE XYZ <-> CIE L*a*b*
// - CIE L*a*b* <-> polar Msh (magnitude, saturation, hue)
//
// Every function is a pure mapping. The white point is selected with an
// Illuminant value passed in by the caller; a round trip must use the same
// Illuminant in both directions.
package colorspace

import (
	"fmt"
	"math"
	"strings"
)

// RGB is an 8-bit sRGB triple. Its memory layout is three consecutive bytes
// in R, G, B order.
type RGB struct {
	R, G, B uint8
}

// Linear is an RGB triple with the sRGB transfer curve removed.
type Linear struct {
	R, G, B float64
}

// XYZ is a CIE 1931 tristimulus value, normalized so that Y of the white
// point is 1.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// Msh is the polar form of Lab used for diverging color maps: M is the
// magnitude of the Lab vector, S the angle away from the L axis (radians, in
// [0, π]) and H the hue angle in the a*b* plane (radians).
type Msh struct {
	M, S, H float64
}

// Illuminant selects the reference white of the XYZ and Lab spaces.
type Illuminant int

const (
	D65 Illuminant = iota
	D50
)

func (il Illuminant) String() string {
	switch il {
	case D65:
		return "D65"
	case D50:
		return "D50"
	default:
		return fmt.Sprintf("Illuminant(%d)", int(il))
	}
}

// ParseIlluminant maps "d65" or "d50" (any case) to an Illuminant.
func ParseIlluminant(s string) (Illuminant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D65", "":
		return D65, nil
	case "D50":
		return D50, nil
	}
	return D65, fmt.Errorf("unknown illuminant %q (want D65 or D50)", s)
}

// WhitePoint returns the reference white in XYZ. Unknown values fall back to
// D65.
func (il Illuminant) WhitePoint() XYZ {
	if il == D50 {
		return XYZ{X: 0.9642, Y: 1.0, Z: 0.8249}
	}
	return XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}
}

// SRGBToLinear removes the sRGB transfer curve from one channel.
func SRGBToLinear(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.040450 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer curve to one channel and quantizes it
// to a byte. Results are rounded to nearest and clamped to [0, 255]; NaN maps
// to 0.
func LinearToSRGB(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	if v <= 0.0031308 {
		v = v * 12.92
	} else {
		v = 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	v = math.Floor(v*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToLinear converts an sRGB triple to linear RGB.
func ToLinear(c RGB) Linear {
	return Linear{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B)}
}

// FromLinear converts linear RGB to an sRGB triple.
func FromLinear(l Linear) RGB {
	return RGB{R: LinearToSRGB(l.R), G: LinearToSRGB(l.G), B: LinearToSRGB(l.B)}
}
