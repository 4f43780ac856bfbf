// Package colormap builds color lookup tables from named gradient
// definitions. It is able to:
// - Expand a palette's control points into several repeated cycles.
// - Map samples onto the [0,1] gradient, with gain and offset as the window.
// - Blend segments linearly in sRGB or through Msh (diverging color maps).
// - Resolve palette names case-insensitively.
//
// The built-in catalog is immutable and safe for concurrent use. All table
// builders write only to the caller's slice.
package colormap

import "github.com/irfansharif/colormap/internal/colorspace"

// RGB is one table entry.
type RGB = colorspace.RGB

// ID identifies a built-in palette.
type ID int

const (
	NotSpecified ID = 0

	// Linear palettes.
	GrayScale ID = iota
	Jet
	Rainbow
	RainbowWide
	Spectrum
	SpectrumWide
	Thermal
	ThermalWide

	// Diverging palettes.
	CoolWarm
	PurpleOrange
	GreenPurple
	BlueDarkYellow
	GreenRed

	Any ID = 32767
)

// SegmentType selects how a segment is blended. The type of a control point
// governs the segment between it and the next point.
type SegmentType int

const (
	Linear SegmentType = iota + 1
	Diverging
)

func (s SegmentType) String() string {
	switch s {
	case Linear:
		return "linear"
	case Diverging:
		return "diverging"
	}
	return "unknown"
}

// ControlPoint anchors a color at a position of the gradient.
type ControlPoint struct {
	Ratio float64
	Color RGB
	Type  SegmentType
}

// Palette is an ordered run of control points with non-decreasing ratios.
type Palette []ControlPoint

func lin(ratio float64, r, g, b uint8) ControlPoint {
	return ControlPoint{Ratio: ratio, Color: RGB{R: r, G: g, B: b}, Type: Linear}
}

func div(ratio float64, r, g, b uint8) ControlPoint {
	return ControlPoint{Ratio: ratio, Color: RGB{R: r, G: g, B: b}, Type: Diverging}
}

// catalog lists every built-in palette in display order.
var catalog = []struct {
	id     ID
	name   string
	points Palette
}{
	{GrayScale, "GrayScale", Palette{
		lin(0.0, 0, 0, 0),
		lin(1.0, 255, 255, 255),
	}},
	{Jet, "Jet", Palette{
		lin(0.0, 0, 0, 127),
		lin(0.1, 0, 0, 255),
		lin(0.35, 0, 255, 255),
		lin(0.5, 0, 255, 0),
		lin(0.65, 255, 255, 0),
		lin(0.9, 255, 0, 0),
		lin(1.0, 127, 0, 0),
	}},
	{Rainbow, "Rainbow", Palette{
		lin(0.0, 0, 0, 255),
		lin(0.25, 0, 255, 255),
		lin(0.5, 0, 255, 0),
		lin(0.75, 255, 255, 0),
		lin(1.0, 255, 0, 0),
	}},
	{RainbowWide, "RainbowWide", Palette{
		lin(0.0, 0, 0, 0),
		lin(0.1, 0, 0, 255),
		lin(0.3, 0, 255, 255),
		lin(0.5, 0, 255, 0),
		lin(0.7, 255, 255, 0),
		lin(0.9, 255, 0, 0),
		lin(1.0, 255, 255, 255),
	}},
	{Spectrum, "Spectrum", Palette{
		lin(0.0, 255, 0, 255),
		lin(0.1, 0, 0, 255),
		lin(0.3, 0, 255, 255),
		lin(0.45, 0, 255, 0),
		lin(0.6, 255, 255, 0),
		lin(1.0, 255, 0, 0),
	}},
	{SpectrumWide, "SpectrumWide", Palette{
		lin(0.0, 0, 0, 0),
		lin(0.1, 150, 0, 150),
		lin(0.2, 0, 0, 255),
		lin(0.35, 0, 255, 255),
		lin(0.5, 0, 255, 0),
		lin(0.6, 255, 255, 0),
		lin(0.9, 255, 0, 0),
		lin(1.0, 255, 255, 255),
	}},
	{Thermal, "Thermal", Palette{
		lin(0.0, 0, 0, 255),
		lin(0.5, 255, 0, 255),
		lin(1.0, 255, 255, 0),
	}},
	{ThermalWide, "ThermalWide", Palette{
		lin(0.0, 0, 0, 0),
		lin(0.05, 0, 0, 255),
		lin(0.5, 255, 0, 255),
		lin(0.95, 255, 255, 0),
		lin(1.0, 255, 255, 255),
	}},
	{CoolWarm, "CoolWarm", Palette{
		div(0.0, 59, 76, 192),
		div(1.0, 180, 4, 38),
	}},
	{PurpleOrange, "PurpleOrange", Palette{
		div(0.0, 111, 78, 161),
		div(1.0, 193, 85, 11),
	}},
	{GreenPurple, "GreenPurple", Palette{
		div(0.0, 21, 135, 51),
		div(1.0, 111, 78, 161),
	}},
	{BlueDarkYellow, "BlueDarkYellow", Palette{
		div(0.0, 55, 133, 232),
		div(1.0, 172, 125, 23),
	}},
	{GreenRed, "GreenRed", Palette{
		div(0.0, 21, 135, 51),
		div(1.0, 193, 54, 59),
	}},
}

// Lookup returns the control points of a built-in palette. The returned slice
// is shared and must not be modified.
func Lookup(id ID) (Palette, bool) {
	for _, e := range catalog {
		if e.id == id {
			return e.points, true
		}
	}
	return nil, false
}

// Repeat tiles the palette n times across [0,1]. Copy k has its ratios
// compressed into [k/n, (k+1)/n]. The result is freshly allocated; n < 1
// yields an empty palette.
func (p Palette) Repeat(n int) Palette {
	if n < 1 {
		return nil
	}
	single := 1.0 / float64(n)
	out := make(Palette, 0, len(p)*n)
	for k := 0; k < n; k++ {
		for _, cp := range p {
			cp.Ratio = cp.Ratio*single + single*float64(k)
			out = append(out, cp)
		}
	}
	return out
}
