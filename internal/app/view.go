package app

import (
	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/colorspace"
)

const (
	minGain   = 1.0 / 16
	maxGain   = 16.0
	maxRepeat = 64
	minGamma  = 0.1
	maxGamma  = 10.0
)

// View holds the table parameters being previewed.
type View struct {
	Samples    int
	Repeat     int
	Gain       float64
	Offset     int
	Gamma      float64
	Mono       bool
	Illuminant colorspace.Illuminant
}

// NewView creates a view with default parameters.
func NewView(samples int, il colorspace.Illuminant) *View {
	if samples < 2 {
		samples = 2
	}
	return &View{
		Samples:    samples,
		Repeat:     1,
		Gain:       1.0,
		Gamma:      1.0,
		Illuminant: il,
	}
}

// SetGain sets the gain, clamping to valid range.
func (v *View) SetGain(gain float64) {
	if gain < minGain {
		v.Gain = minGain
	} else if gain > maxGain {
		v.Gain = maxGain
	} else {
		v.Gain = gain
	}
}

// SetRepeat sets the number of palette cycles, clamping to [1, maxRepeat].
func (v *View) SetRepeat(n int) {
	v.Repeat = max(1, min(n, maxRepeat))
}

// SetGamma sets the mono ramp gamma, clamping to valid range.
func (v *View) SetGamma(g float64) {
	if g < minGamma {
		v.Gamma = minGamma
	} else if g > maxGamma {
		v.Gamma = maxGamma
	} else {
		v.Gamma = g
	}
}

// Shift moves the offset by delta samples.
func (v *View) Shift(delta int) {
	v.Offset += delta
}

// Reset restores gain, offset, repeat and gamma.
func (v *View) Reset() {
	v.Repeat = 1
	v.Gain = 1.0
	v.Offset = 0
	v.Gamma = 1.0
}

// Params returns the table parameters for the colormap engine.
func (v *View) Params() colormap.Params {
	return colormap.Params{
		Repeat:     v.Repeat,
		Gain:       v.Gain,
		Offset:     v.Offset,
		Illuminant: v.Illuminant,
	}
}
