package colormap

import (
	"math"

	"github.com/irfansharif/colormap/internal/colorspace"
)

const (
	// Below this Msh saturation a color counts as achromatic.
	unsaturated = 0.05
	// Hue difference (60°) past which a blend pivots through white.
	maxHueSpread = 1.0472
	// Minimum magnitude of the pivot point.
	minPivotM = 88.0
)

// Interpolate blends c0 into c1 at t in [0,1] along Moreland's diverging
// path in Msh space.
//
// Two saturated endpoints whose hues are more than 60° apart are blended in
// two halves through an unsaturated pivot of magnitude max(88, M0, M1), so
// the middle of the map becomes white instead of a muddy gray. When exactly
// one endpoint is unsaturated its hue is spun towards the saturated one.
func Interpolate(c0, c1 RGB, t float64, il colorspace.Illuminant) RGB {
	m0 := colorspace.RGBToMsh(c0, il)
	m1 := colorspace.RGBToMsh(c1, il)

	if m0.S > unsaturated && m1.S > unsaturated && math.Abs(m0.H-m1.H) > maxHueSpread {
		pivot := colorspace.Msh{M: math.Max(minPivotM, math.Max(m0.M, m1.M))}
		if t < 0.5 {
			m1 = pivot
			t = 2 * t
		} else {
			m0 = pivot
			t = 2*t - 1
		}
	}

	if m0.S <= unsaturated && m1.S > unsaturated {
		m0.H = adjustHue(m1, m0.M)
	} else if m0.S > unsaturated && m1.S <= unsaturated {
		m1.H = adjustHue(m0, m1.M)
	}

	m := colorspace.Msh{
		M: (1-t)*m0.M + t*m1.M,
		S: (1-t)*m0.S + t*m1.S,
		H: (1-t)*m0.H + t*m1.H,
	}
	return colorspace.MshToRGB(m, il)
}

// adjustHue picks a hue for an unsaturated endpoint of magnitude munsat that
// is being blended with the saturated color sat.
func adjustHue(sat colorspace.Msh, munsat float64) float64 {
	if sat.M >= munsat {
		return sat.H
	}
	spin := sat.S * math.Sqrt(munsat*munsat-sat.M*sat.M) / (sat.M * math.Sin(sat.S))
	if sat.H > -maxHueSpread {
		return sat.H + spin
	}
	return sat.H - spin
}
