package colorspace

import "math"

// labF is the CIE cube-root compression with its linear toe.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.78703*t + 16.0/116.0
}

// labFInv undoes labF. The knee 0.20689 is labF(0.008856).
func labFInv(t float64) float64 {
	if t > 0.20689 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.78703
}

// XYZToLab converts XYZ to L*a*b* relative to the given white.
func XYZToLab(c XYZ, il Illuminant) Lab {
	w := il.WhitePoint()
	fx := labF(c.X / w.X)
	fy := labF(c.Y / w.Y)
	fz := labF(c.Z / w.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ converts L*a*b* to XYZ relative to the given white.
func LabToXYZ(c Lab, il Illuminant) XYZ {
	w := il.WhitePoint()
	fy := (c.L + 16) / 116
	return XYZ{
		X: labFInv(fy+c.A/500) * w.X,
		Y: labFInv(fy) * w.Y,
		Z: labFInv(fy-c.B/200) * w.Z,
	}
}

// LabToMsh converts Lab to its polar Msh form.
//
// A zero-magnitude vector (pure black) has no defined saturation or hue; both
// are reported as 0. The cosine passed to acos is clamped to [-1, 1] so
// rounding on near-achromatic colors cannot produce NaN.
func LabToMsh(c Lab) Msh {
	m := math.Sqrt(c.L*c.L + c.A*c.A + c.B*c.B)
	if m == 0 {
		return Msh{}
	}
	cos := c.L / m
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return Msh{
		M: m,
		S: math.Acos(cos),
		H: math.Atan2(c.B, c.A),
	}
}

// MshToLab converts Msh back to Lab.
func MshToLab(c Msh) Lab {
	sinS := math.Sin(c.S)
	return Lab{
		L: c.M * math.Cos(c.S),
		A: c.M * sinS * math.Cos(c.H),
		B: c.M * sinS * math.Sin(c.H),
	}
}

// RGBToMsh runs the full sRGB -> linear -> XYZ -> Lab -> Msh chain.
func RGBToMsh(c RGB, il Illuminant) Msh {
	return LabToMsh(XYZToLab(LinearToXYZ(ToLinear(c), il), il))
}

// MshToRGB runs the inverse of RGBToMsh, clamping to the sRGB gamut.
func MshToRGB(c Msh, il Illuminant) RGB {
	return FromLinear(XYZToLinear(LabToXYZ(MshToLab(c), il), il))
}
