package colorspace

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float64

func (m *mat3) mul(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// sRGB primaries with a D65 white.
var (
	linearToXYZD65 = mat3{
		{0.412391, 0.357584, 0.180481},
		{0.212639, 0.715169, 0.072192},
		{0.019331, 0.119195, 0.950532},
	}
	xyzD65ToLinear = mat3{
		{3.240970, -1.537383, -0.498611},
		{-0.969244, 1.875968, 0.041555},
		{0.055630, -0.203977, 1.056972},
	}
)

// sRGB primaries Bradford-adapted to a D50 white.
var (
	linearToXYZD50 = mat3{
		{0.436041, 0.385113, 0.143046},
		{0.222485, 0.716905, 0.060610},
		{0.013920, 0.097067, 0.713913},
	}
	xyzD50ToLinear = mat3{
		{3.134187, -1.617209, -0.490694},
		{-0.978749, 1.916130, 0.033433},
		{0.071964, -0.228994, 1.405754},
	}
)

func (il Illuminant) matrices() (toXYZ, fromXYZ *mat3) {
	if il == D50 {
		return &linearToXYZD50, &xyzD50ToLinear
	}
	return &linearToXYZD65, &xyzD65ToLinear
}

// LinearToXYZ converts linear sRGB to XYZ relative to the given white.
func LinearToXYZ(l Linear, il Illuminant) XYZ {
	m, _ := il.matrices()
	x, y, z := m.mul(l.R, l.G, l.B)
	return XYZ{X: x, Y: y, Z: z}
}

// XYZToLinear converts XYZ relative to the given white to linear sRGB. The
// result is not clamped; out-of-gamut colors have components outside [0, 1].
func XYZToLinear(c XYZ, il Illuminant) Linear {
	_, m := il.matrices()
	r, g, b := m.mul(c.X, c.Y, c.Z)
	return Linear{R: r, G: g, B: b}
}
