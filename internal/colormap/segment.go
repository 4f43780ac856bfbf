package colormap

import "github.com/irfansharif/colormap/internal/colorspace"

// segmentT returns the blend fraction of sample i of a segment rendered from
// offset into a virtual run of total samples. Indices past the end of the
// run stick to its last sample. A run of one sample has pitch 0.
func segmentT(i, offset, total int) float64 {
	s := i + offset
	if s > total-1 {
		s = total - 1
	}
	if s <= 0 {
		return 0
	}
	return float64(s) / float64(total-1)
}

// FillLinear writes len(dst) samples of the sRGB blend from c0 to c1. The
// segment spans total virtual samples of which dst receives the ones starting
// at offset.
func FillLinear(dst []RGB, c0, c1 RGB, offset, total int) {
	for i := range dst {
		t := segmentT(i, offset, total)
		dst[i] = RGB{
			R: lerpChannel(c0.R, c1.R, t),
			G: lerpChannel(c0.G, c1.G, t),
			B: lerpChannel(c0.B, c1.B, t),
		}
	}
}

// FillDiverging is FillLinear with the blend done by Interpolate.
func FillDiverging(dst []RGB, c0, c1 RGB, offset, total int, il colorspace.Illuminant) {
	for i := range dst {
		dst[i] = Interpolate(c0, c1, segmentT(i, offset, total), il)
	}
}

// lerpChannel blends one channel, truncating towards zero.
func lerpChannel(a, b uint8, t float64) uint8 {
	v := (1-t)*float64(a) + t*float64(b)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
