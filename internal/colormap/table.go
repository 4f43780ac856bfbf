package colormap

import (
	"math"

	"github.com/irfansharif/colormap/internal/colorspace"
)

// Params controls how a palette is mapped onto a table.
type Params struct {
	// Repeat tiles the palette this many times; values below 1 produce a
	// black table.
	Repeat int
	// Gain scales the palette: ratios are divided by Gain, so 2 squeezes the
	// palette into the first half of the table and 0.5 spreads its first half
	// over the whole table. Non-positive or NaN gains produce a black table.
	Gain float64
	// Offset shifts the palette by this many samples; positive values move
	// later colors to the start.
	Offset int
	// Illuminant is the white point used by diverging segments.
	Illuminant colorspace.Illuminant
}

// DefaultParams renders one cycle of a palette with no gain or offset.
func DefaultParams() Params {
	return Params{Repeat: 1, Gain: 1, Illuminant: colorspace.D65}
}

// Table allocates and fills an n-entry table for a built-in palette.
func Table(id ID, n int, p Params) []RGB {
	if n < 0 {
		n = 0
	}
	dst := make([]RGB, n)
	Fill(dst, id, p)
	return dst
}

// Fill renders a built-in palette into dst. Unknown ids give a black table.
func Fill(dst []RGB, id ID, p Params) {
	pal, _ := Lookup(id)
	FillPalette(dst, pal, p)
}

// FillPalette renders pal into every entry of dst.
//
// Each control point is placed at ratio/Gain - Offset/len(dst) of the table.
// Samples before the first point repeat its color and samples past the last
// rendered point repeat the end color. Segment lengths are differences of
// truncated positions, so rounding does not accumulate from one segment to
// the next; a segment ending exactly at 1.0 takes all remaining samples.
func FillPalette(dst []RGB, pal Palette, p Params) {
	n := len(dst)
	points := pal.Repeat(p.Repeat)
	if len(points) < 2 || !(p.Gain > 0) || n == 0 {
		clear(dst)
		return
	}

	offsetRatio := float64(p.Offset) / float64(n)
	window := func(i int) float64 { return points[i].Ratio/p.Gain - offsetRatio }

	total := 0
	ratio0 := window(0)
	if ratio0 > 0 {
		num := min(position(ratio0, n), n)
		for i := 0; i < num; i++ {
			dst[i] = points[0].Color
		}
		total = num
	}

	last := points[0].Color
	for index := 0; index+1 < len(points) && total < n; index++ {
		ratio1 := window(index + 1)
		c0, c1 := points[index].Color, points[index+1].Color
		last = c1
		if ratio1 <= 0 {
			ratio0 = ratio1
			continue
		}

		var numAll int
		if ratio1 == 1.0 {
			numAll = n - total
		} else {
			numAll = position(ratio1, n) - position(ratio0, n)
		}

		num, offset := numAll, 0
		if ratio0 < 0 {
			if ratio1 < 1.0 {
				num = position(ratio1, n) - total
			} else {
				num = n - total
			}
			offset = position(-ratio0, n)
		}
		num = max(0, min(num, n-total))

		seg := dst[total : total+num]
		switch points[index].Type {
		case Diverging:
			FillDiverging(seg, c0, c1, offset, numAll, p.Illuminant)
		default:
			FillLinear(seg, c0, c1, offset, numAll)
		}
		total += num
		ratio0 = ratio1
	}

	for i := total; i < n; i++ {
		dst[i] = last
	}
}

// maxVirtual bounds a virtual sample position so it fits in an int on every
// platform.
const maxVirtual = 1 << 30

// position converts a windowed ratio to a virtual sample index, truncating
// towards zero.
func position(ratio float64, n int) int {
	return int(max(-maxVirtual, min(ratio*float64(n), maxVirtual)))
}

// FillMono writes a gray ramp v = ((i+offset)/(n-1)*gain)^(1/gamma) into
// dst. Non-positive gamma or gain give a black table.
func FillMono(dst []RGB, gamma, gain float64, offset int) {
	n := len(dst)
	if gamma <= 0 || gain <= 0 || n == 0 {
		clear(dst)
		return
	}
	var pitch float64
	if n > 1 {
		pitch = 1 / float64(n-1)
	}
	inv := 1 / gamma
	for i := range dst {
		v := pitch * float64(i+offset) * gain
		v = math.Max(0, math.Min(1, v))
		v = math.Floor(math.Pow(v, inv)*255 + 0.5)
		g := uint8(math.Min(255, v))
		dst[i] = RGB{R: g, G: g, B: g}
	}
}

// Mono allocates and fills an n-entry gray ramp.
func Mono(n int, gamma, gain float64, offset int) []RGB {
	if n < 0 {
		n = 0
	}
	dst := make([]RGB, n)
	FillMono(dst, gamma, gain, offset)
	return dst
}

// Bytes flattens a table into consecutive R, G, B bytes.
func Bytes(tbl []RGB) []byte {
	out := make([]byte, 0, 3*len(tbl))
	for _, c := range tbl {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
