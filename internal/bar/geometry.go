// Package bar turns a color table into triangles for the preview window: a
// framed horizontal bar with one swatch per table entry, in window pixels.
package bar

import (
	"fmt"

	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/geom"
)

// FloatsPerVertex is the stride of Vertices output: x, y, r, g, b.
const FloatsPerVertex = 5

const (
	marginFraction = 0.06 // horizontal margin around the bar, per side
	barFraction    = 0.3  // bar height relative to the viewport
	frameWidth     = 3.0  // pixels
)

var frameColor = colormap.RGB{R: 40, G: 40, B: 40}

// Layout returns where the color bar sits in a w x h viewport.
func Layout(w, h int) geom.Box {
	fw, fh := float64(w), float64(h)
	barH := fh * barFraction
	return geom.MakeBox(fw*marginFraction, (fh-barH)/2, fw*(1-2*marginFraction), barH)
}

// Vertices triangulates the framed color bar, one swatch per table entry,
// into interleaved position/color vertices.
func Vertices(tbl []colormap.RGB, box geom.Box) ([]float32, error) {
	if len(tbl) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	// Frame ring plus two triangles per swatch.
	vertices := make([]float32, 0, (len(tbl)*6+24)*FloatsPerVertex)

	outer, hole := box.Frame(frameWidth)
	tris, err := triangulate(outer, hole)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	vertices = appendTriangles(vertices, tris, frameColor)

	for i, col := range box.Columns(len(tbl)) {
		tris, err := triangulate(col.Corners(), nil)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		vertices = appendTriangles(vertices, tris, tbl[i])
	}
	return vertices, nil
}

func appendTriangles(dst []float32, tris [][3]geom.Point, c colormap.RGB) []float32 {
	r, g, b := float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0
	for _, tri := range tris {
		for _, p := range tri {
			dst = append(dst, float32(p.X), float32(p.Y), r, g, b)
		}
	}
	return dst
}

// Matrix4 converts an affine transform to OpenGL 4x4 matrix format.
func Matrix4(t geom.Affine) [16]float32 {
	return [16]float32{
		float32(t.A), float32(t.D), 0, 0,
		float32(t.B), float32(t.E), 0, 0,
		0, 0, 1, 0,
		float32(t.C), float32(t.F), 0, 1,
	}
}
