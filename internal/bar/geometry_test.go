package bar

import (
	"math"
	"testing"

	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/geom"
)

func triArea(t [3]geom.Point) float64 {
	return math.Abs((t[1].X-t[0].X)*(t[2].Y-t[0].Y)-(t[2].X-t[0].X)*(t[1].Y-t[0].Y)) / 2
}

func TestTriangulateBox(t *testing.T) {
	b := geom.MakeBox(10, 10, 40, 20)
	tris, err := triangulate(b.Corners(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	var area float64
	for _, tri := range tris {
		area += triArea(tri)
	}
	if math.Abs(area-800) > 1e-9 {
		t.Errorf("area = %v, want 800", area)
	}
}

func TestTriangulateFrame(t *testing.T) {
	outer, hole := geom.MakeBox(0, 0, 100, 50).Frame(5)
	tris, err := triangulate(outer, hole)
	if err != nil {
		t.Fatal(err)
	}
	var area float64
	for _, tri := range tris {
		area += triArea(tri)
	}
	if want := 110.0*60 - 100*50; math.Abs(area-want) > 1e-9 {
		t.Errorf("ring area = %v, want %v", area, want)
	}
	if _, err := triangulate(outer[:2], nil); err == nil {
		t.Error("want error for degenerate polygon")
	}
}

func TestVertices(t *testing.T) {
	tbl := colormap.Table(colormap.Rainbow, 16, colormap.DefaultParams())
	bar := Layout(800, 600)
	verts, err := Vertices(tbl, bar)
	if err != nil {
		t.Fatal(err)
	}
	const frameVerts = 8 * 3
	if got, want := len(verts), (frameVerts+len(tbl)*6)*FloatsPerVertex; got != want {
		t.Fatalf("len(vertices) = %d, want %d", got, want)
	}
	for i, c := range tbl {
		base := (frameVerts + i*6) * FloatsPerVertex
		for v := 0; v < 6; v++ {
			off := base + v*FloatsPerVertex
			r, g, b := verts[off+2], verts[off+3], verts[off+4]
			if r != float32(c.R)/255 || g != float32(c.G)/255 || b != float32(c.B)/255 {
				t.Fatalf("swatch %d vertex %d color = (%v,%v,%v), want %v", i, v, r, g, b, c)
			}
			x := float64(verts[off])
			if x < bar.X-1e-3 || x > bar.X+bar.W+1e-3 {
				t.Fatalf("swatch %d vertex %d x=%v outside bar", i, v, x)
			}
		}
	}
	if _, err := Vertices(nil, bar); err == nil {
		t.Error("want error for empty table")
	}
}

func TestMatrix4(t *testing.T) {
	m := Matrix4(geom.ScreenToNDC(200, 100))
	// Column-major: x' = m[0]*x + m[4]*y + m[12].
	x, y := float32(200), float32(100)
	if got := m[0]*x + m[4]*y + m[12]; math.Abs(float64(got-1)) > 1e-6 {
		t.Errorf("x' = %v, want 1", got)
	}
	if got := m[1]*x + m[5]*y + m[13]; math.Abs(float64(got+1)) > 1e-6 {
		t.Errorf("y' = %v, want -1", got)
	}
}
