package bar

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/colormap/internal/geom"
)

// triangulate splits a polygon, optionally with one hole, into triangles
// using the earcut algorithm.
func triangulate(outline, hole []geom.Point) ([][3]geom.Point, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(outline))
	}

	// Flatten to [x0, y0, x1, y1, ...]; hole vertices follow the outline.
	coords := make([]float64, 0, 2*(len(outline)+len(hole)))
	for _, p := range outline {
		coords = append(coords, p.X, p.Y)
	}
	var holeIndices []int
	if len(hole) >= 3 {
		holeIndices = []int{len(outline)}
		for _, p := range hole {
			coords = append(coords, p.X, p.Y)
		}
	}

	indices, err := earcut.Earcut(coords, holeIndices, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(outline), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle index count %d", len(indices))
	}

	tris := make([][3]geom.Point, len(indices)/3)
	for i := range tris {
		for v := 0; v < 3; v++ {
			k := indices[3*i+v]
			tris[i][v] = geom.Point{X: coords[2*k], Y: coords[2*k+1]}
		}
	}
	return tris, nil
}
