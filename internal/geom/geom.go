// Package geom lays out the color bar preview:
// - Axis-aligned boxes for the bar, its swatches and its frame
// - 2D affine transforms from window pixels to OpenGL NDC
// - Hit testing from a cursor position to a table index
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point in window pixels.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle with its origin at the top-left.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A, B, C float64
	D, E, F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

// Identity is the transform that leaves points unchanged.
var Identity = MakeAffine(1, 0, 0, 0, 1, 0)

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// ScreenToNDC maps window pixels (y down) of a w x h viewport to OpenGL
// normalized device coordinates (y up).
func ScreenToNDC(w, h int) Affine {
	return MakeAffine(
		2.0/float64(w), 0, -1,
		0, -2.0/float64(h), 1,
	)
}

// Inset shrinks the box by m on every side; negative m grows it. Boxes too
// small to inset collapse to their center.
func (b Box) Inset(m float64) Box {
	if 2*m >= b.W || 2*m >= b.H {
		return MakeBox(b.X+b.W/2, b.Y+b.H/2, 0, 0)
	}
	return MakeBox(b.X+m, b.Y+m, b.W-2*m, b.H-2*m)
}

// Columns splits the box into n equal-width columns, left to right.
func (b Box) Columns(n int) []Box {
	if n <= 0 {
		return nil
	}
	out := make([]Box, n)
	w := b.W / float64(n)
	for i := range out {
		// Derive edges from the index so columns tile without gaps.
		x0 := b.X + float64(i)*w
		x1 := b.X + float64(i+1)*w
		if i == n-1 {
			x1 = b.X + b.W
		}
		out[i] = MakeBox(x0, b.Y, x1-x0, b.H)
	}
	return out
}

// Corners returns the box outline clockwise from the top-left corner.
func (b Box) Corners() []Point {
	return []Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}

// Contains reports whether p lies inside the box (right/bottom edges
// excluded).
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// ColumnAt returns the index of the column of Columns(n) under p, or -1.
func (b Box) ColumnAt(p Point, n int) int {
	if n <= 0 || !b.Contains(p) {
		return -1
	}
	i := int((p.X - b.X) / b.W * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Frame returns the ring between the box and its outset by m as a polygon
// outline plus a hole, ready for triangulation.
func (b Box) Frame(m float64) (outer, hole []Point) {
	return b.Inset(-m).Corners(), b.Corners()
}
