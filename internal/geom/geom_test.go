package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestScreenToNDC(t *testing.T) {
	m := ScreenToNDC(800, 600)
	tests := []struct{ in, want Point }{
		{MakePoint(0, 0), MakePoint(-1, 1)},
		{MakePoint(800, 600), MakePoint(1, -1)},
		{MakePoint(400, 300), MakePoint(0, 0)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, m.MulPoint(tt.in), approx); diff != "" {
			t.Errorf("%v (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestAffineInverse(t *testing.T) {
	m := ScreenToNDC(640, 480).Mul(MakeAffine(2, 0, 10, 0, 3, -5))
	inv, err := m.Inv()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Identity, inv.Mul(m), approx); diff != "" {
		t.Errorf("inv*m (-want +got):\n%s", diff)
	}
	if _, err := MakeAffine(1, 2, 0, 2, 4, 0).Inv(); err == nil {
		t.Error("singular transform inverted")
	}
}

func TestColumns(t *testing.T) {
	cols := MakeBox(10, 20, 100, 5).Columns(3)
	if len(cols) != 3 {
		t.Fatalf("got %d columns", len(cols))
	}
	if cols[0].X != 10 || cols[2].X+cols[2].W != 110 {
		t.Errorf("columns do not span the box: %+v", cols)
	}
	for i := 1; i < len(cols); i++ {
		if cols[i].X != cols[i-1].X+cols[i-1].W {
			t.Errorf("gap between columns %d and %d", i-1, i)
		}
	}
	if got := MakeBox(0, 0, 1, 1).Columns(0); got != nil {
		t.Errorf("Columns(0) = %v", got)
	}
}

func TestColumnAt(t *testing.T) {
	b := MakeBox(100, 100, 256, 40)
	tests := []struct {
		p    Point
		want int
	}{
		{MakePoint(100, 100), 0},
		{MakePoint(355.9, 139), 255},
		{MakePoint(228, 120), 128},
		{MakePoint(99, 120), -1},
		{MakePoint(200, 141), -1},
	}
	for _, tt := range tests {
		if got := b.ColumnAt(tt.p, 256); got != tt.want {
			t.Errorf("ColumnAt(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestInsetAndFrame(t *testing.T) {
	b := MakeBox(0, 0, 100, 50)
	if diff := cmp.Diff(MakeBox(10, 10, 80, 30), b.Inset(10)); diff != "" {
		t.Errorf("Inset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(MakeBox(50, 25, 0, 0), b.Inset(30)); diff != "" {
		t.Errorf("Inset past center (-want +got):\n%s", diff)
	}
	outer, hole := b.Frame(2)
	if diff := cmp.Diff([]Point{{-2, -2}, {102, -2}, {102, 52}, {-2, 52}}, outer); diff != "" {
		t.Errorf("outer (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.Corners(), hole); diff != "" {
		t.Errorf("hole (-want +got):\n%s", diff)
	}
}
