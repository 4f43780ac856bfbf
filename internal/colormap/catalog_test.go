package colormap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogWellFormed(t *testing.T) {
	seen := make(map[ID]bool)
	for _, e := range catalog {
		t.Run(e.name, func(t *testing.T) {
			if seen[e.id] {
				t.Fatalf("duplicate id %d", e.id)
			}
			seen[e.id] = true
			if e.id == NotSpecified || e.id == Any {
				t.Fatalf("sentinel id %d in catalog", e.id)
			}
			if len(e.points) < 2 {
				t.Fatalf("%d control points, want at least 2", len(e.points))
			}
			if first := e.points[0].Ratio; first != 0 {
				t.Errorf("first ratio = %v, want 0", first)
			}
			if last := e.points[len(e.points)-1].Ratio; last != 1 {
				t.Errorf("last ratio = %v, want 1", last)
			}
			for i := 1; i < len(e.points); i++ {
				if e.points[i].Ratio < e.points[i-1].Ratio {
					t.Errorf("ratio %d (%v) < ratio %d (%v)", i, e.points[i].Ratio, i-1, e.points[i-1].Ratio)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(CoolWarm)
	if !ok {
		t.Fatal("CoolWarm not found")
	}
	want := Palette{div(0, 59, 76, 192), div(1, 180, 4, 38)}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("CoolWarm (-want +got):\n%s", diff)
	}
	for _, id := range []ID{NotSpecified, Any, ID(99), ID(-1)} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%d) succeeded", id)
		}
	}
}

func TestRepeat(t *testing.T) {
	p := Palette{lin(0, 0, 0, 0), lin(0.5, 10, 10, 10), lin(1, 255, 255, 255)}
	got := p.Repeat(2)
	want := Palette{
		lin(0, 0, 0, 0), lin(0.25, 10, 10, 10), lin(0.5, 255, 255, 255),
		lin(0.5, 0, 0, 0), lin(0.75, 10, 10, 10), lin(1, 255, 255, 255),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Repeat(2) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p, p.Repeat(1)); diff != "" {
		t.Errorf("Repeat(1) (-want +got):\n%s", diff)
	}
	if got := p.Repeat(0); len(got) != 0 {
		t.Errorf("Repeat(0) = %v, want empty", got)
	}
	// The source palette is left alone.
	if p[1].Ratio != 0.5 {
		t.Errorf("Repeat modified its receiver: %v", p)
	}
}
