package app

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/colorspace"
)

func TestViewClamps(t *testing.T) {
	v := NewView(1, colorspace.D65)
	if v.Samples != 2 {
		t.Errorf("Samples = %d, want 2", v.Samples)
	}
	v.SetGain(100)
	if v.Gain != maxGain {
		t.Errorf("Gain = %v, want %v", v.Gain, maxGain)
	}
	v.SetGain(0)
	if v.Gain != minGain {
		t.Errorf("Gain = %v, want %v", v.Gain, minGain)
	}
	v.SetRepeat(0)
	if v.Repeat != 1 {
		t.Errorf("Repeat = %d, want 1", v.Repeat)
	}
	v.SetRepeat(1000)
	if v.Repeat != maxRepeat {
		t.Errorf("Repeat = %d, want %d", v.Repeat, maxRepeat)
	}
	v.SetGamma(-1)
	if v.Gamma != minGamma {
		t.Errorf("Gamma = %v, want %v", v.Gamma, minGamma)
	}
	v.Shift(-7)
	v.Reset()
	if diff := cmp.Diff(NewView(2, colorspace.D65), v); diff != "" {
		t.Errorf("after Reset (-want +got):\n%s", diff)
	}
}

func TestStepWraps(t *testing.T) {
	a := NewApp(NewView(16, colorspace.D65), colormap.GreenRed)
	if got := a.Current().ID; got != colormap.GreenRed {
		t.Fatalf("start = %v", got)
	}
	a.Step(1)
	if got := a.Current().ID; got != colormap.GrayScale {
		t.Errorf("after wrap = %v, want GrayScale", got)
	}
	a.Step(-1)
	if got := a.Current().ID; got != colormap.GreenRed {
		t.Errorf("after step back = %v, want GreenRed", got)
	}
	a.Step(-27)
	if got := a.Current().ID; got != colormap.GreenRed-1 {
		t.Errorf("after -27 = %v, want %v", got, colormap.GreenRed-1)
	}
}

func TestTableFollowsState(t *testing.T) {
	v := NewView(64, colorspace.D65)
	a := NewApp(v, colormap.Jet)
	if diff := cmp.Diff(colormap.Table(colormap.Jet, 64, colormap.DefaultParams()), a.Table()); diff != "" {
		t.Errorf("initial table (-want +got):\n%s", diff)
	}

	v.SetRepeat(2)
	v.Shift(3)
	a.Invalidate()
	want := colormap.Table(colormap.Jet, 64, v.Params())
	if diff := cmp.Diff(want, a.Table()); diff != "" {
		t.Errorf("repeat/offset table (-want +got):\n%s", diff)
	}

	v.Mono = true
	v.SetGamma(2)
	a.Invalidate()
	if diff := cmp.Diff(colormap.Mono(64, 2, 1, 3), a.Table()); diff != "" {
		t.Errorf("mono table (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(a.Title(), "Mono") {
		t.Errorf("Title() = %q", a.Title())
	}
}

func TestCustomPalette(t *testing.T) {
	a := NewApp(NewView(8, colorspace.D65), colormap.Any)
	if got := a.Current().ID; got != colormap.GrayScale {
		t.Errorf("unknown start = %v, want GrayScale", got)
	}
	c := colormap.RGB{R: 1, G: 2, B: 3}
	a.SetCustom(colormap.Palette{{Ratio: 0, Color: c, Type: colormap.Linear}, {Ratio: 1, Color: c, Type: colormap.Linear}})
	if a.Current().Name != "custom" {
		t.Errorf("Current() = %+v", a.Current())
	}
	for i, got := range a.Table() {
		if got != c {
			t.Errorf("sample %d = %v", i, got)
		}
	}
	a.Step(1)
	if got := a.Current().ID; got != colormap.Jet {
		t.Errorf("step from custom = %v, want Jet", got)
	}
}
