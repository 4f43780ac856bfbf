package colormap

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		def  ID
		want ID
	}{
		{"jet", NotSpecified, Jet},
		{"JET", NotSpecified, Jet},
		{"JET_X", NotSpecified, Jet},
		{"Jet2", GrayScale, Jet},
		{"grayscale", NotSpecified, GrayScale},
		{"  coolwarm ", NotSpecified, CoolWarm},
		{"Rainbow", NotSpecified, Rainbow},
		// Earlier, shorter names shadow the wide variants.
		{"rainbowwide", NotSpecified, Rainbow},
		{"rainbowwide_x", NotSpecified, Rainbow},
		{"SpectrumWide", NotSpecified, Spectrum},
		{"SpectrumWide2", NotSpecified, Spectrum},
		{"thermalwide", NotSpecified, Thermal},
		{"ThermalWide-", NotSpecified, Thermal},
		{"any", NotSpecified, Any},
		{"doesnotexist", NotSpecified, NotSpecified},
		{"doesnotexist", CoolWarm, CoolWarm},
		{"", Jet, Jet},
		{"je", GrayScale, GrayScale},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Resolve(tt.in, tt.def); got != tt.want {
				t.Errorf("Resolve(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

// shadowed maps the palettes whose names start with an earlier catalog name
// to the palette they resolve to.
var shadowed = map[ID]ID{
	RainbowWide:  Rainbow,
	SpectrumWide: Spectrum,
	ThermalWide:  Thermal,
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 13 {
		t.Fatalf("len(Names()) = %d, want 13", len(names))
	}
	if names[0] != (Entry{Name: "GrayScale", ID: GrayScale}) {
		t.Errorf("first entry = %+v", names[0])
	}
	if names[12] != (Entry{Name: "GreenRed", ID: GreenRed}) {
		t.Errorf("last entry = %+v", names[12])
	}
	for i, e := range names {
		if e.ID == Any || e.ID == NotSpecified {
			t.Errorf("sentinel %v listed", e.ID)
		}
		want := e.ID
		if s, ok := shadowed[e.ID]; ok {
			want = s
		}
		if got := Resolve(e.Name, NotSpecified); got != want {
			t.Errorf("Resolve(%q) = %v, want %v", e.Name, got, want)
		}
		if e.ID.String() != e.Name {
			t.Errorf("%d.String() = %q, want %q", e.ID, e.ID.String(), e.Name)
		}
		if i > 0 && e.ID <= names[i-1].ID {
			t.Errorf("entries out of order at %d", i)
		}
	}
}

func TestIDString(t *testing.T) {
	for id, want := range map[ID]string{Any: "ANY", NotSpecified: "", ID(42): "ID(42)", SpectrumWide: "SpectrumWide"} {
		if got := id.String(); got != want {
			t.Errorf("ID(%d).String() = %q, want %q", int(id), got, want)
		}
	}
}
