// Package app holds the state of the interactive color map preview: which
// palette is shown, the table parameters, and whether the table needs to be
// rebuilt and re-uploaded.
package app

import (
	"fmt"
	"log"

	"github.com/irfansharif/colormap/internal/colormap"
)

// App encapsulates the preview state and logic.
type App struct {
	View *View

	names  []colormap.Entry
	index  int              // into names; -1 while a custom palette is shown
	custom colormap.Palette // user supplied stops, if any

	table []colormap.RGB
	Dirty bool // whether the table needs to be re-uploaded
}

// NewApp creates a preview starting at the given palette. Unknown ids start
// at the first catalog entry.
func NewApp(view *View, start colormap.ID) *App {
	a := &App{
		View:  view,
		names: colormap.Names(),
	}
	for i, e := range a.names {
		if e.ID == start {
			a.index = i
		}
	}
	a.Invalidate()
	return a
}

// SetCustom shows a user-defined palette until the next palette switch.
func (a *App) SetCustom(p colormap.Palette) {
	a.custom = p
	a.index = -1
	a.Invalidate()
}

// Invalidate marks the table for a rebuild.
func (a *App) Invalidate() {
	a.Dirty = true
	a.table = nil
}

// Current returns the palette currently shown.
func (a *App) Current() colormap.Entry {
	if a.index < 0 {
		return colormap.Entry{Name: "custom", ID: colormap.NotSpecified}
	}
	return a.names[a.index]
}

// Step moves delta palettes forward (or backward) through the catalog,
// wrapping around.
func (a *App) Step(delta int) {
	n := len(a.names)
	i := a.index
	if i < 0 {
		i = 0
	}
	a.index = ((i+delta)%n + n) % n
	a.custom = nil
	a.Invalidate()
	log.Printf("Showing %s", a.names[a.index].Name)
}

// Table returns the current table, rebuilding it if needed.
func (a *App) Table() []colormap.RGB {
	if a.table != nil {
		return a.table
	}
	v := a.View
	tbl := make([]colormap.RGB, v.Samples)
	switch {
	case v.Mono:
		colormap.FillMono(tbl, v.Gamma, v.Gain, v.Offset)
	case a.index < 0:
		colormap.FillPalette(tbl, a.custom, v.Params())
	default:
		colormap.Fill(tbl, a.names[a.index].ID, v.Params())
	}
	a.table = tbl
	return tbl
}

// Title summarizes the state for the window title.
func (a *App) Title() string {
	v := a.View
	name := a.Current().Name
	if v.Mono {
		return fmt.Sprintf("Mono (gamma %.2f, gain %.3f, offset %d, %d samples)",
			v.Gamma, v.Gain, v.Offset, v.Samples)
	}
	return fmt.Sprintf("%s (x%d, gain %.3f, offset %d, %d samples, %v)",
		name, v.Repeat, v.Gain, v.Offset, v.Samples, v.Illuminant)
}
